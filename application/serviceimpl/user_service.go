// application/serviceimpl/user_service.go
package serviceimpl

import (
	stderrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
	"github.com/zydnet/CineMystApp-sub002/domain/models"
	"github.com/zydnet/CineMystApp-sub002/domain/port"
	"github.com/zydnet/CineMystApp-sub002/domain/repository"
	"github.com/zydnet/CineMystApp-sub002/domain/service"
	apperrors "github.com/zydnet/CineMystApp-sub002/pkg/errors"
)

type userService struct {
	userRepo     repository.UserRepository
	profileCache port.ProfileCachePort // nil ได้ ถ้าไม่ได้ต่อ Redis
}

func NewUserService(
	userRepo repository.UserRepository,
	profileCache port.ProfileCachePort,
) service.UserService {
	return &userService{
		userRepo:     userRepo,
		profileCache: profileCache,
	}
}

func (s *userService) CreateUser(user *models.User) error {
	if user.Username == "" {
		return apperrors.InvalidArg("username is required")
	}
	if err := s.userRepo.Create(user); err != nil {
		return storeErr("failed to create user", err)
	}
	return nil
}

func (s *userService) GetProfile(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, storeErr("failed to load user", err)
	}
	return user, nil
}

// UpdateProfile แก้ไข profile ของ viewer เฉพาะ field ที่ส่งมา
func (s *userService) UpdateProfile(viewerID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	if viewerID == uuid.Nil {
		return nil, apperrors.Unauthenticated("no active session")
	}

	user, err := s.userRepo.FindByID(viewerID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, storeErr("failed to load user", err)
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Headline != nil {
		user.Headline = *req.Headline
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = *req.ProfileImageURL
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, storeErr("failed to update profile", err)
	}
	if s.profileCache != nil {
		s.profileCache.Invalidate(user.ID)
	}
	return user, nil
}

func (s *userService) SearchUsers(query string, limit, offset int) ([]*models.User, error) {
	if query == "" {
		return nil, apperrors.InvalidArg("search query is required")
	}

	users, err := s.userRepo.Search(query, limit, offset)
	if err != nil {
		return nil, storeErr("failed to search users", err)
	}
	return users, nil
}

// GetProfileSummaries ดึง summary ทั้งชุด อ่านผ่าน cache ก่อนแล้วตกไป
// ฐานข้อมูลเฉพาะที่พลาด ผลลัพธ์มีเฉพาะ id ที่หาเจอ
func (s *userService) GetProfileSummaries(ids []uuid.UUID) (map[uuid.UUID]dto.UserSummary, error) {
	summaries := make(map[uuid.UUID]dto.UserSummary)
	if len(ids) == 0 {
		return summaries, nil
	}

	missing := ids
	if s.profileCache != nil {
		summaries, missing = s.profileCache.GetMany(ids)
	}
	if len(missing) == 0 {
		return summaries, nil
	}

	users, err := s.userRepo.FindByIDs(missing)
	if err != nil {
		return nil, storeErr("failed to fetch profiles", err)
	}

	fetched := make(map[uuid.UUID]dto.UserSummary, len(users))
	for _, user := range users {
		summary := dto.UserSummary{
			ID:              user.ID,
			Username:        user.Username,
			DisplayName:     user.DisplayName,
			Role:            user.Role,
			Headline:        user.Headline,
			ProfileImageURL: user.ProfileImageURL,
		}
		summaries[user.ID] = summary
		fetched[user.ID] = summary
	}

	if s.profileCache != nil {
		s.profileCache.SetMany(fetched)
	}
	return summaries, nil
}
