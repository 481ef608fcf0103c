// domain/service/user_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

type UserService interface {
	CreateUser(user *models.User) error
	GetProfile(id uuid.UUID) (*models.User, error)
	UpdateProfile(viewerID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error)
	SearchUsers(query string, limit, offset int) ([]*models.User, error)

	// ดึง summary หลายคนพร้อมกัน (อ่านผ่าน cache ก่อนถ้ามี)
	GetProfileSummaries(ids []uuid.UUID) (map[uuid.UUID]dto.UserSummary, error)
}
