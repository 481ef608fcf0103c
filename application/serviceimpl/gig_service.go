// application/serviceimpl/gig_service.go
package serviceimpl

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
	"github.com/zydnet/CineMystApp-sub002/domain/models"
	"github.com/zydnet/CineMystApp-sub002/domain/repository"
	"github.com/zydnet/CineMystApp-sub002/domain/service"
	apperrors "github.com/zydnet/CineMystApp-sub002/pkg/errors"
)

type gigService struct {
	gigRepo repository.GigRepository
}

func NewGigService(gigRepo repository.GigRepository) service.GigService {
	return &gigService{gigRepo: gigRepo}
}

func (s *gigService) CreateGig(viewerID uuid.UUID, req *dto.CreateGigRequest) (*models.Gig, error) {
	if viewerID == uuid.Nil {
		return nil, apperrors.Unauthenticated("no active session")
	}
	if req.Title == "" {
		return nil, apperrors.InvalidArg("gig title is required")
	}

	gig := &models.Gig{
		ID:          uuid.New(),
		AuthorID:    viewerID,
		Title:       req.Title,
		Description: req.Description,
		Role:        req.Role,
		Location:    req.Location,
		IsOpen:      true,
	}
	if err := s.gigRepo.Create(gig); err != nil {
		return nil, storeErr("failed to create gig", err)
	}
	return gig, nil
}

func (s *gigService) GetGig(id uuid.UUID) (*models.Gig, error) {
	gig, err := s.gigRepo.GetByID(id)
	if err != nil {
		return nil, storeErr("failed to load gig", err)
	}
	if gig == nil {
		return nil, apperrors.NotFound("gig not found")
	}
	return gig, nil
}

// UpdateGig แก้ไขประกาศ ทำได้เฉพาะเจ้าของ
func (s *gigService) UpdateGig(viewerID, gigID uuid.UUID, req *dto.UpdateGigRequest) (*models.Gig, error) {
	if viewerID == uuid.Nil {
		return nil, apperrors.Unauthenticated("no active session")
	}

	gig, err := s.GetGig(gigID)
	if err != nil {
		return nil, err
	}
	if gig.AuthorID != viewerID {
		return nil, apperrors.New(apperrors.CodePermissionDenied, "only the author can update this gig")
	}

	if req.Title != nil {
		gig.Title = *req.Title
	}
	if req.Description != nil {
		gig.Description = *req.Description
	}
	if req.Role != nil {
		gig.Role = *req.Role
	}
	if req.Location != nil {
		gig.Location = *req.Location
	}
	if req.IsOpen != nil {
		gig.IsOpen = *req.IsOpen
	}

	if err := s.gigRepo.Update(gig); err != nil {
		return nil, storeErr("failed to update gig", err)
	}
	return gig, nil
}

func (s *gigService) DeleteGig(viewerID, gigID uuid.UUID) error {
	if viewerID == uuid.Nil {
		return apperrors.Unauthenticated("no active session")
	}

	gig, err := s.GetGig(gigID)
	if err != nil {
		return err
	}
	if gig.AuthorID != viewerID {
		return apperrors.New(apperrors.CodePermissionDenied, "only the author can delete this gig")
	}

	if err := s.gigRepo.Delete(gigID); err != nil {
		return storeErr("failed to delete gig", err)
	}
	return nil
}

func (s *gigService) ListGigs(filter repository.GigFilter, limit, offset int) ([]*models.Gig, error) {
	gigs, err := s.gigRepo.List(filter, limit, offset)
	if err != nil {
		return nil, storeErr("failed to list gigs", err)
	}
	return gigs, nil
}
