// domain/service/gig_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
	"github.com/zydnet/CineMystApp-sub002/domain/models"
	"github.com/zydnet/CineMystApp-sub002/domain/repository"
)

type GigService interface {
	CreateGig(viewerID uuid.UUID, req *dto.CreateGigRequest) (*models.Gig, error)
	GetGig(id uuid.UUID) (*models.Gig, error)
	UpdateGig(viewerID, gigID uuid.UUID, req *dto.UpdateGigRequest) (*models.Gig, error)
	DeleteGig(viewerID, gigID uuid.UUID) error
	ListGigs(filter repository.GigFilter, limit, offset int) ([]*models.Gig, error)
}
