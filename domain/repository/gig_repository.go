// domain/repository/gig_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

// GigFilter เงื่อนไขการกรองประกาศ casting call
type GigFilter struct {
	Role     string
	Location string
	OpenOnly bool
}

type GigRepository interface {
	Create(gig *models.Gig) error
	GetByID(id uuid.UUID) (*models.Gig, error)
	Update(gig *models.Gig) error
	Delete(id uuid.UUID) error
	List(filter GigFilter, limit, offset int) ([]*models.Gig, error)
	FindByAuthor(authorID uuid.UUID) ([]*models.Gig, error)
}
