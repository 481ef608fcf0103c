// infrastructure/persistence/postgres/gig_repository.go
package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
	"github.com/zydnet/CineMystApp-sub002/domain/repository"
)

type gigRepository struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) repository.GigRepository {
	return &gigRepository{db: db}
}

func (r *gigRepository) Create(gig *models.Gig) error {
	if gig.ID == uuid.Nil {
		gig.ID = uuid.New()
	}
	now := time.Now()
	if gig.CreatedAt.IsZero() {
		gig.CreatedAt = now
	}
	if gig.UpdatedAt.IsZero() {
		gig.UpdatedAt = now
	}

	return r.db.Create(gig).Error
}

func (r *gigRepository) GetByID(id uuid.UUID) (*models.Gig, error) {
	var gig models.Gig
	if err := r.db.First(&gig, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gig, nil
}

func (r *gigRepository) Update(gig *models.Gig) error {
	gig.UpdatedAt = time.Now()
	return r.db.Save(gig).Error
}

func (r *gigRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Gig{}, "id = ?", id).Error
}

func (r *gigRepository) List(filter repository.GigFilter, limit, offset int) ([]*models.Gig, error) {
	if limit <= 0 {
		limit = 20
	}

	query := r.db.Model(&models.Gig{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.OpenOnly {
		query = query.Where("is_open = ?", true)
	}

	var gigs []*models.Gig
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&gigs).Error; err != nil {
		return nil, err
	}
	return gigs, nil
}

func (r *gigRepository) FindByAuthor(authorID uuid.UUID) ([]*models.Gig, error) {
	var gigs []*models.Gig
	if err := r.db.Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&gigs).Error; err != nil {
		return nil, err
	}
	return gigs, nil
}
