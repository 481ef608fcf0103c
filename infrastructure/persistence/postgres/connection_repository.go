// infrastructure/persistence/postgres/connection_repository.go
package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
	"github.com/zydnet/CineMystApp-sub002/domain/repository"
	apperrors "github.com/zydnet/CineMystApp-sub002/pkg/errors"
)

type connectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(connection *models.Connection) error {
	if connection.ID == uuid.Nil {
		connection.ID = uuid.New()
	}
	now := time.Now()
	if connection.CreatedAt.IsZero() {
		connection.CreatedAt = now
	}
	if connection.UpdatedAt.IsZero() {
		connection.UpdatedAt = now
	}
	if connection.Status == "" {
		connection.Status = models.ConnectionStatusPending
	}

	if err := r.db.Create(connection).Error; err != nil {
		// unique index บนคู่ canonical กันคำขอซ้ำจากสองฝั่งที่แข่งกัน
		if isDuplicateKey(err) {
			return apperrors.AlreadyExists("connection already exists")
		}
		return err
	}
	return nil
}

func (r *connectionRepository) Update(connection *models.Connection) error {
	connection.UpdatedAt = time.Now()
	return r.db.Save(connection).Error
}

func (r *connectionRepository) FindByID(id uuid.UUID) (*models.Connection, error) {
	var connection models.Connection
	if err := r.db.Where("id = ?", id).First(&connection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &connection, nil
}

// FindByPair หา connection ของคู่ (A,B) โดยมองทั้งสองทิศทาง
func (r *connectionRepository) FindByPair(userID, otherID uuid.UUID) (*models.Connection, error) {
	var connection models.Connection
	err := r.db.Where("(requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)",
		userID, otherID, otherID, userID).First(&connection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &connection, nil
}

// UpdatePendingStatus อัพเดตคำขอ pending ของทิศทาง requester -> receiver
// ศูนย์ row ถูกแก้ไม่ถือเป็น error ที่ชั้นนี้ ให้ caller ตีความเอง
func (r *connectionRepository) UpdatePendingStatus(requesterID, receiverID uuid.UUID, status string) (int64, error) {
	result := r.db.Model(&models.Connection{}).
		Where("requester_id = ? AND receiver_id = ? AND status = ?",
			requesterID, receiverID, models.ConnectionStatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *connectionRepository) DeletePending(requesterID, receiverID uuid.UUID) (int64, error) {
	result := r.db.Where("requester_id = ? AND receiver_id = ? AND status = ?",
		requesterID, receiverID, models.ConnectionStatusPending).
		Delete(&models.Connection{})
	return result.RowsAffected, result.Error
}

func (r *connectionRepository) DeleteByPair(userID, otherID uuid.UUID) (int64, error) {
	result := r.db.Where("(requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)",
		userID, otherID, otherID, userID).
		Delete(&models.Connection{})
	return result.RowsAffected, result.Error
}

func (r *connectionRepository) FindAccepted(userID uuid.UUID, limit int) ([]*models.Connection, error) {
	query := r.db.Where("(requester_id = ? OR receiver_id = ?) AND status = ?",
		userID, userID, models.ConnectionStatusAccepted).
		Order("updated_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var connections []*models.Connection
	if err := query.Find(&connections).Error; err != nil {
		return nil, err
	}
	return connections, nil
}

func (r *connectionRepository) CountAccepted(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Connection{}).
		Where("(requester_id = ? OR receiver_id = ?) AND status = ?",
			userID, userID, models.ConnectionStatusAccepted).
		Count(&count).Error
	return count, err
}
