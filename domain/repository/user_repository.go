// domain/repository/user_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

type UserRepository interface {
	// พื้นฐาน CRUD
	Create(user *models.User) error
	FindByID(id uuid.UUID) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Update(user *models.User) error

	// ดึง profile หลายคนพร้อมกันในการ query เดียว (ใช้กับรายการ connection/conversation)
	FindByIDs(ids []uuid.UUID) ([]*models.User, error)

	// ค้นหาผู้ใช้จาก username หรือ display name
	Search(query string, limit, offset int) ([]*models.User, error)
}
