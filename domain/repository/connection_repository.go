// domain/repository/connection_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

type ConnectionRepository interface {
	// พื้นฐาน CRUD
	Create(connection *models.Connection) error
	FindByID(id uuid.UUID) (*models.Connection, error)
	Update(connection *models.Connection) error

	// มองคู่ (A,B) กับ (B,A) เป็น edge เดียวกันเสมอ
	FindByPair(userID, otherID uuid.UUID) (*models.Connection, error)

	// อัพเดตสถานะของคำขอ pending ที่ requester ส่งถึง receiver
	// คืนจำนวน row ที่ถูกแก้ (0 แปลว่าคำขอถูกจัดการไปแล้ว)
	UpdatePendingStatus(requesterID, receiverID uuid.UUID, status string) (int64, error)

	// ลบคำขอ pending ที่ requester เป็นคนส่งเท่านั้น (cancel)
	DeletePending(requesterID, receiverID uuid.UUID) (int64, error)

	// ลบ connection ทุกทิศทางทุกสถานะของคู่นี้ (remove)
	DeleteByPair(userID, otherID uuid.UUID) (int64, error)

	// สำหรับรายชื่อ connection ที่ accepted แล้ว
	FindAccepted(userID uuid.UUID, limit int) ([]*models.Connection, error)
	CountAccepted(userID uuid.UUID) (int64, error)
}
