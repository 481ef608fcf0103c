// domain/service/connection_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

// ConnectionService จัดการวงจรชีวิตของคำขอเชื่อมต่อระหว่างผู้ใช้สองคน
// viewerID คือผู้ใช้ที่กำลังเรียก operation ทุกคำสั่งที่เขียนข้อมูล
// ต้องมี viewer ที่ไม่ว่าง มิฉะนั้นได้ error UNAUTHENTICATED
type ConnectionService interface {
	// ฟีเจอร์หลัก
	SendRequest(viewerID, targetID uuid.UUID) (*models.Connection, error)
	AcceptRequest(viewerID, requesterID uuid.UUID) error
	RejectRequest(viewerID, requesterID uuid.UUID) error
	CancelRequest(viewerID, targetID uuid.UUID) error
	RemoveConnection(viewerID, otherID uuid.UUID) error

	// ตรวจสอบความสัมพันธ์
	GetState(viewerID, otherID uuid.UUID) (models.RelationshipState, error)

	// รายการและจำนวน connection ที่ accepted แล้ว
	ListConnections(userID uuid.UUID, limit int) ([]dto.ConnectionItem, error)
	CountConnections(userID uuid.UUID) (int64, error)
}
