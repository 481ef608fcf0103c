// domain/dto/connection_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

// ============ Request DTOs ============

// SendConnectionRequestParam สำหรับพารามิเตอร์การส่งคำขอเชื่อมต่อ
type SendConnectionRequestParam struct {
	TargetID uuid.UUID `json:"target_id" validate:"required"`
}

// ConnectionActionParam สำหรับ accept/reject/cancel/remove
type ConnectionActionParam struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// ============ Response Data DTOs ============

// ConnectionData ข้อมูล connection record
type ConnectionData struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requester_id"`
	ReceiverID  uuid.UUID `json:"receiver_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ConnectionItem รายการ connection หนึ่งรายการพร้อม profile ของอีกฝ่าย
type ConnectionItem struct {
	ConnectionID uuid.UUID   `json:"connection_id"`
	User         UserSummary `json:"user"`
	ConnectedAt  time.Time   `json:"connected_at"`
}

// RelationshipStateData สถานะความสัมพันธ์จากมุมมองของผู้เรียก
type RelationshipStateData struct {
	State models.RelationshipState `json:"state"`
}

// ============ Response Wrapper DTOs ============

// ConnectionListResponse สำหรับรายชื่อ connection
type ConnectionListResponse struct {
	GenericResponse
	Data []ConnectionItem `json:"data"`
}

// ConnectionCountResponse สำหรับจำนวน connection
type ConnectionCountResponse struct {
	GenericResponse
	Count int64 `json:"count"`
}

// NewConnectionData แปลง model เป็น DTO
func NewConnectionData(c *models.Connection) ConnectionData {
	return ConnectionData{
		ID:          c.ID,
		RequesterID: c.RequesterID,
		ReceiverID:  c.ReceiverID,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
