// domain/service/message_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

// MessageService จัดการข้อความในบทสนทนา
type MessageService interface {
	SendMessage(viewerID, conversationID uuid.UUID, content, messageType string) (*models.Message, error)

	// ดึงข้อความล่าสุด limit รายการ เรียงจากเก่าไปใหม่
	GetMessages(viewerID, conversationID uuid.UUID, limit int) ([]*models.Message, error)

	// ทำเครื่องหมายอ่านแล้วให้ข้อความจากอีกฝ่ายทั้งหมด
	// คืนจำนวนข้อความที่ถูก mark
	MarkConversationRead(viewerID, conversationID uuid.UUID) (int64, error)
}
