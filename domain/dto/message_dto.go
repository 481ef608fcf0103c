// domain/dto/message_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

// ============ Request DTOs ============

// SendMessageRequest สำหรับการส่งข้อความ
type SendMessageRequest struct {
	Content     string `json:"content" validate:"required"`
	MessageType string `json:"message_type,omitempty"` // default: text
}

// ============ Response Data DTOs ============

// MessageData ข้อความหนึ่งรายการ
type MessageData struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Content        string    `json:"content"`
	MessageType    string    `json:"message_type"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewMessageData แปลง model เป็น DTO
func NewMessageData(m *models.Message) MessageData {
	return MessageData{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		MessageType:    m.MessageType,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}
