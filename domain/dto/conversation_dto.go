// domain/dto/conversation_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// ============ Request DTOs ============

// GetOrCreateConversationParam สำหรับเปิดบทสนทนากับผู้ใช้อีกคน
type GetOrCreateConversationParam struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// ============ Response Data DTOs ============

// ConversationItem บทสนทนาหนึ่งรายการในหน้า inbox
type ConversationItem struct {
	ID                 uuid.UUID   `json:"id"`
	OtherUser          UserSummary `json:"other_user"`
	LastMessageContent string      `json:"last_message_content,omitempty"`
	LastMessageTime    *time.Time  `json:"last_message_time,omitempty"`
	UnreadCount        int         `json:"unread_count"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// ============ Response Wrapper DTOs ============

// ConversationListResponse สำหรับรายการบทสนทนา
type ConversationListResponse struct {
	GenericResponse
	Data []ConversationItem `json:"data"`
}
