// domain/models/conversation.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation - บทสนทนาหนึ่งต่อหนึ่งระหว่างผู้ใช้สองคน
// participant ทั้งสอง slot ถูกเก็บตามลำดับ canonical (ดู NormalizePair)
// ดังนั้นแต่ละคู่ผู้ใช้มี conversation ได้เพียงหนึ่งเดียว
type Conversation struct {
	ID                 uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	Participant1ID     uuid.UUID  `json:"participant1_id" gorm:"type:uuid;not null;uniqueIndex:idx_conversations_pair"`
	Participant2ID     uuid.UUID  `json:"participant2_id" gorm:"type:uuid;not null;uniqueIndex:idx_conversations_pair"`
	LastMessageID      *uuid.UUID `json:"last_message_id,omitempty" gorm:"type:uuid"`
	LastMessageContent string     `json:"last_message_content,omitempty" gorm:"type:text"`
	LastMessageTime    *time.Time `json:"last_message_time,omitempty"`
	UnreadCount        int        `json:"unread_count" gorm:"default:0"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Associations
	Participant1 *User      `json:"participant1,omitempty" gorm:"foreignkey:Participant1ID"`
	Participant2 *User      `json:"participant2,omitempty" gorm:"foreignkey:Participant2ID"`
	Messages     []*Message `json:"messages,omitempty" gorm:"foreignkey:ConversationID"`
}

// TableName - ระบุชื่อตารางใน database
func (Conversation) TableName() string {
	return "conversations"
}

// OtherParticipant คืน ID ของคู่สนทนาอีกฝ่ายเมื่อมองจาก userID
func (c *Conversation) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if c.Participant1ID == userID {
		return c.Participant2ID
	}
	return c.Participant1ID
}

// HasParticipant ตรวจสอบว่า userID อยู่ในบทสนทนานี้หรือไม่
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.Participant1ID == userID || c.Participant2ID == userID
}
