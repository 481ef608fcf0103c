// domain/models/message.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// ประเภทของข้อความ
const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeVideo = "video"
	MessageTypeAudio = "audio"
)

// Message - ข้อความในบทสนทนา append-only แก้ไขได้เฉพาะ flag is_read
type Message struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	ConversationID uuid.UUID `json:"conversation_id" gorm:"type:uuid;not null;index"`
	SenderID       uuid.UUID `json:"sender_id" gorm:"type:uuid;not null"`
	Content        string    `json:"content" gorm:"type:text"`
	MessageType    string    `json:"message_type" gorm:"type:varchar(20);not null;default:'text'"` // text, image, video, audio
	IsRead         bool      `json:"is_read" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Associations
	Conversation *Conversation `json:"conversation,omitempty" gorm:"foreignkey:ConversationID"`
	Sender       *User         `json:"sender,omitempty" gorm:"foreignkey:SenderID"`
}

// TableName - ระบุชื่อตารางใน database
func (Message) TableName() string {
	return "messages"
}

// ValidMessageType ตรวจสอบว่า message type อยู่ในชุดที่รองรับ
func ValidMessageType(t string) bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeVideo, MessageTypeAudio:
		return true
	}
	return false
}
