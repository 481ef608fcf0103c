// domain/repository/message_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

type MessageRepository interface {
	GetByID(id uuid.UUID) (*models.Message, error)

	// บันทึกข้อความและอัพเดต preview (last message + unread count)
	// ของ conversation แม่ใน transaction เดียวกัน
	CreateWithPreview(message *models.Message) error

	// ดึงข้อความล่าสุด limit รายการ เรียงจากเก่าไปใหม่
	// (fetch แบบ DESC จากฐานข้อมูลแล้ว reverse เพราะ index เอื้อทาง DESC)
	GetByConversation(conversationID uuid.UUID, limit int) ([]*models.Message, error)

	// ทำเครื่องหมายอ่านแล้วให้ข้อความของฝ่ายตรงข้ามทั้งหมด
	// และ reset unread count ของ conversation ใน transaction เดียวกัน
	// คืนจำนวนข้อความที่ถูก mark
	MarkConversationRead(conversationID, readerID uuid.UUID) (int64, error)
}
