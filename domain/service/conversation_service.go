// domain/service/conversation_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

// ConversationService ดูแลบทสนทนาหนึ่งต่อหนึ่ง
// แต่ละคู่ผู้ใช้มีบทสนทนาได้เพียงหนึ่งเดียวไม่ว่าใครเป็นฝ่ายเปิด
type ConversationService interface {
	// คืนบทสนทนาเดิมถ้ามี ไม่มีก็สร้างใหม่แบบ atomic
	GetOrCreate(viewerID, otherID uuid.UUID) (*models.Conversation, error)

	// รายการบทสนทนาทั้งหมดของ viewer พร้อม profile ของคู่สนทนา
	// เรียงตามเวลาข้อความล่าสุด
	GetUserConversations(viewerID uuid.UUID) ([]dto.ConversationItem, error)
}
