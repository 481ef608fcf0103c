// domain/repository/conversation_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

type ConversationRepository interface {
	GetByID(id uuid.UUID) (*models.Conversation, error)

	// หาบทสนทนาของคู่ผู้ใช้ คืน nil ถ้ายังไม่มี
	FindByPair(userID, otherID uuid.UUID) (*models.Conversation, error)

	// get-or-create แบบ atomic ภายใต้ unique constraint ของคู่ canonical
	// สอง caller ที่แข่งกันสร้างต้องได้ row เดียวกันเสมอ
	GetOrCreate(userID, otherID uuid.UUID) (*models.Conversation, error)

	// บทสนทนาทั้งหมดที่ userID อยู่ใน slot ใดก็ได้
	// เรียงตามเวลาข้อความล่าสุดจากใหม่ไปเก่า
	FindByParticipant(userID uuid.UUID) ([]*models.Conversation, error)
}
