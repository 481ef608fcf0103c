// infrastructure/persistence/postgres/conversation_repository.go
package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
	"github.com/zydnet/CineMystApp-sub002/domain/repository"
)

type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository สร้าง repository ใหม่
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// GetByID ดึงข้อมูลบทสนทนาตาม ID
func (r *conversationRepository) GetByID(id uuid.UUID) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.First(&conversation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

// FindByPair หาบทสนทนาของคู่ผู้ใช้ มองทั้งสองลำดับของ slot
// แม้ row ใหม่จะเก็บตาม canonical order เสมอ
func (r *conversationRepository) FindByPair(userID, otherID uuid.UUID) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.Where("(participant1_id = ? AND participant2_id = ?) OR (participant1_id = ? AND participant2_id = ?)",
		userID, otherID, otherID, userID).First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

// GetOrCreate คืนบทสนทนาเดิมถ้ามี ไม่มีก็สร้างใหม่
// บน Postgres ใช้ SQL function ที่ migration สร้างไว้ เพื่อให้ lookup-then-insert
// อยู่ใน transaction เดียวฝั่ง server ส่วน dialect อื่นใช้ transaction ฝั่ง client
// พร้อม unique constraint บนคู่ canonical เป็นเส้นป้องกันสุดท้าย
func (r *conversationRepository) GetOrCreate(userID, otherID uuid.UUID) (*models.Conversation, error) {
	p1, p2 := models.NormalizePair(userID, otherID)

	if r.db.Dialector.Name() == "postgres" {
		var conversation models.Conversation
		err := r.db.Raw("SELECT * FROM get_or_create_conversation(?, ?)", p1, p2).
			Scan(&conversation).Error
		if err != nil {
			return nil, err
		}
		return &conversation, nil
	}

	var conversation *models.Conversation
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Conversation
		err := tx.Where("participant1_id = ? AND participant2_id = ?", p1, p2).
			First(&existing).Error
		if err == nil {
			conversation = &existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now()
		created := &models.Conversation{
			ID:             uuid.New(),
			Participant1ID: p1,
			Participant2ID: p2,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.Create(created).Error; err != nil {
			return err
		}
		conversation = created
		return nil
	})
	if err != nil {
		// แพ้ race ให้อีก caller ที่สร้างก่อน ก็อ่าน row ของเขากลับมา
		if isDuplicateKey(err) {
			return r.FindByPair(userID, otherID)
		}
		return nil, err
	}
	return conversation, nil
}

// FindByParticipant ดึงบทสนทนาทั้งหมดของผู้ใช้ เรียงใหม่ไปเก่าตามข้อความล่าสุด
func (r *conversationRepository) FindByParticipant(userID uuid.UUID) ([]*models.Conversation, error) {
	var conversations []*models.Conversation
	err := r.db.Where("participant1_id = ? OR participant2_id = ?", userID, userID).
		Order("COALESCE(last_message_time, updated_at) DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

// isDuplicateKey ตรวจว่าเป็น unique constraint violation หรือไม่
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
