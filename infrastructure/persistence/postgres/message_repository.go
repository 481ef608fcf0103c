// infrastructure/persistence/postgres/message_repository.go
package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
	"github.com/zydnet/CineMystApp-sub002/domain/repository"
)

// previewLength ความยาวสูงสุดของ snippet ที่เก็บใน conversation preview
const previewLength = 120

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository สร้าง repository ใหม่
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// GetByID ดึงข้อความตาม ID
func (r *messageRepository) GetByID(id uuid.UUID) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// CreateWithPreview บันทึกข้อความและอัพเดต preview ของ conversation แม่
// ใน transaction เดียว จะได้ไม่มีหน้าต่างที่ข้อความโผล่ใน thread
// แต่ inbox ยังไม่สะท้อน
func (r *messageRepository) CreateWithPreview(message *models.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	now := time.Now()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = now
	}
	if message.UpdatedAt.IsZero() {
		message.UpdatedAt = now
	}
	if message.MessageType == "" {
		message.MessageType = models.MessageTypeText
	}

	snippet := message.Content
	if len(snippet) > previewLength {
		snippet = snippet[:previewLength]
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}

		return tx.Model(&models.Conversation{}).
			Where("id = ?", message.ConversationID).
			Updates(map[string]interface{}{
				"last_message_id":      message.ID,
				"last_message_content": snippet,
				"last_message_time":    message.CreatedAt,
				"unread_count":         gorm.Expr("unread_count + 1"),
				"updated_at":           now,
			}).Error
	})
}

// GetByConversation ดึงข้อความล่าสุด limit รายการ
func (r *messageRepository) GetByConversation(conversationID uuid.UUID, limit int) ([]*models.Message, error) {
	if limit <= 0 {
		limit = 50
	}

	var messages []*models.Message
	// Fetch ข้อความล่าสุดก่อน (DESC) แล้วค่อย reverse เป็น ASC
	if err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}

	// Reverse array เพื่อให้เป็น ASC (เก่า → ใหม่) ก่อน return
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// MarkConversationRead ทำเครื่องหมายอ่านแล้วให้ข้อความของอีกฝ่ายทั้งหมด
// และ reset unread count ใน transaction เดียว
func (r *messageRepository) MarkConversationRead(conversationID, readerID uuid.UUID) (int64, error) {
	var marked int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Message{}).
			Where("conversation_id = ? AND sender_id <> ? AND is_read = ?",
				conversationID, readerID, false).
			Updates(map[string]interface{}{
				"is_read":    true,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		marked = result.RowsAffected

		return tx.Model(&models.Conversation{}).
			Where("id = ?", conversationID).
			Updates(map[string]interface{}{
				"unread_count": 0,
				"updated_at":   time.Now(),
			}).Error
	})
	return marked, err
}
