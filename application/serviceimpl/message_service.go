// application/serviceimpl/message_service.go
package serviceimpl

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
	"github.com/zydnet/CineMystApp-sub002/domain/repository"
	"github.com/zydnet/CineMystApp-sub002/domain/service"
	apperrors "github.com/zydnet/CineMystApp-sub002/pkg/errors"
)

type messageService struct {
	messageRepo      repository.MessageRepository
	conversationRepo repository.ConversationRepository
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	conversationRepo repository.ConversationRepository,
) service.MessageService {
	return &messageService{
		messageRepo:      messageRepo,
		conversationRepo: conversationRepo,
	}
}

// loadConversationFor ดึงบทสนทนาและตรวจว่า viewer เป็น participant
func (s *messageService) loadConversationFor(viewerID, conversationID uuid.UUID) (*models.Conversation, error) {
	conversation, err := s.conversationRepo.GetByID(conversationID)
	if err != nil {
		return nil, storeErr("failed to load conversation", err)
	}
	if conversation == nil {
		return nil, apperrors.NotFound("conversation not found")
	}
	if !conversation.HasParticipant(viewerID) {
		return nil, apperrors.New(apperrors.CodePermissionDenied, "you are not a participant of this conversation")
	}
	return conversation, nil
}

// SendMessage บันทึกข้อความใหม่ และอัพเดต preview ของบทสนทนาไปพร้อมกัน
func (s *messageService) SendMessage(viewerID, conversationID uuid.UUID, content, messageType string) (*models.Message, error) {
	if viewerID == uuid.Nil {
		return nil, apperrors.Unauthenticated("no active session")
	}
	if content == "" {
		return nil, apperrors.InvalidArg("message content is required")
	}
	if messageType == "" {
		messageType = models.MessageTypeText
	}
	if !models.ValidMessageType(messageType) {
		return nil, apperrors.InvalidArg("unsupported message type")
	}

	if _, err := s.loadConversationFor(viewerID, conversationID); err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       viewerID,
		Content:        content,
		MessageType:    messageType,
		IsRead:         false,
	}
	if err := s.messageRepo.CreateWithPreview(message); err != nil {
		return nil, storeErr("failed to send message", err)
	}
	return message, nil
}

// GetMessages ดึงข้อความล่าสุด limit รายการ เรียงจากเก่าไปใหม่
func (s *messageService) GetMessages(viewerID, conversationID uuid.UUID, limit int) ([]*models.Message, error) {
	if _, err := s.loadConversationFor(viewerID, conversationID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.GetByConversation(conversationID, limit)
	if err != nil {
		return nil, storeErr("failed to fetch messages", err)
	}
	return messages, nil
}

// MarkConversationRead ทำเครื่องหมายอ่านแล้วให้ข้อความจากอีกฝ่ายทั้งหมด
func (s *messageService) MarkConversationRead(viewerID, conversationID uuid.UUID) (int64, error) {
	if viewerID == uuid.Nil {
		return 0, apperrors.Unauthenticated("no active session")
	}

	if _, err := s.loadConversationFor(viewerID, conversationID); err != nil {
		return 0, err
	}

	marked, err := s.messageRepo.MarkConversationRead(conversationID, viewerID)
	if err != nil {
		return 0, storeErr("failed to mark conversation read", err)
	}
	return marked, nil
}
