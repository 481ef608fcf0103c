// application/serviceimpl/conversation_service.go
package serviceimpl

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
	"github.com/zydnet/CineMystApp-sub002/domain/models"
	"github.com/zydnet/CineMystApp-sub002/domain/repository"
	"github.com/zydnet/CineMystApp-sub002/domain/service"
	apperrors "github.com/zydnet/CineMystApp-sub002/pkg/errors"
)

type conversationService struct {
	conversationRepo repository.ConversationRepository
	userService      service.UserService
}

func NewConversationService(
	conversationRepo repository.ConversationRepository,
	userService service.UserService,
) service.ConversationService {
	return &conversationService{
		conversationRepo: conversationRepo,
		userService:      userService,
	}
}

// GetOrCreate คืนบทสนทนาของคู่ viewer/other สร้างใหม่ถ้ายังไม่มี
// การันตี row เดียวต่อคู่: pre-check ฝั่ง client เป็นแค่ optimization
// ความถูกต้องจริงอยู่ที่ get-or-create แบบ atomic ในชั้น store
func (s *conversationService) GetOrCreate(viewerID, otherID uuid.UUID) (*models.Conversation, error) {
	if viewerID == uuid.Nil {
		return nil, apperrors.Unauthenticated("no active session")
	}
	if viewerID == otherID {
		return nil, apperrors.InvalidArg("cannot start a conversation with yourself")
	}

	existing, err := s.conversationRepo.FindByPair(viewerID, otherID)
	if err != nil {
		return nil, storeErr("failed to look up conversation", err)
	}
	if existing != nil {
		return existing, nil
	}

	conversation, err := s.conversationRepo.GetOrCreate(viewerID, otherID)
	if err != nil {
		return nil, storeErr("failed to create conversation", err)
	}
	return conversation, nil
}

// GetUserConversations ดึงรายการบทสนทนาของ viewer พร้อมข้อมูลคู่สนทนา
// profile ที่ดึงไม่สำเร็จใช้ placeholder แทน รายการต้องไม่หลุดหายเงียบๆ
func (s *conversationService) GetUserConversations(viewerID uuid.UUID) ([]dto.ConversationItem, error) {
	if viewerID == uuid.Nil {
		return nil, apperrors.Unauthenticated("no active session")
	}

	conversations, err := s.conversationRepo.FindByParticipant(viewerID)
	if err != nil {
		return nil, storeErr("failed to list conversations", err)
	}

	otherIDs := make([]uuid.UUID, 0, len(conversations))
	for _, conversation := range conversations {
		otherIDs = append(otherIDs, conversation.OtherParticipant(viewerID))
	}

	summaries, err := s.userService.GetProfileSummaries(otherIDs)
	if err != nil {
		// profile ดึงไม่ได้ทั้งชุดก็ยังต้องคืนรายการ ใช้ placeholder ทั้งหมด
		summaries = map[uuid.UUID]dto.UserSummary{}
	}

	items := make([]dto.ConversationItem, 0, len(conversations))
	for _, conversation := range conversations {
		otherID := conversation.OtherParticipant(viewerID)
		summary, ok := summaries[otherID]
		if !ok {
			summary = dto.PlaceholderUserSummary(otherID)
		}
		items = append(items, dto.ConversationItem{
			ID:                 conversation.ID,
			OtherUser:          summary,
			LastMessageContent: conversation.LastMessageContent,
			LastMessageTime:    conversation.LastMessageTime,
			UnreadCount:        conversation.UnreadCount,
			UpdatedAt:          conversation.UpdatedAt,
		})
	}
	return items, nil
}
