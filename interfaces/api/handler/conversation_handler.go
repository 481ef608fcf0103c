// interfaces/api/handler/conversation_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
	"github.com/zydnet/CineMystApp-sub002/domain/service"
	"github.com/zydnet/CineMystApp-sub002/interfaces/api/middleware"
)

type ConversationHandler struct {
	conversationService service.ConversationService
}

func NewConversationHandler(conversationService service.ConversationService) *ConversationHandler {
	return &ConversationHandler{
		conversationService: conversationService,
	}
}

// GetOrCreate เปิดบทสนทนากับผู้ใช้อีกคน คืนบทสนทนาเดิมถ้ามีอยู่แล้ว
func (h *ConversationHandler) GetOrCreate(c *fiber.Ctx) error {
	viewerID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var param dto.GetOrCreateConversationParam
	if err := c.BodyParser(&param); err != nil || param.UserID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	conversation, err := h.conversationService.GetOrCreate(viewerID, param.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    conversation,
	})
}

// GetUserConversations รายการบทสนทนาของ viewer เรียงตามข้อความล่าสุด
func (h *ConversationHandler) GetUserConversations(c *fiber.Ctx) error {
	viewerID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	items, err := h.conversationService.GetUserConversations(viewerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}
