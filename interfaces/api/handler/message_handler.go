// interfaces/api/handler/message_handler.go
package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
	"github.com/zydnet/CineMystApp-sub002/domain/service"
	"github.com/zydnet/CineMystApp-sub002/interfaces/api/middleware"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// SendMessage ส่งข้อความในบทสนทนา
func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	viewerID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	conversationID, err := uuid.Parse(c.Params("conversationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid conversation id",
		})
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	message, err := h.messageService.SendMessage(viewerID, conversationID, req.Content, req.MessageType)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.NewMessageData(message),
	})
}

// GetMessages ดึงข้อความล่าสุดในบทสนทนา เรียงจากเก่าไปใหม่
func (h *MessageHandler) GetMessages(c *fiber.Ctx) error {
	viewerID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	conversationID, err := uuid.Parse(c.Params("conversationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid conversation id",
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	messages, err := h.messageService.GetMessages(viewerID, conversationID, limit)
	if err != nil {
		return respondError(c, err)
	}

	data := make([]dto.MessageData, 0, len(messages))
	for _, message := range messages {
		data = append(data, dto.NewMessageData(message))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// MarkRead ทำเครื่องหมายอ่านแล้วทั้งบทสนทนา
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	viewerID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	conversationID, err := uuid.Parse(c.Params("conversationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid conversation id",
		})
	}

	marked, err := h.messageService.MarkConversationRead(viewerID, conversationID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"marked_count": marked,
	})
}
