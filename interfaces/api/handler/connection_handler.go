// interfaces/api/handler/connection_handler.go
package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
	"github.com/zydnet/CineMystApp-sub002/domain/service"
	"github.com/zydnet/CineMystApp-sub002/interfaces/api/middleware"
)

type ConnectionHandler struct {
	connectionService service.ConnectionService
}

func NewConnectionHandler(connectionService service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{
		connectionService: connectionService,
	}
}

// SendRequest ส่งคำขอเชื่อมต่อ
func (h *ConnectionHandler) SendRequest(c *fiber.Ctx) error {
	viewerID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var param dto.SendConnectionRequestParam
	if err := c.BodyParser(&param); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	connection, err := h.connectionService.SendRequest(viewerID, param.TargetID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.NewConnectionData(connection),
	})
}

// GetState ดูสถานะความสัมพันธ์กับผู้ใช้อีกคน
func (h *ConnectionHandler) GetState(c *fiber.Ctx) error {
	viewerID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid user id",
		})
	}

	state, err := h.connectionService.GetState(viewerID, otherID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.RelationshipStateData{State: state},
	})
}

// AcceptRequest ยอมรับคำขอเชื่อมต่อจาก requester
func (h *ConnectionHandler) AcceptRequest(c *fiber.Ctx) error {
	return h.handleAction(c, h.connectionService.AcceptRequest)
}

// RejectRequest ปฏิเสธคำขอเชื่อมต่อจาก requester
func (h *ConnectionHandler) RejectRequest(c *fiber.Ctx) error {
	return h.handleAction(c, h.connectionService.RejectRequest)
}

// CancelRequest ยกเลิกคำขอที่ viewer เป็นคนส่ง
func (h *ConnectionHandler) CancelRequest(c *fiber.Ctx) error {
	return h.handleAction(c, h.connectionService.CancelRequest)
}

// RemoveConnection ลบ connection กับผู้ใช้อีกคน
func (h *ConnectionHandler) RemoveConnection(c *fiber.Ctx) error {
	return h.handleAction(c, h.connectionService.RemoveConnection)
}

// handleAction รูปแบบร่วมของ accept/reject/cancel/remove: viewer + user id อีกฝ่าย
func (h *ConnectionHandler) handleAction(c *fiber.Ctx, action func(viewerID, otherID uuid.UUID) error) error {
	viewerID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var param dto.ConnectionActionParam
	if err := c.BodyParser(&param); err != nil || param.UserID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := action(viewerID, param.UserID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// ListConnections รายชื่อ connection ที่ accepted แล้วของ viewer
func (h *ConnectionHandler) ListConnections(c *fiber.Ctx) error {
	viewerID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	items, err := h.connectionService.ListConnections(viewerID, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}

// CountConnections จำนวน connection ของผู้ใช้
func (h *ConnectionHandler) CountConnections(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid user id",
		})
	}

	count, err := h.connectionService.CountConnections(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   count,
	})
}
