// interfaces/api/handler/gig_handler.go
package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
	"github.com/zydnet/CineMystApp-sub002/domain/repository"
	"github.com/zydnet/CineMystApp-sub002/domain/service"
	"github.com/zydnet/CineMystApp-sub002/interfaces/api/middleware"
)

type GigHandler struct {
	gigService service.GigService
}

func NewGigHandler(gigService service.GigService) *GigHandler {
	return &GigHandler{
		gigService: gigService,
	}
}

// CreateGig ลงประกาศ casting call ใหม่
func (h *GigHandler) CreateGig(c *fiber.Ctx) error {
	viewerID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var req dto.CreateGigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	gig, err := h.gigService.CreateGig(viewerID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    gig,
	})
}

// GetGig ดูประกาศตาม ID
func (h *GigHandler) GetGig(c *fiber.Ctx) error {
	gigID, err := uuid.Parse(c.Params("gigId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid gig id",
		})
	}

	gig, err := h.gigService.GetGig(gigID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    gig,
	})
}

// UpdateGig แก้ไขประกาศของตัวเอง
func (h *GigHandler) UpdateGig(c *fiber.Ctx) error {
	viewerID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	gigID, err := uuid.Parse(c.Params("gigId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid gig id",
		})
	}

	var req dto.UpdateGigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	gig, err := h.gigService.UpdateGig(viewerID, gigID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    gig,
	})
}

// DeleteGig ลบประกาศของตัวเอง
func (h *GigHandler) DeleteGig(c *fiber.Ctx) error {
	viewerID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	gigID, err := uuid.Parse(c.Params("gigId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid gig id",
		})
	}

	if err := h.gigService.DeleteGig(viewerID, gigID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// ListGigs รายการประกาศพร้อมตัวกรอง role/location/open_only
func (h *GigHandler) ListGigs(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	filter := repository.GigFilter{
		Role:     c.Query("role"),
		Location: c.Query("location"),
		OpenOnly: c.Query("open_only") == "true",
	}

	gigs, err := h.gigService.ListGigs(filter, limit, offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    gigs,
	})
}
