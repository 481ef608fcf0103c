// interfaces/api/handler/respond.go
package handler

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/zydnet/CineMystApp-sub002/pkg/errors"
)

// statusOf แปลงรหัส AppError เป็น HTTP status
func statusOf(err error) int {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeInvalidArgument:
		return fiber.StatusBadRequest
	case apperrors.CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case apperrors.CodePermissionDenied:
		return fiber.StatusForbidden
	case apperrors.CodeNotFound:
		return fiber.StatusNotFound
	case apperrors.CodeAlreadyExists:
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// respondError ส่ง error กลับในรูปแบบเดียวกันทุก endpoint
func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusOf(err)).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}
