// interfaces/api/routes/user_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zydnet/CineMystApp-sub002/interfaces/api/handler"
)

// SetupUserRoutes เส้นทางของ profile ผู้ใช้
func SetupUserRoutes(api fiber.Router, protected fiber.Handler, h *handler.UserHandler) {
	users := api.Group("/users", protected)

	users.Get("/search", h.SearchUsers)
	users.Get("/:userId", h.GetProfile)
	users.Put("/me", h.UpdateProfile)
}
