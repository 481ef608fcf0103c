// interfaces/api/routes/connection_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zydnet/CineMystApp-sub002/interfaces/api/handler"
)

// SetupConnectionRoutes เส้นทางของระบบ connection
func SetupConnectionRoutes(api fiber.Router, protected fiber.Handler, h *handler.ConnectionHandler) {
	connections := api.Group("/connections", protected)

	connections.Post("/request", h.SendRequest)
	connections.Post("/accept", h.AcceptRequest)
	connections.Post("/reject", h.RejectRequest)
	connections.Post("/cancel", h.CancelRequest)
	connections.Post("/remove", h.RemoveConnection)
	connections.Get("/", h.ListConnections)
	connections.Get("/state/:userId", h.GetState)
	connections.Get("/count/:userId", h.CountConnections)
}
