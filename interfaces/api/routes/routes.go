// interfaces/api/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zydnet/CineMystApp-sub002/interfaces/api/handler"
	"github.com/zydnet/CineMystApp-sub002/interfaces/api/middleware"
)

// SetupRoutes กำหนดเส้นทาง API ทั้งหมด
func SetupRoutes(
	app *fiber.App,
	authMiddleware *middleware.AuthMiddleware,
	userHandler *handler.UserHandler,
	connectionHandler *handler.ConnectionHandler,
	conversationHandler *handler.ConversationHandler,
	messageHandler *handler.MessageHandler,
	gigHandler *handler.GigHandler,
) {
	api := app.Group("/api/v1")
	protected := authMiddleware.Protected()

	SetupUserRoutes(api, protected, userHandler)
	SetupConnectionRoutes(api, protected, connectionHandler)
	SetupConversationRoutes(api, protected, conversationHandler, messageHandler)
	SetupGigRoutes(api, protected, gigHandler)
}
