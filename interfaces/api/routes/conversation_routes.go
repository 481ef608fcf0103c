// interfaces/api/routes/conversation_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zydnet/CineMystApp-sub002/interfaces/api/handler"
)

// SetupConversationRoutes เส้นทางของบทสนทนาและข้อความ
func SetupConversationRoutes(api fiber.Router, protected fiber.Handler, ch *handler.ConversationHandler, mh *handler.MessageHandler) {
	conversations := api.Group("/conversations", protected)

	conversations.Post("/", ch.GetOrCreate)
	conversations.Get("/", ch.GetUserConversations)

	conversations.Post("/:conversationId/messages", mh.SendMessage)
	conversations.Get("/:conversationId/messages", mh.GetMessages)
	conversations.Post("/:conversationId/read", mh.MarkRead)
}
