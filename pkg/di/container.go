// pkg/di/container.go
package di

import (
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/zydnet/CineMystApp-sub002/application/serviceimpl"
	"github.com/zydnet/CineMystApp-sub002/domain/port"
	"github.com/zydnet/CineMystApp-sub002/domain/repository"
	"github.com/zydnet/CineMystApp-sub002/domain/service"
	"github.com/zydnet/CineMystApp-sub002/infrastructure/cache"
	"github.com/zydnet/CineMystApp-sub002/infrastructure/persistence/postgres"
	"github.com/zydnet/CineMystApp-sub002/interfaces/api/handler"
)

// Container เก็บ dependencies ทั้งหมดของแอปพลิเคชัน
type Container struct {
	// Repositories
	UserRepo         repository.UserRepository
	ConnectionRepo   repository.ConnectionRepository
	ConversationRepo repository.ConversationRepository
	MessageRepo      repository.MessageRepository
	GigRepo          repository.GigRepository

	// Infrastructure
	RedisClient  *redis.Client
	ProfileCache port.ProfileCachePort

	// Services
	UserService         service.UserService
	ConnectionService   service.ConnectionService
	ConversationService service.ConversationService
	MessageService      service.MessageService
	GigService          service.GigService

	// Handlers
	UserHandler         *handler.UserHandler
	ConnectionHandler   *handler.ConnectionHandler
	ConversationHandler *handler.ConversationHandler
	MessageHandler      *handler.MessageHandler
	GigHandler          *handler.GigHandler
}

// NewContainer ประกอบ dependencies ทั้งหมด redisClient เป็น nil ได้
// ถ้าไม่ได้ต่อ Redis ระบบจะข้าม cache แล้วอ่านฐานข้อมูลตรง
func NewContainer(db *gorm.DB, redisClient *redis.Client) (*Container, error) {
	c := &Container{RedisClient: redisClient}

	// Repositories
	c.UserRepo = postgres.NewUserRepository(db)
	c.ConnectionRepo = postgres.NewConnectionRepository(db)
	c.ConversationRepo = postgres.NewConversationRepository(db)
	c.MessageRepo = postgres.NewMessageRepository(db)
	c.GigRepo = postgres.NewGigRepository(db)

	// Cache
	if redisClient != nil {
		c.ProfileCache = cache.NewProfileCache(redisClient)
	}

	// Services
	c.UserService = serviceimpl.NewUserService(c.UserRepo, c.ProfileCache)
	c.ConnectionService = serviceimpl.NewConnectionService(c.ConnectionRepo, c.UserRepo, c.UserService)
	c.ConversationService = serviceimpl.NewConversationService(c.ConversationRepo, c.UserService)
	c.MessageService = serviceimpl.NewMessageService(c.MessageRepo, c.ConversationRepo)
	c.GigService = serviceimpl.NewGigService(c.GigRepo)

	// Handlers
	c.UserHandler = handler.NewUserHandler(c.UserService)
	c.ConnectionHandler = handler.NewConnectionHandler(c.ConnectionService)
	c.ConversationHandler = handler.NewConversationHandler(c.ConversationService)
	c.MessageHandler = handler.NewMessageHandler(c.MessageService)
	c.GigHandler = handler.NewGigHandler(c.GigService)

	return c, nil
}
