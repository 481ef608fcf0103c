package serviceimpl

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
	"github.com/zydnet/CineMystApp-sub002/domain/service"
	"github.com/zydnet/CineMystApp-sub002/infrastructure/persistence/database"
	"github.com/zydnet/CineMystApp-sub002/infrastructure/persistence/postgres"
)

// testEnv ประกอบ service ทั้งชุดบน sqlite ชั่วคราว ไม่มี cache
type testEnv struct {
	db                  *gorm.DB
	userService         service.UserService
	connectionService   service.ConnectionService
	conversationService service.ConversationService
	messageService      service.MessageService
	gigService          service.GigService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.SetupDatabase(db))

	userRepo := postgres.NewUserRepository(db)
	connectionRepo := postgres.NewConnectionRepository(db)
	conversationRepo := postgres.NewConversationRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	gigRepo := postgres.NewGigRepository(db)

	userService := NewUserService(userRepo, nil)
	return &testEnv{
		db:                  db,
		userService:         userService,
		connectionService:   NewConnectionService(connectionRepo, userRepo, userService),
		conversationService: NewConversationService(conversationRepo, userService),
		messageService:      NewMessageService(messageRepo, conversationRepo),
		gigService:          NewGigService(gigRepo),
	}
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()

	user := &models.User{
		ID:          uuid.New(),
		Username:    username,
		DisplayName: username,
		Role:        "actor",
	}
	require.NoError(t, e.userService.CreateUser(user))
	return user
}
