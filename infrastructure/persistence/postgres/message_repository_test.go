package postgres

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

func TestMessageRepository_CreateWithPreview(t *testing.T) {
	db := setupTestDB(t)
	conversationRepo := NewConversationRepository(db)
	repo := NewMessageRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	conversation, err := conversationRepo.GetOrCreate(alice.ID, bob.ID)
	require.NoError(t, err)

	message := &models.Message{
		ConversationID: conversation.ID,
		SenderID:       alice.ID,
		Content:        "Hello",
	}
	require.NoError(t, repo.CreateWithPreview(message))

	updated, err := conversationRepo.GetByID(conversation.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastMessageID)
	assert.Equal(t, message.ID, *updated.LastMessageID)
	assert.Equal(t, "Hello", updated.LastMessageContent)
	require.NotNil(t, updated.LastMessageTime)
	assert.Equal(t, 1, updated.UnreadCount)

	t.Run("unread count accumulates", func(t *testing.T) {
		require.NoError(t, repo.CreateWithPreview(&models.Message{
			ConversationID: conversation.ID,
			SenderID:       alice.ID,
			Content:        "are you there?",
		}))

		updated, err := conversationRepo.GetByID(conversation.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.UnreadCount)
		assert.Equal(t, "are you there?", updated.LastMessageContent)
	})

	t.Run("long content is truncated in the preview", func(t *testing.T) {
		long := ""
		for i := 0; i < 40; i++ {
			long += "screenplay "
		}
		require.NoError(t, repo.CreateWithPreview(&models.Message{
			ConversationID: conversation.ID,
			SenderID:       alice.ID,
			Content:        long,
		}))

		updated, err := conversationRepo.GetByID(conversation.ID)
		require.NoError(t, err)
		assert.Len(t, updated.LastMessageContent, previewLength)
	})
}

func TestMessageRepository_GetByConversation(t *testing.T) {
	db := setupTestDB(t)
	conversationRepo := NewConversationRepository(db)
	repo := NewMessageRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	conversation, err := conversationRepo.GetOrCreate(alice.ID, bob.ID)
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 10; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.CreateWithPreview(&models.Message{
			ConversationID: conversation.ID,
			SenderID:       alice.ID,
			Content:        fmt.Sprintf("take %d", i),
			CreatedAt:      ts,
			UpdatedAt:      ts,
		}))
	}

	t.Run("limit keeps only the newest messages", func(t *testing.T) {
		messages, err := repo.GetByConversation(conversation.ID, 5)
		require.NoError(t, err)
		require.Len(t, messages, 5)
		// ได้ 5 รายการล่าสุด เรียงจากเก่าไปใหม่
		assert.Equal(t, "take 5", messages[0].Content)
		assert.Equal(t, "take 9", messages[4].Content)
	})

	t.Run("chronological order", func(t *testing.T) {
		messages, err := repo.GetByConversation(conversation.ID, 50)
		require.NoError(t, err)
		require.Len(t, messages, 10)
		for i := 1; i < len(messages); i++ {
			assert.False(t, messages[i].CreatedAt.Before(messages[i-1].CreatedAt))
		}
	})
}

func TestMessageRepository_MarkConversationRead(t *testing.T) {
	db := setupTestDB(t)
	conversationRepo := NewConversationRepository(db)
	repo := NewMessageRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	conversation, err := conversationRepo.GetOrCreate(alice.ID, bob.ID)
	require.NoError(t, err)

	require.NoError(t, repo.CreateWithPreview(&models.Message{
		ConversationID: conversation.ID, SenderID: alice.ID, Content: "script attached",
	}))
	require.NoError(t, repo.CreateWithPreview(&models.Message{
		ConversationID: conversation.ID, SenderID: alice.ID, Content: "let me know",
	}))
	require.NoError(t, repo.CreateWithPreview(&models.Message{
		ConversationID: conversation.ID, SenderID: bob.ID, Content: "on it",
	}))

	// bob อ่าน: mark เฉพาะข้อความของ alice
	marked, err := repo.MarkConversationRead(conversation.ID, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, marked)

	messages, err := repo.GetByConversation(conversation.ID, 50)
	require.NoError(t, err)
	for _, message := range messages {
		if message.SenderID == alice.ID {
			assert.True(t, message.IsRead)
		} else {
			assert.False(t, message.IsRead)
		}
	}

	updated, err := conversationRepo.GetByID(conversation.ID)
	require.NoError(t, err)
	assert.Zero(t, updated.UnreadCount)

	t.Run("second call is a no-op", func(t *testing.T) {
		marked, err := repo.MarkConversationRead(conversation.ID, bob.ID)
		require.NoError(t, err)
		assert.Zero(t, marked)
	})
}
