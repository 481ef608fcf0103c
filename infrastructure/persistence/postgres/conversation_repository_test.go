package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

func TestConversationRepository_GetOrCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	first, err := repo.GetOrCreate(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, first)

	t.Run("repeated call returns the same row", func(t *testing.T) {
		again, err := repo.GetOrCreate(alice.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
	})

	t.Run("argument order does not matter", func(t *testing.T) {
		swapped, err := repo.GetOrCreate(bob.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, swapped.ID)
	})

	t.Run("participants are stored canonically", func(t *testing.T) {
		p1, p2 := models.NormalizePair(alice.ID, bob.ID)
		assert.Equal(t, p1, first.Participant1ID)
		assert.Equal(t, p2, first.Participant2ID)
	})

	t.Run("different pair gets its own conversation", func(t *testing.T) {
		carol := createTestUser(t, db, "carol")
		other, err := repo.GetOrCreate(alice.ID, carol.ID)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, other.ID)
	})
}

func TestConversationRepository_FindByPair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	missing, err := repo.FindByPair(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := repo.GetOrCreate(alice.ID, bob.ID)
	require.NoError(t, err)

	found, err := repo.FindByPair(bob.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}

func TestConversationRepository_FindByParticipant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)
	messageRepo := NewMessageRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	withBob, err := repo.GetOrCreate(alice.ID, bob.ID)
	require.NoError(t, err)
	withCarol, err := repo.GetOrCreate(alice.ID, carol.ID)
	require.NoError(t, err)

	// ข้อความล่าสุดอยู่ในบทสนทนากับ bob
	older := time.Now().Add(-time.Hour)
	require.NoError(t, messageRepo.CreateWithPreview(&models.Message{
		ConversationID: withCarol.ID,
		SenderID:       carol.ID,
		Content:        "read for the part yet?",
		CreatedAt:      older,
		UpdatedAt:      older,
	}))
	require.NoError(t, messageRepo.CreateWithPreview(&models.Message{
		ConversationID: withBob.ID,
		SenderID:       bob.ID,
		Content:        "callback is tomorrow",
	}))

	conversations, err := repo.FindByParticipant(alice.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, withBob.ID, conversations[0].ID)
	assert.Equal(t, withCarol.ID, conversations[1].ID)

	// bob เห็นเฉพาะบทสนทนาของตัวเอง
	bobConversations, err := repo.FindByParticipant(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobConversations, 1)
	assert.Equal(t, withBob.ID, bobConversations[0].ID)
}
