package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

func TestUserRepository_FindByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	createTestUser(t, db, "carol")

	users, err := repo.FindByIDs([]uuid.UUID{alice.ID, bob.ID})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = repo.FindByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{
		Username:    "jane_doe",
		DisplayName: "Jane Doe",
		Role:        "casting_director",
	}))
	require.NoError(t, repo.Create(&models.User{
		Username:    "john_smith",
		DisplayName: "John Smith",
		Role:        "actor",
	}))

	t.Run("matches username case-insensitively", func(t *testing.T) {
		users, err := repo.Search("JANE", 10, 0)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "jane_doe", users[0].Username)
	})

	t.Run("matches display name", func(t *testing.T) {
		users, err := repo.Search("Smith", 10, 0)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "john_smith", users[0].Username)
	})

	t.Run("empty query is an error", func(t *testing.T) {
		_, err := repo.Search("", 10, 0)
		assert.Error(t, err)
	})
}
