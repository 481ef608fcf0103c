package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

func TestConnectionRepository_FindByPair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConnectionRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Create(&models.Connection{
		RequesterID: alice.ID,
		ReceiverID:  bob.ID,
	}))

	t.Run("finds the edge in both directions", func(t *testing.T) {
		forward, err := repo.FindByPair(alice.ID, bob.ID)
		require.NoError(t, err)
		require.NotNil(t, forward)

		reverse, err := repo.FindByPair(bob.ID, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, reverse)

		assert.Equal(t, forward.ID, reverse.ID)
	})

	t.Run("returns nil when no record exists", func(t *testing.T) {
		carol := createTestUser(t, db, "carol")
		connection, err := repo.FindByPair(alice.ID, carol.ID)
		require.NoError(t, err)
		assert.Nil(t, connection)
	})
}

func TestConnectionRepository_UpdatePendingStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConnectionRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Create(&models.Connection{
		RequesterID: alice.ID,
		ReceiverID:  bob.ID,
	}))

	t.Run("wrong direction matches nothing", func(t *testing.T) {
		affected, err := repo.UpdatePendingStatus(bob.ID, alice.ID, models.ConnectionStatusAccepted)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("accept updates the pending row", func(t *testing.T) {
		affected, err := repo.UpdatePendingStatus(alice.ID, bob.ID, models.ConnectionStatusAccepted)
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		connection, err := repo.FindByPair(alice.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ConnectionStatusAccepted, connection.Status)
	})

	t.Run("second accept affects zero rows", func(t *testing.T) {
		affected, err := repo.UpdatePendingStatus(alice.ID, bob.ID, models.ConnectionStatusAccepted)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})
}

func TestConnectionRepository_DeletePending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConnectionRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Create(&models.Connection{
		RequesterID: alice.ID,
		ReceiverID:  bob.ID,
	}))

	// ผู้รับยกเลิกไม่ได้ มีแต่คนส่งเท่านั้น
	affected, err := repo.DeletePending(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.DeletePending(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	connection, err := repo.FindByPair(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, connection)
}

func TestConnectionRepository_DeleteByPair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConnectionRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Create(&models.Connection{
		RequesterID: alice.ID,
		ReceiverID:  bob.ID,
		Status:      models.ConnectionStatusAccepted,
	}))

	// ฝ่ายไหนเรียกก็ลบได้ ไม่สนทิศทางที่เก็บ
	affected, err := repo.DeleteByPair(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
}

func TestConnectionRepository_AcceptedQueries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConnectionRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	dave := createTestUser(t, db, "dave")

	// alice: accepted กับ bob (ขาออก) และ carol (ขาเข้า), pending กับ dave
	require.NoError(t, repo.Create(&models.Connection{
		RequesterID: alice.ID, ReceiverID: bob.ID, Status: models.ConnectionStatusAccepted,
	}))
	require.NoError(t, repo.Create(&models.Connection{
		RequesterID: carol.ID, ReceiverID: alice.ID, Status: models.ConnectionStatusAccepted,
	}))
	require.NoError(t, repo.Create(&models.Connection{
		RequesterID: alice.ID, ReceiverID: dave.ID,
	}))

	accepted, err := repo.FindAccepted(alice.ID, 0)
	require.NoError(t, err)
	assert.Len(t, accepted, 2)

	count, err := repo.CountAccepted(alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = repo.CountAccepted(dave.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
