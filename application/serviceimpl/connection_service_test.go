package serviceimpl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
	apperrors "github.com/zydnet/CineMystApp-sub002/pkg/errors"
)

func TestConnectionService_SendRequest(t *testing.T) {
	env := newTestEnv(t)
	u1 := env.createUser(t, "u1")
	u2 := env.createUser(t, "u2")

	t.Run("requires a session", func(t *testing.T) {
		_, err := env.connectionService.SendRequest(uuid.Nil, u2.ID)
		assert.Equal(t, apperrors.CodeUnauthenticated, apperrors.CodeOf(err))
	})

	t.Run("rejects self target", func(t *testing.T) {
		_, err := env.connectionService.SendRequest(u1.ID, u1.ID)
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})

	t.Run("rejects unknown target", func(t *testing.T) {
		_, err := env.connectionService.SendRequest(u1.ID, uuid.New())
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})

	t.Run("creates a pending request with viewer-relative states", func(t *testing.T) {
		_, err := env.connectionService.SendRequest(u1.ID, u2.ID)
		require.NoError(t, err)

		state, err := env.connectionService.GetState(u1.ID, u2.ID)
		require.NoError(t, err)
		assert.Equal(t, models.RelationshipRequestSent, state)

		state, err = env.connectionService.GetState(u2.ID, u1.ID)
		require.NoError(t, err)
		assert.Equal(t, models.RelationshipRequestReceived, state)
	})

	t.Run("duplicate request is rejected", func(t *testing.T) {
		_, err := env.connectionService.SendRequest(u1.ID, u2.ID)
		assert.Equal(t, apperrors.CodeAlreadyExists, apperrors.CodeOf(err))

		// อีกฝั่งส่งกลับมาก็โดนเหมือนกัน edge เดียวกัน
		_, err = env.connectionService.SendRequest(u2.ID, u1.ID)
		assert.Equal(t, apperrors.CodeAlreadyExists, apperrors.CodeOf(err))
	})
}

func TestConnectionService_AcceptRequest(t *testing.T) {
	env := newTestEnv(t)
	u1 := env.createUser(t, "u1")
	u2 := env.createUser(t, "u2")

	_, err := env.connectionService.SendRequest(u1.ID, u2.ID)
	require.NoError(t, err)

	require.NoError(t, env.connectionService.AcceptRequest(u2.ID, u1.ID))

	// connected ต้องสมมาตรทั้งสองฝั่ง
	state, err := env.connectionService.GetState(u1.ID, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipConnected, state)

	state, err = env.connectionService.GetState(u2.ID, u1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipConnected, state)

	t.Run("repeated accept is idempotent", func(t *testing.T) {
		assert.NoError(t, env.connectionService.AcceptRequest(u2.ID, u1.ID))
	})

	t.Run("connection counts", func(t *testing.T) {
		count, err := env.connectionService.CountConnections(u1.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})
}

func TestConnectionService_RejectThenResend(t *testing.T) {
	env := newTestEnv(t)
	u1 := env.createUser(t, "u1")
	u2 := env.createUser(t, "u2")

	_, err := env.connectionService.SendRequest(u1.ID, u2.ID)
	require.NoError(t, err)
	require.NoError(t, env.connectionService.RejectRequest(u2.ID, u1.ID))

	state, err := env.connectionService.GetState(u1.ID, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipRejected, state)

	// การปฏิเสธไม่ปิดตายการขอใหม่ record เดิมถูกเปิดเป็น pending อีกครั้ง
	_, err = env.connectionService.SendRequest(u1.ID, u2.ID)
	require.NoError(t, err)

	state, err = env.connectionService.GetState(u1.ID, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipRequestSent, state)

	state, err = env.connectionService.GetState(u2.ID, u1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipRequestReceived, state)
}

func TestConnectionService_RejectedReopenSwapsDirection(t *testing.T) {
	env := newTestEnv(t)
	u1 := env.createUser(t, "u1")
	u2 := env.createUser(t, "u2")

	_, err := env.connectionService.SendRequest(u1.ID, u2.ID)
	require.NoError(t, err)
	require.NoError(t, env.connectionService.RejectRequest(u2.ID, u1.ID))

	// คราวนี้ u2 เป็นฝ่ายขอ ทิศทางต้องกลับด้าน
	_, err = env.connectionService.SendRequest(u2.ID, u1.ID)
	require.NoError(t, err)

	state, err := env.connectionService.GetState(u2.ID, u1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipRequestSent, state)

	state, err = env.connectionService.GetState(u1.ID, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipRequestReceived, state)
}

func TestConnectionService_CancelRequest(t *testing.T) {
	env := newTestEnv(t)
	u1 := env.createUser(t, "u1")
	u2 := env.createUser(t, "u2")

	_, err := env.connectionService.SendRequest(u1.ID, u2.ID)
	require.NoError(t, err)

	require.NoError(t, env.connectionService.CancelRequest(u1.ID, u2.ID))

	state, err := env.connectionService.GetState(u1.ID, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipNotConnected, state)
}

func TestConnectionService_RemoveConnection(t *testing.T) {
	env := newTestEnv(t)
	u1 := env.createUser(t, "u1")
	u2 := env.createUser(t, "u2")

	_, err := env.connectionService.SendRequest(u1.ID, u2.ID)
	require.NoError(t, err)
	require.NoError(t, env.connectionService.AcceptRequest(u2.ID, u1.ID))

	// ฝ่ายไหนถอนก็ได้
	require.NoError(t, env.connectionService.RemoveConnection(u2.ID, u1.ID))

	for _, pair := range [][2]uuid.UUID{{u1.ID, u2.ID}, {u2.ID, u1.ID}} {
		state, err := env.connectionService.GetState(pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, models.RelationshipNotConnected, state)
	}
}

func TestConnectionService_ListConnections(t *testing.T) {
	env := newTestEnv(t)
	u1 := env.createUser(t, "u1")
	u2 := env.createUser(t, "u2")
	u3 := env.createUser(t, "u3")

	for _, other := range []uuid.UUID{u2.ID, u3.ID} {
		_, err := env.connectionService.SendRequest(u1.ID, other)
		require.NoError(t, err)
		require.NoError(t, env.connectionService.AcceptRequest(other, u1.ID))
	}

	items, err := env.connectionService.ListConnections(u1.ID, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	usernames := map[string]bool{}
	for _, item := range items {
		usernames[item.User.Username] = true
		assert.NotEqual(t, u1.ID, item.User.ID)
	}
	assert.True(t, usernames["u2"])
	assert.True(t, usernames["u3"])
}
