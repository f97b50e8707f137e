package implementation

import (
	"context"
	"testing"
	"time"

	"konusturk-be/internal/entity"
	"konusturk-be/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAllByUserStableOnEqualUpdatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewChatSessionRepository(kvstore.NewMemoryStore())

	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &entity.ChatSession{
			Id:        id,
			UserId:    "u1",
			CreatedAt: ts,
			UpdatedAt: ts,
		}))
	}

	// Equal timestamps keep storage order.
	sessions, err := repo.FindAllByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "a", sessions[0].Id)
	assert.Equal(t, "b", sessions[1].Id)
	assert.Equal(t, "c", sessions[2].Id)
}

func TestFindAllByUserFiltersOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewChatSessionRepository(kvstore.NewMemoryStore())

	ts := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.ChatSession{Id: "mine", UserId: "u1", CreatedAt: ts, UpdatedAt: ts}))
	require.NoError(t, repo.Create(ctx, &entity.ChatSession{Id: "theirs", UserId: "u2", CreatedAt: ts, UpdatedAt: ts}))

	sessions, err := repo.FindAllByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "mine", sessions[0].Id)
}

func TestUpdateUnknownSession(t *testing.T) {
	ctx := context.Background()
	repo := NewChatSessionRepository(kvstore.NewMemoryStore())

	err := repo.Update(ctx, &entity.ChatSession{Id: "nope"})
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestFindByIdIsUnscoped(t *testing.T) {
	ctx := context.Background()
	repo := NewChatSessionRepository(kvstore.NewMemoryStore())

	ts := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.ChatSession{Id: "s1", UserId: "u1", CreatedAt: ts, UpdatedAt: ts}))

	// No user filter on the id lookup.
	session, err := repo.FindById(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "u1", session.UserId)
}
