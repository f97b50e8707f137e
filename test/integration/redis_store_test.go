package integration

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"konusturk-be/pkg/kvstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set, skipping Redis integration test")
	}

	ctx := context.Background()
	store, err := kvstore.NewRedisStoreFromURL(ctx, redisURL)
	require.NoError(t, err)

	// Unique key so parallel runs don't collide.
	key := "konusturk_test_" + uuid.NewString()
	defer store.Delete(ctx, key)

	raw, err := store.Read(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, raw)

	type record struct {
		Id    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, store.Write(ctx, key, []record{{Id: "1", Email: "ayse@example.com"}}))

	raw, err = store.Read(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, raw)

	var got []record
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "ayse@example.com", got[0].Email)

	require.NoError(t, store.Delete(ctx, key))

	raw, err = store.Read(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, raw)
}
