package kvstore

import (
	"context"
	"encoding/json"
)

// Fixed collection keys. The whole collection lives under one key and is
// rewritten in full on every mutation.
const (
	UsersKey        = "konusturk_users"
	CurrentUserKey  = "konusturk_current_user"
	ChatSessionsKey = "konusturk_chat_sessions"
)

// Store is a synchronous key-value document store. Read returns nil (and no
// error) when the key is absent. Write serializes the value as JSON and fully
// replaces any prior contents under the key. There are no transactions across
// keys; storage-medium failures propagate to the caller as-is.
type Store interface {
	Read(ctx context.Context, key string) (json.RawMessage, error)
	Write(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}
