package contract

import (
	"context"

	"konusturk-be/internal/entity"
)

// ChatSessionRepository manages the global sessions collection (all users
// interleaved in one stored array).
type ChatSessionRepository interface {
	// FindAllByUser returns the user's sessions sorted descending by
	// UpdatedAt; ties keep storage order (stable sort).
	FindAllByUser(ctx context.Context, userId string) ([]entity.ChatSession, error)
	// FindById looks the session up in the global collection, unscoped by
	// user; nil when absent.
	FindById(ctx context.Context, id string) (*entity.ChatSession, error)
	Create(ctx context.Context, session *entity.ChatSession) error
	// Update replaces the stored session with the same id.
	// Returns entity.ErrSessionNotFound when the id is not in the collection.
	Update(ctx context.Context, session *entity.ChatSession) error
	// Delete removes the session unconditionally; unknown ids are a no-op.
	Delete(ctx context.Context, id string) error
}
