package contract

import (
	"context"

	"konusturk-be/internal/entity"
)

// UserRepository manages the users collection and the current-user pointer.
// The pointer stores a full copy of the record, not a reference: reads return
// it verbatim without validating against the directory.
type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	// FindByEmail matches case-sensitively; nil when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByCredentials matches the exact (email, password) pair; nil otherwise.
	FindByCredentials(ctx context.Context, email, password string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	// Update replaces the directory entry with the same id.
	// Returns entity.ErrUserNotFound when the id is not in the directory.
	Update(ctx context.Context, user *entity.User) error

	CurrentUser(ctx context.Context) (*entity.User, error)
	SetCurrentUser(ctx context.Context, user *entity.User) error
	ClearCurrentUser(ctx context.Context) error
}
