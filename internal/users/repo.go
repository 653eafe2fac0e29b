package users

import "context"

// Repo defines persistence operations for users. Email uniqueness is the
// caller's responsibility; the store layer only guards against duplicate IDs,
// and does so silently.
type Repo interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
}
