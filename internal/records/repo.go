package records

import "context"

// Repo defines persistence operations for improvement records. No update or
// delete is exposed; records are write-once.
type Repo interface {
	Create(ctx context.Context, record Record) error
	GetByID(ctx context.Context, userID, recordID string) (Record, error)
	// ListByUser returns the user's records ordered by CreatedAt descending.
	ListByUser(ctx context.Context, userID string) ([]Record, error)
}
