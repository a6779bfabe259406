package roles

import "context"

// Store is the durable record collection keyed by user ID. Implementations
// must make every successful write visible across restarts, and a failed
// write must leave previously stored state untouched for subsequent reads.
type Store interface {
	// Get returns the record for userID, or ErrNotFound.
	Get(ctx context.Context, userID string) (Record, error)

	// Put upserts a record by its UserID.
	Put(ctx context.Context, rec Record) error

	// Delete removes the record for userID. Deleting an absent record is
	// not an error.
	Delete(ctx context.Context, userID string) error

	// ListAll returns every stored record, ordered by user ID.
	ListAll(ctx context.Context) ([]Record, error)
}
