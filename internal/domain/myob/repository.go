package myob

import "context"

type Repository interface {
	// Get returns the stored connection or ErrNotConnected.
	Get(ctx context.Context) (Connection, error)

	// Save upserts the single connection row.
	Save(ctx context.Context, c Connection) (Connection, error)

	Delete(ctx context.Context) error
}
