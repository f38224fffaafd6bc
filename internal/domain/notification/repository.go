package notification

import "context"

type Repository interface {
	// Get returns the settings row, inserting defaults when absent.
	Get(ctx context.Context) (Settings, error)

	Update(ctx context.Context, s Settings) (Settings, error)
}
