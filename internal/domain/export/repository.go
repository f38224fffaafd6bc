package export

import "context"

// Repository reads the export view of approved work.
type Repository interface {
	ListApproved(ctx context.Context, filter Filter) ([]Row, error)
}
