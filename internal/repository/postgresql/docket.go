package postgresql

import (
	"context"
	"fmt"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/timesheet"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/database"
)

type docketRepository struct {
	db *database.DB
}

func NewDocketRepository(db *database.DB) timesheet.DocketRepository {
	return &docketRepository{db: db}
}

// Next implements timesheet.DocketRepository. The upsert increments the
// counter atomically, so concurrent callers each get a distinct number.
// The seed makes the first issued docket 12538.
func (r *docketRepository) Next(ctx context.Context) (int64, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO docket_counters (id, last_value, updated_at)
		VALUES (1, 12538, now())
		ON CONFLICT (id)
		DO UPDATE SET last_value = docket_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`

	var value int64
	if err := q.QueryRow(ctx, query).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to allocate docket number: %w", err)
	}

	return value, nil
}
