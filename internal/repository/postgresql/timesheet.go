package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/timesheet"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}

const timesheetColumns = `
	t.id, t.docket_number, t.order_number, t.worker_id, t.client_id,
	t.week_starting, t.week_ending, t.status,
	t.host_company_name, t.supervisor_name, t.supervisor_contact,
	t.supervisor_signature, t.supervisor_signed_at, t.injury_reported,
	t.total_ordinary_hours, t.total_overtime_hours, t.total_hours,
	t.submitted_at, t.created_at, t.updated_at
`

func scanTimesheet(row pgx.Row, ts *timesheet.Timesheet, withNames bool) error {
	dest := []interface{}{
		&ts.ID, &ts.DocketNumber, &ts.OrderNumber, &ts.WorkerID, &ts.ClientID,
		&ts.WeekStarting, &ts.WeekEnding, &ts.Status,
		&ts.HostCompanyName, &ts.SupervisorName, &ts.SupervisorContact,
		&ts.SupervisorSignature, &ts.SupervisorSignedAt, &ts.InjuryReported,
		&ts.TotalOrdinaryHours, &ts.TotalOvertimeHours, &ts.TotalHours,
		&ts.SubmittedAt, &ts.CreatedAt, &ts.UpdatedAt,
	}
	if withNames {
		dest = append(dest, &ts.WorkerName, &ts.ClientName)
	}
	return row.Scan(dest...)
}

// Create implements timesheet.TimesheetRepository.
func (r *timesheetRepository) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := database.GetQuerier(ctx, r.db)

	// DO NOTHING on the week key keeps the transaction alive so the caller can
	// fall back to the row a concurrent clock-in just created.
	query := `
		INSERT INTO timesheets (
			docket_number, order_number, worker_id, client_id,
			week_starting, week_ending, status, injury_reported
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT ON CONSTRAINT uq_timesheets_worker_week_client DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ts.DocketNumber,
		ts.OrderNumber,
		ts.WorkerID,
		ts.ClientID,
		ts.WeekStarting,
		ts.WeekEnding,
		ts.Status,
		ts.InjuryReported,
	).Scan(&ts.ID, &ts.CreatedAt, &ts.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_timesheets_docket_number" {
			return timesheet.Timesheet{}, timesheet.ErrDocketConflict
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}

	return ts, nil
}

// GetByID implements timesheet.TimesheetRepository.
func (r *timesheetRepository) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `,
			w.first_name || ' ' || w.last_name AS worker_name,
			c.name AS client_name
		FROM timesheets t
		LEFT JOIN workers w ON w.id = t.worker_id
		LEFT JOIN clients c ON c.id = t.client_id
		WHERE t.id = $1
	`

	var ts timesheet.Timesheet
	err := scanTimesheet(q.QueryRow(ctx, query, id), &ts, true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet by ID: %w", err)
	}

	return ts, nil
}

// GetByWorkerWeekClient implements timesheet.TimesheetRepository.
func (r *timesheetRepository) GetByWorkerWeekClient(ctx context.Context, workerID string, weekStarting time.Time, clientID string) (*timesheet.Timesheet, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		WHERE t.worker_id = $1
		  AND t.week_starting = $2
		  AND t.client_id = $3
		LIMIT 1
	`

	var ts timesheet.Timesheet
	err := scanTimesheet(q.QueryRow(ctx, query, workerID, weekStarting, clientID), &ts, false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No timesheet yet for this week
		}
		return nil, fmt.Errorf("failed to get timesheet by worker/week/client: %w", err)
	}

	return &ts, nil
}

// ListByWorker implements timesheet.TimesheetRepository.
func (r *timesheetRepository) ListByWorker(ctx context.Context, workerID string, filter timesheet.ListFilter) ([]timesheet.Timesheet, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `,
			w.first_name || ' ' || w.last_name AS worker_name,
			c.name AS client_name
		FROM timesheets t
		LEFT JOIN workers w ON w.id = t.worker_id
		LEFT JOIN clients c ON c.id = t.client_id
		WHERE t.worker_id = $1
	`
	args := []interface{}{workerID}

	if filter.Status != nil {
		query += ` AND t.status = $2`
		args = append(args, *filter.Status)
	}

	query += fmt.Sprintf(` ORDER BY t.week_starting DESC, t.created_at DESC LIMIT %d`, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	defer rows.Close()

	var result []timesheet.Timesheet
	for rows.Next() {
		var ts timesheet.Timesheet
		if err := scanTimesheet(rows, &ts, true); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		result = append(result, ts)
	}

	return result, rows.Err()
}

// ListByWorkerAndWeek implements timesheet.TimesheetRepository.
func (r *timesheetRepository) ListByWorkerAndWeek(ctx context.Context, workerID string, weekStarting time.Time) ([]timesheet.Timesheet, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `,
			w.first_name || ' ' || w.last_name AS worker_name,
			c.name AS client_name
		FROM timesheets t
		LEFT JOIN workers w ON w.id = t.worker_id
		LEFT JOIN clients c ON c.id = t.client_id
		WHERE t.worker_id = $1
		  AND t.week_starting = $2
		ORDER BY c.name
	`

	rows, err := q.Query(ctx, query, workerID, weekStarting)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets by week: %w", err)
	}
	defer rows.Close()

	var result []timesheet.Timesheet
	for rows.Next() {
		var ts timesheet.Timesheet
		if err := scanTimesheet(rows, &ts, true); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		result = append(result, ts)
	}

	return result, rows.Err()
}

// UpdateStatus implements timesheet.TimesheetRepository.
func (r *timesheetRepository) UpdateStatus(ctx context.Context, ts timesheet.Timesheet, from ...timesheet.Status) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET status = $2,
			host_company_name = $3,
			supervisor_name = $4,
			supervisor_contact = $5,
			supervisor_signature = $6,
			supervisor_signed_at = $7,
			injury_reported = $8,
			submitted_at = $9,
			updated_at = now()
		WHERE id = $1
	`
	args := []interface{}{
		ts.ID,
		ts.Status,
		ts.HostCompanyName,
		ts.SupervisorName,
		ts.SupervisorContact,
		ts.SupervisorSignature,
		ts.SupervisorSignedAt,
		ts.InjuryReported,
		ts.SubmittedAt,
	}

	if len(from) > 0 {
		states := make([]string, len(from))
		for i, s := range from {
			states[i] = string(s)
		}
		args = append(args, states)
		query += fmt.Sprintf(` AND status = ANY($%d)`, len(args))
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update timesheet status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if len(from) > 0 {
			return timesheet.ErrStaleState
		}
		return timesheet.ErrTimesheetNotFound
	}

	return nil
}

// UpdateTotals implements timesheet.TimesheetRepository.
func (r *timesheetRepository) UpdateTotals(ctx context.Context, id string, ordinary, overtime, total float64) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET total_ordinary_hours = $2,
			total_overtime_hours = $3,
			total_hours = $4,
			updated_at = now()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, ordinary, overtime, total)
	if err != nil {
		return fmt.Errorf("failed to update timesheet totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}

	return nil
}
