package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/timesheet"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/database"
)

type entryRepository struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) timesheet.EntryRepository {
	return &entryRepository{db: db}
}

const entryColumns = `
	e.id, e.timesheet_id, e.worker_id, e.day_of_week, e.entry_date, e.job_site_id,
	e.clock_in_time, e.clock_in_latitude, e.clock_in_longitude, e.clock_in_address,
	e.clock_out_time, e.clock_out_latitude, e.clock_out_longitude, e.clock_out_address,
	e.ordinary_hours, e.overtime_hours, e.total_hours,
	e.worked_as, e.first_aid_injury, e.comments,
	e.status, e.host_company_name, e.supervisor_name, e.supervisor_contact,
	e.supervisor_signature, e.submitted_at,
	e.created_at, e.updated_at
`

func scanEntry(row pgx.Row, e *timesheet.Entry, withNames bool) error {
	dest := []interface{}{
		&e.ID, &e.TimesheetID, &e.WorkerID, &e.DayOfWeek, &e.EntryDate, &e.JobSiteID,
		&e.ClockInTime, &e.ClockInLatitude, &e.ClockInLongitude, &e.ClockInAddress,
		&e.ClockOutTime, &e.ClockOutLatitude, &e.ClockOutLongitude, &e.ClockOutAddress,
		&e.OrdinaryHours, &e.OvertimeHours, &e.TotalHours,
		&e.WorkedAs, &e.FirstAidInjury, &e.Comments,
		&e.Status, &e.HostCompanyName, &e.SupervisorName, &e.SupervisorContact,
		&e.SupervisorSignature, &e.SubmittedAt,
		&e.CreatedAt, &e.UpdatedAt,
	}
	if withNames {
		dest = append(dest, &e.JobSiteName)
	}
	return row.Scan(dest...)
}

// Create implements timesheet.EntryRepository.
func (r *entryRepository) Create(ctx context.Context, e timesheet.Entry) (timesheet.Entry, error) {
	q := database.GetQuerier(ctx, r.db)

	if e.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return timesheet.Entry{}, fmt.Errorf("failed to generate entry ID: %w", err)
		}
		e.ID = id.String()
	}

	query := `
		INSERT INTO timesheet_entries (
			id, timesheet_id, worker_id, day_of_week, entry_date, job_site_id,
			clock_in_time, clock_in_latitude, clock_in_longitude, clock_in_address,
			worked_as, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.ID,
		e.TimesheetID,
		e.WorkerID,
		e.DayOfWeek,
		e.EntryDate,
		e.JobSiteID,
		e.ClockInTime,
		e.ClockInLatitude,
		e.ClockInLongitude,
		e.ClockInAddress,
		e.WorkedAs,
		e.Status,
	).Scan(&e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_open_session" {
			return timesheet.Entry{}, timesheet.ErrAlreadyClockedIn
		}
		return timesheet.Entry{}, fmt.Errorf("failed to create entry: %w", err)
	}

	return e, nil
}

// GetByID implements timesheet.EntryRepository.
func (r *entryRepository) GetByID(ctx context.Context, id string) (timesheet.Entry, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `,
			s.name AS job_site_name
		FROM timesheet_entries e
		LEFT JOIN job_sites s ON s.id = e.job_site_id
		WHERE e.id = $1
	`

	var e timesheet.Entry
	err := scanEntry(q.QueryRow(ctx, query, id), &e, true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Entry{}, timesheet.ErrEntryNotFound
		}
		return timesheet.Entry{}, fmt.Errorf("failed to get entry by ID: %w", err)
	}

	return e, nil
}

// GetOpenSession implements timesheet.EntryRepository.
func (r *entryRepository) GetOpenSession(ctx context.Context, workerID string, date time.Time) (*timesheet.Entry, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `,
			s.name AS job_site_name
		FROM timesheet_entries e
		LEFT JOIN job_sites s ON s.id = e.job_site_id
		WHERE e.worker_id = $1
		  AND e.entry_date = $2
		  AND e.clock_in_time IS NOT NULL
		  AND e.clock_out_time IS NULL
		LIMIT 1
	`

	var e timesheet.Entry
	err := scanEntry(q.QueryRow(ctx, query, workerID, date), &e, true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No open session
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return &e, nil
}

// ListByTimesheet implements timesheet.EntryRepository.
func (r *entryRepository) ListByTimesheet(ctx context.Context, timesheetID string) ([]timesheet.Entry, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `,
			s.name AS job_site_name
		FROM timesheet_entries e
		LEFT JOIN job_sites s ON s.id = e.job_site_id
		WHERE e.timesheet_id = $1
		ORDER BY e.entry_date, e.clock_in_time
	`

	rows, err := q.Query(ctx, query, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var result []timesheet.Entry
	for rows.Next() {
		var e timesheet.Entry
		if err := scanEntry(rows, &e, true); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		result = append(result, e)
	}

	return result, rows.Err()
}

// ListByWorkerSince implements timesheet.EntryRepository.
func (r *entryRepository) ListByWorkerSince(ctx context.Context, workerID string, since time.Time) ([]timesheet.Entry, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `,
			s.name AS job_site_name
		FROM timesheet_entries e
		LEFT JOIN job_sites s ON s.id = e.job_site_id
		WHERE e.worker_id = $1
		  AND e.entry_date >= $2
		ORDER BY e.entry_date DESC, e.clock_in_time DESC
	`

	rows, err := q.Query(ctx, query, workerID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries since date: %w", err)
	}
	defer rows.Close()

	var result []timesheet.Entry
	for rows.Next() {
		var e timesheet.Entry
		if err := scanEntry(rows, &e, true); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		result = append(result, e)
	}

	return result, rows.Err()
}

// SumCompletedHours implements timesheet.EntryRepository.
func (r *entryRepository) SumCompletedHours(ctx context.Context, workerID string, date time.Time) (float64, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(total_hours), 0)
		FROM timesheet_entries
		WHERE worker_id = $1
		  AND entry_date = $2
		  AND clock_out_time IS NOT NULL
	`

	var total float64
	if err := q.QueryRow(ctx, query, workerID, date).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum completed hours: %w", err)
	}

	return total, nil
}

// UpdateClockOut implements timesheet.EntryRepository.
func (r *entryRepository) UpdateClockOut(ctx context.Context, e timesheet.Entry) error {
	q := database.GetQuerier(ctx, r.db)

	// The open-session predicate stops a concurrent clock-out from writing twice.
	query := `
		UPDATE timesheet_entries
		SET clock_out_time = $2,
			clock_out_latitude = $3,
			clock_out_longitude = $4,
			clock_out_address = $5,
			ordinary_hours = $6,
			overtime_hours = $7,
			total_hours = $8,
			comments = $9,
			first_aid_injury = $10,
			updated_at = now()
		WHERE id = $1
		  AND clock_out_time IS NULL
	`

	tag, err := q.Exec(ctx, query,
		e.ID,
		e.ClockOutTime,
		e.ClockOutLatitude,
		e.ClockOutLongitude,
		e.ClockOutAddress,
		e.OrdinaryHours,
		e.OvertimeHours,
		e.TotalHours,
		e.Comments,
		e.FirstAidInjury,
	)
	if err != nil {
		return fmt.Errorf("failed to update clock-out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrNotClockedIn
	}

	return nil
}

// UpdateStatus implements timesheet.EntryRepository.
func (r *entryRepository) UpdateStatus(ctx context.Context, e timesheet.Entry, from ...timesheet.Status) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheet_entries
		SET status = $2,
			host_company_name = $3,
			supervisor_name = $4,
			supervisor_contact = $5,
			supervisor_signature = $6,
			submitted_at = $7,
			updated_at = now()
		WHERE id = $1
	`
	args := []interface{}{
		e.ID,
		e.Status,
		e.HostCompanyName,
		e.SupervisorName,
		e.SupervisorContact,
		e.SupervisorSignature,
		e.SubmittedAt,
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
		return fmt.Errorf("failed to update entry status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if len(from) > 0 {
			return timesheet.ErrStaleState
		}
		return timesheet.ErrEntryNotFound
	}

	return nil
}
