package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/worker"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.Repository {
	return &workerRepository{db: db}
}

const workerColumns = `
	id, first_name, last_name, email, phone_number, password_hash, role,
	pay_rate_base, pay_rate_overtime, pay_rate_weekend, pay_rate_night,
	work_days, is_active, created_at, updated_at
`

func scanWorker(row pgx.Row, w *worker.Worker) error {
	return row.Scan(
		&w.ID, &w.FirstName, &w.LastName, &w.Email, &w.PhoneNumber, &w.PasswordHash, &w.Role,
		&w.PayRateBase, &w.PayRateOvertime, &w.PayRateWeekend, &w.PayRateNight,
		&w.WorkDays, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
}

// Create implements worker.Repository.
func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (
			first_name, last_name, email, phone_number, password_hash, role,
			pay_rate_base, pay_rate_overtime, pay_rate_weekend, pay_rate_night,
			work_days
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		w.FirstName,
		w.LastName,
		w.Email,
		w.PhoneNumber,
		w.PasswordHash,
		w.Role,
		w.PayRateBase,
		w.PayRateOvertime,
		w.PayRateWeekend,
		w.PayRateNight,
		w.WorkDays,
	).Scan(&w.ID, &w.IsActive, &w.CreatedAt, &w.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.Worker{}, worker.ErrEmailTaken
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

// GetByID implements worker.Repository.
func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`

	var w worker.Worker
	err := scanWorker(q.QueryRow(ctx, query, id), &w)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by ID: %w", err)
	}

	return w, nil
}

// GetByEmail implements worker.Repository.
func (r *workerRepository) GetByEmail(ctx context.Context, email string) (worker.Worker, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE lower(email) = lower($1)`

	var w worker.Worker
	err := scanWorker(q.QueryRow(ctx, query, email), &w)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by email: %w", err)
	}

	return w, nil
}

// List implements worker.Repository.
func (r *workerRepository) List(ctx context.Context) ([]worker.Worker, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers
		WHERE is_active
		ORDER BY first_name, last_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var result []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := scanWorker(rows, &w); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		result = append(result, w)
	}

	return result, rows.Err()
}

// ListReminderTargets implements worker.Repository. work_days holds a comma
// separated list of MON..SUN labels.
func (r *workerRepository) ListReminderTargets(ctx context.Context, dayLabel string) ([]worker.Worker, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers
		WHERE is_active
		  AND phone_number IS NOT NULL
		  AND $1 = ANY(string_to_array(COALESCE(work_days, ''), ','))
		ORDER BY first_name, last_name
	`

	rows, err := q.Query(ctx, query, dayLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder targets: %w", err)
	}
	defer rows.Close()

	var result []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := scanWorker(rows, &w); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		result = append(result, w)
	}

	return result, rows.Err()
}

// Update implements worker.Repository.
func (r *workerRepository) Update(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET first_name = $2,
			last_name = $3,
			phone_number = $4,
			pay_rate_base = $5,
			pay_rate_overtime = $6,
			pay_rate_weekend = $7,
			pay_rate_night = $8,
			work_days = $9,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		w.ID,
		w.FirstName,
		w.LastName,
		w.PhoneNumber,
		w.PayRateBase,
		w.PayRateOvertime,
		w.PayRateWeekend,
		w.PayRateNight,
		w.WorkDays,
	).Scan(&w.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to update worker: %w", err)
	}

	return w, nil
}

// Deactivate implements worker.Repository.
func (r *workerRepository) Deactivate(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE workers SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrNotFound
	}

	return nil
}
