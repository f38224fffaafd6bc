package worker

import "context"

type Repository interface {
	Create(ctx context.Context, w Worker) (Worker, error)

	GetByID(ctx context.Context, id string) (Worker, error)

	GetByEmail(ctx context.Context, email string) (Worker, error)

	// List returns active workers ordered by name.
	List(ctx context.Context) ([]Worker, error)

	// ListReminderTargets returns active workers with a phone number whose
	// WorkDays include the given day label.
	ListReminderTargets(ctx context.Context, dayLabel string) ([]Worker, error)

	Update(ctx context.Context, w Worker) (Worker, error)

	// Deactivate soft-deletes; timesheet history is preserved.
	Deactivate(ctx context.Context, id string) error
}
