package postgresql

import (
	"context"
	"fmt"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/notification"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// Get implements notification.Repository. The no-op upsert makes the defaults
// row on first read.
func (r *notificationRepository) Get(ctx context.Context) (notification.Settings, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notification_settings (id)
		VALUES (1)
		ON CONFLICT (id) DO UPDATE SET id = notification_settings.id
		RETURNING id, sms_enabled,
				  clock_in_reminder_enabled, clock_in_reminder_time,
				  clock_out_reminder_enabled, clock_out_reminder_time,
				  updated_at
	`

	var s notification.Settings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.SMSEnabled,
		&s.ClockInReminderEnabled, &s.ClockInReminderTime,
		&s.ClockOutReminderEnabled, &s.ClockOutReminderTime,
		&s.UpdatedAt,
	)
	if err != nil {
		return notification.Settings{}, fmt.Errorf("failed to get notification settings: %w", err)
	}

	return s, nil
}

// Update implements notification.Repository.
func (r *notificationRepository) Update(ctx context.Context, s notification.Settings) (notification.Settings, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE notification_settings
		SET sms_enabled = $1,
			clock_in_reminder_enabled = $2,
			clock_in_reminder_time = $3,
			clock_out_reminder_enabled = $4,
			clock_out_reminder_time = $5,
			updated_at = now()
		WHERE id = 1
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.SMSEnabled,
		s.ClockInReminderEnabled,
		s.ClockInReminderTime,
		s.ClockOutReminderEnabled,
		s.ClockOutReminderTime,
	).Scan(&s.ID, &s.UpdatedAt)
	if err != nil {
		return notification.Settings{}, fmt.Errorf("failed to update notification settings: %w", err)
	}

	return s, nil
}
