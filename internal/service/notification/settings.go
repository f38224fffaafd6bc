package notification

import (
	"context"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/notification"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/cron"
)

type SettingsService interface {
	Get(ctx context.Context) (*notification.Response, error)

	// Update persists changes and reschedules reminder jobs whose times
	// moved.
	Update(ctx context.Context, req *notification.UpdateRequest) (*notification.Response, error)
}

type SettingsServiceImpl struct {
	repo      notification.Repository
	scheduler *cron.Scheduler
}

func NewSettingsService(repo notification.Repository, scheduler *cron.Scheduler) SettingsService {
	return &SettingsServiceImpl{
		repo:      repo,
		scheduler: scheduler,
	}
}

// Get implements SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (*notification.Response, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	resp := notification.ToResponse(settings)
	return &resp, nil
}

// Update implements SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req *notification.UpdateRequest) (*notification.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	rescheduleClockIn := false
	rescheduleClockOut := false

	if req.SMSEnabled != nil {
		settings.SMSEnabled = *req.SMSEnabled
	}
	if req.ClockInReminderEnabled != nil {
		settings.ClockInReminderEnabled = *req.ClockInReminderEnabled
	}
	if req.ClockInReminderTime != nil && *req.ClockInReminderTime != settings.ClockInReminderTime {
		settings.ClockInReminderTime = *req.ClockInReminderTime
		rescheduleClockIn = true
	}
	if req.ClockOutReminderEnabled != nil {
		settings.ClockOutReminderEnabled = *req.ClockOutReminderEnabled
	}
	if req.ClockOutReminderTime != nil && *req.ClockOutReminderTime != settings.ClockOutReminderTime {
		settings.ClockOutReminderTime = *req.ClockOutReminderTime
		rescheduleClockOut = true
	}

	settings, err = s.repo.Update(ctx, settings)
	if err != nil {
		return nil, err
	}

	if s.scheduler != nil {
		if rescheduleClockIn {
			if err := s.scheduler.Reschedule(cron.JobClockInReminder, settings.ClockInReminderTime); err != nil {
				return nil, err
			}
		}
		if rescheduleClockOut {
			if err := s.scheduler.Reschedule(cron.JobClockOutReminder, settings.ClockOutReminderTime); err != nil {
				return nil, err
			}
		}
	}

	resp := notification.ToResponse(settings)
	return &resp, nil
}
