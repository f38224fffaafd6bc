package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/notification"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/timesheet"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/worker"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/sms"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/utils"
)

// Job names used with Scheduler.AddJob and Reschedule.
const (
	JobClockInReminder  = "clock_in_reminder"
	JobClockOutReminder = "clock_out_reminder"
)

// Reminders sends clock-in/out nudges to workers rostered for the current day.
type Reminders struct {
	workerRepo       worker.Repository
	entryRepo        timesheet.EntryRepository
	notificationRepo notification.Repository
	smsSender        sms.Sender
	location         *time.Location
}

func NewReminders(
	workerRepo worker.Repository,
	entryRepo timesheet.EntryRepository,
	notificationRepo notification.Repository,
	smsSender sms.Sender,
	location *time.Location,
) *Reminders {
	if location == nil {
		location = time.Local
	}
	return &Reminders{
		workerRepo:       workerRepo,
		entryRepo:        entryRepo,
		notificationRepo: notificationRepo,
		smsSender:        smsSender,
		location:         location,
	}
}

// RunClockInReminder texts rostered workers who have not clocked in today.
func (r *Reminders) RunClockInReminder(ctx context.Context) error {
	settings, err := r.notificationRepo.Get(ctx)
	if err != nil {
		return err
	}
	if !settings.SMSEnabled || !settings.ClockInReminderEnabled {
		return nil
	}

	now := time.Now().In(r.location)
	targets, err := r.workerRepo.ListReminderTargets(ctx, utils.DayLabel(now))
	if err != nil {
		return err
	}

	today := utils.DateOnly(now)
	sent := 0
	for _, w := range targets {
		open, err := r.entryRepo.GetOpenSession(ctx, w.ID, today)
		if err != nil {
			slog.Error("Clock-in reminder lookup failed", "worker_id", w.ID, "error", err)
			continue
		}
		if open != nil {
			continue // already clocked in
		}

		if err := r.smsSender.Send(ctx, *w.PhoneNumber, sms.ClockInReminderBody(w.FirstName)); err != nil {
			slog.Error("Clock-in reminder send failed", "worker_id", w.ID, "error", err)
			continue
		}
		sent++
	}

	slog.Info("Clock-in reminders sent", "count", sent, "targets", len(targets))
	return nil
}

// RunClockOutReminder texts workers with an open session at end of day.
func (r *Reminders) RunClockOutReminder(ctx context.Context) error {
	settings, err := r.notificationRepo.Get(ctx)
	if err != nil {
		return err
	}
	if !settings.SMSEnabled || !settings.ClockOutReminderEnabled {
		return nil
	}

	now := time.Now().In(r.location)
	targets, err := r.workerRepo.ListReminderTargets(ctx, utils.DayLabel(now))
	if err != nil {
		return err
	}

	today := utils.DateOnly(now)
	sent := 0
	for _, w := range targets {
		open, err := r.entryRepo.GetOpenSession(ctx, w.ID, today)
		if err != nil {
			slog.Error("Clock-out reminder lookup failed", "worker_id", w.ID, "error", err)
			continue
		}
		if open == nil {
			continue // nothing to close
		}

		if err := r.smsSender.Send(ctx, *w.PhoneNumber, sms.ClockOutReminderBody(w.FirstName)); err != nil {
			slog.Error("Clock-out reminder send failed", "worker_id", w.ID, "error", err)
			continue
		}
		sent++
	}

	slog.Info("Clock-out reminders sent", "count", sent, "targets", len(targets))
	return nil
}

// Register wires both reminder jobs into the scheduler at the times stored in
// the notification settings.
func (r *Reminders) Register(ctx context.Context, scheduler *Scheduler) error {
	settings, err := r.notificationRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err := scheduler.AddJob(JobClockInReminder, settings.ClockInReminderTime, WeekdaysMonFri(), r.RunClockInReminder); err != nil {
		return err
	}
	if err := scheduler.AddJob(JobClockOutReminder, settings.ClockOutReminderTime, WeekdaysMonFri(), r.RunClockOutReminder); err != nil {
		return err
	}

	return nil
}
