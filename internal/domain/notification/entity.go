package notification

import "time"

// ReminderKind names a scheduled reminder job.
type ReminderKind string

const (
	ReminderClockIn  ReminderKind = "clock_in"
	ReminderClockOut ReminderKind = "clock_out"
)

// Settings is the single-row notification configuration. Reminder times are
// "HH:MM" in the application timezone; changing one reschedules the job
// without a restart.
type Settings struct {
	ID int

	SMSEnabled bool

	ClockInReminderEnabled bool
	ClockInReminderTime    string

	ClockOutReminderEnabled bool
	ClockOutReminderTime    string

	UpdatedAt time.Time
}
