package worker

import "time"

// Role controls route access.
type Role string

const (
	RoleWorker     Role = "worker"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

// Worker is a labour-hire employee. Pay rates feed the export view, never the
// timesheet itself. WorkDays holds a comma separated list of day labels
// (MON..SUN) used to decide who receives clock reminders.
type Worker struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  *string
	PasswordHash string
	Role         Role

	PayRateBase     *float64
	PayRateOvertime *float64
	PayRateWeekend  *float64
	PayRateNight    *float64

	WorkDays *string

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins first and last name for display.
func (w Worker) FullName() string {
	return w.FirstName + " " + w.LastName
}
