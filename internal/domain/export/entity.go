package export

import "time"

// Grain selects the rollup level of the export view.
type Grain string

const (
	GrainEntry     Grain = "entry"
	GrainTimesheet Grain = "timesheet"
)

// Row is one line of the payroll/invoicing export. Only approved work is ever
// exported; hours come from the timesheet side, rates are joined in from the
// worker and client records as they stand at export time.
type Row struct {
	TimesheetID  string
	EntryID      *string
	DocketNumber string
	OrderNumber  *string

	WorkerID   string
	WorkerName string
	ClientID   string
	ClientName string

	WeekStarting time.Time
	WeekEnding   time.Time
	EntryDate    *time.Time
	DayOfWeek    *string
	JobSiteName  *string

	OrdinaryHours float64
	OvertimeHours float64
	TotalHours    float64

	PayRateBase     *float64
	PayRateOvertime *float64
	PayRateWeekend  *float64
	PayRateNight    *float64

	BillingRateHourly   *float64
	BillingRateOvertime *float64
	BillingRateWeekend  *float64
	BillingRateNight    *float64

	MYOBCustomerID *string
	ApprovedAt     *time.Time
}

// Filter narrows the export query.
type Filter struct {
	Grain    Grain
	ClientID *string
	WorkerID *string
	WeekFrom *time.Time
	WeekTo   *time.Time
}
