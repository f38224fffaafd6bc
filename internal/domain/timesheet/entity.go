package timesheet

import (
	"time"
)

// Status is the approval lifecycle shared by timesheets and entries.
// Transitions are forward-only: draft -> submitted -> approved|rejected.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// InjuryStatus is the weekly injury declaration captured at timesheet submission.
type InjuryStatus string

const (
	InjuryYes InjuryStatus = "yes"
	InjuryNo  InjuryStatus = "no"
	InjuryNA  InjuryStatus = "n/a"
)

// Timesheet is the weekly aggregate, one per (worker, week_starting, client).
// It mirrors the paper docket: a docket number, Mon-Sun week bounds, derived
// hour totals and the supervisor sign-off block.
type Timesheet struct {
	ID           string
	DocketNumber string
	OrderNumber  *string
	WorkerID     string
	ClientID     string
	WeekStarting time.Time
	WeekEnding   time.Time
	Status       Status

	HostCompanyName     *string
	SupervisorName      *string
	SupervisorContact   *string
	SupervisorSignature *string
	SupervisorSignedAt  *time.Time
	InjuryReported      InjuryStatus

	// Derived from entries, never edited directly.
	TotalOrdinaryHours float64
	TotalOvertimeHours float64
	TotalHours         float64

	SubmittedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined columns
	WorkerName *string
	ClientName *string
}

// Entry is one calendar day's work record inside a Timesheet. WorkerID is
// denormalized from the parent so the one-open-session-per-worker-per-date
// constraint can live on this table.
type Entry struct {
	ID          string
	TimesheetID string
	WorkerID    string
	DayOfWeek   string
	EntryDate   time.Time
	JobSiteID   *string

	ClockInTime      *time.Time
	ClockInLatitude  *float64
	ClockInLongitude *float64
	ClockInAddress   *string

	ClockOutTime      *time.Time
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	ClockOutAddress   *string

	// Frozen by the hours splitter at clock-out.
	OrdinaryHours float64
	OvertimeHours float64
	TotalHours    float64

	WorkedAs       *string
	FirstAidInjury bool
	Comments       *string

	Status              Status
	HostCompanyName     *string
	SupervisorName      *string
	SupervisorContact   *string
	SupervisorSignature *string
	SubmittedAt         *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined columns
	JobSiteName *string
}

// Attestation is the supervisor sign-off captured when a timesheet or a single
// entry is submitted for approval.
type Attestation struct {
	HostCompanyName     string
	SupervisorName      string
	SupervisorContact   string
	SupervisorSignature *string
}

// IsOpen reports whether the entry is an open clock session.
func (e Entry) IsOpen() bool {
	return e.ClockInTime != nil && e.ClockOutTime == nil
}
