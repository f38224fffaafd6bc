package timesheet

import "context"

// ClockService runs the clock-in/clock-out state machine. The caller identity
// comes from the JWT claims in ctx, never from request bodies.
type ClockService interface {
	// ClockIn opens a session for today, creating the weekly timesheet and
	// allocating a docket number when the (worker, week, client) aggregate
	// does not exist yet. Returns ErrAlreadyClockedIn when an open session
	// exists for the worker on today's date.
	ClockIn(ctx context.Context, req *ClockInRequest) (*ClockInResponse, error)

	// ClockOut closes the open session, splits the elapsed time into
	// ordinary and overtime hours and recomputes the weekly totals.
	// Returns ErrNotClockedIn when no session is open.
	ClockOut(ctx context.Context, req *ClockOutRequest) (*ClockOutResponse, error)

	// Status reports whether the caller is clocked in and the hours already
	// completed today.
	Status(ctx context.Context) (*ClockStatusResponse, error)

	// History lists the caller's entries over the trailing period.
	History(ctx context.Context, days int) (*HistoryResponse, error)
}

// TimesheetService covers the weekly aggregate and the approval workflow.
type TimesheetService interface {
	GetTimesheet(ctx context.Context, id string) (*TimesheetResponse, error)

	// CurrentWeek returns the caller's timesheets for the week containing
	// today, entries included.
	CurrentWeek(ctx context.Context) (*ListTimesheetsResponse, error)

	ListTimesheets(ctx context.Context, req *ListFilterRequest) (*ListTimesheetsResponse, error)

	// SubmitTimesheet moves draft -> submitted with the supervisor
	// attestation and the weekly injury declaration. Any draft entries in
	// the timesheet are submitted with it.
	SubmitTimesheet(ctx context.Context, req *SubmitTimesheetRequest) (*TimesheetResponse, error)

	// SubmitEntry submits a single day with its own attestation.
	SubmitEntry(ctx context.Context, req *SubmitEntryRequest) (*EntryResponse, error)

	// ApproveTimesheet moves submitted -> approved. Admin only.
	ApproveTimesheet(ctx context.Context, id string) (*TimesheetResponse, error)

	// RejectTimesheet moves submitted -> rejected and reopens the sheet for
	// correction. Admin only.
	RejectTimesheet(ctx context.Context, req *RejectRequest) (*TimesheetResponse, error)

	ApproveEntry(ctx context.Context, id string) (*EntryResponse, error)

	RejectEntry(ctx context.Context, req *RejectRequest) (*EntryResponse, error)
}
