package timesheet

import "errors"

// Clock session errors
var (
	ErrAlreadyClockedIn = errors.New("already clocked in, please clock out first")
	ErrNotClockedIn     = errors.New("not currently clocked in, please clock in first")
	ErrInvalidJobSite   = errors.New("job site cannot be resolved to a client")
	ErrInvalidTimeRange = errors.New("clock-out time precedes clock-in time")
)

// Approval state machine errors
var (
	ErrAlreadySubmitted = errors.New("already submitted")
	ErrNotSubmitted     = errors.New("not in submitted state")
)

// General errors
var (
	ErrTimesheetNotFound = errors.New("timesheet not found")
	ErrEntryNotFound     = errors.New("timesheet entry not found")
	ErrDocketConflict    = errors.New("docket number already taken")
	ErrTimesheetExists   = errors.New("timesheet already exists for this worker, week and client")
	ErrStaleState        = errors.New("record changed while the request was in flight")
	ErrAccessDenied      = errors.New("not allowed to access this timesheet")
)
