package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository persists weekly timesheets.
type TimesheetRepository interface {
	// Create inserts the weekly aggregate. Returns ErrTimesheetExists when the
	// (worker, week_starting, client) key is already taken and ErrDocketConflict
	// when the docket number is.
	Create(ctx context.Context, ts Timesheet) (Timesheet, error)

	GetByID(ctx context.Context, id string) (Timesheet, error)

	// GetByWorkerWeekClient looks up the unique timesheet for the
	// (worker, week_starting, client) key. Returns (nil, nil) when absent.
	GetByWorkerWeekClient(ctx context.Context, workerID string, weekStarting time.Time, clientID string) (*Timesheet, error)

	ListByWorker(ctx context.Context, workerID string, filter ListFilter) ([]Timesheet, error)

	ListByWorkerAndWeek(ctx context.Context, workerID string, weekStarting time.Time) ([]Timesheet, error)

	// UpdateStatus writes status, attestation fields and submitted_at. When
	// from statuses are given the write only lands while the stored status is
	// one of them; a concurrent transition surfaces as ErrStaleState.
	UpdateStatus(ctx context.Context, ts Timesheet, from ...Status) error

	// UpdateTotals writes the derived hour totals.
	UpdateTotals(ctx context.Context, id string, ordinary, overtime, total float64) error
}

// EntryRepository persists daily entries.
type EntryRepository interface {
	Create(ctx context.Context, e Entry) (Entry, error)

	GetByID(ctx context.Context, id string) (Entry, error)

	// GetOpenSession finds the worker's entry for the given date with
	// clock_in set and clock_out unset. Returns (nil, nil) when absent.
	GetOpenSession(ctx context.Context, workerID string, date time.Time) (*Entry, error)

	ListByTimesheet(ctx context.Context, timesheetID string) ([]Entry, error)

	ListByWorkerSince(ctx context.Context, workerID string, since time.Time) ([]Entry, error)

	// SumCompletedHours totals completed entries for a worker on one date.
	SumCompletedHours(ctx context.Context, workerID string, date time.Time) (float64, error)

	// UpdateClockOut writes the clock-out capture and the frozen hours. The
	// write only lands while the entry is still open; a session closed by a
	// concurrent clock-out surfaces as ErrNotClockedIn.
	UpdateClockOut(ctx context.Context, e Entry) error

	// UpdateStatus writes status, attestation fields and submitted_at. When
	// from statuses are given the write only lands while the stored status is
	// one of them; a concurrent transition surfaces as ErrStaleState.
	UpdateStatus(ctx context.Context, e Entry, from ...Status) error
}

// DocketRepository issues strictly increasing, globally unique docket numbers.
type DocketRepository interface {
	Next(ctx context.Context) (int64, error)
}

// ListFilter narrows timesheet listings.
type ListFilter struct {
	Status *Status
	Limit  int
}
