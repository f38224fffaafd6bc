package timesheetsvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/timesheet"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/worker"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/database"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/hours"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/utils"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/service/clock"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/service/notification"
)

type TimesheetServiceImpl struct {
	tx            database.TxRunner
	timesheetRepo timesheet.TimesheetRepository
	entryRepo     timesheet.EntryRepository
	workerRepo    worker.Repository
	notifier      notification.Notifier
	location      *time.Location

	now func() time.Time
}

func NewTimesheetService(
	tx database.TxRunner,
	timesheetRepo timesheet.TimesheetRepository,
	entryRepo timesheet.EntryRepository,
	workerRepo worker.Repository,
	notifier notification.Notifier,
	location *time.Location,
) timesheet.TimesheetService {
	if location == nil {
		location = time.Local
	}
	return &TimesheetServiceImpl{
		tx:            tx,
		timesheetRepo: timesheetRepo,
		entryRepo:     entryRepo,
		workerRepo:    workerRepo,
		notifier:      notifier,
		location:      location,
		now:           time.Now,
	}
}

type caller struct {
	WorkerID string
	Role     worker.Role
}

func callerFromContext(ctx context.Context) (caller, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return caller{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	workerID, ok := claims["worker_id"].(string)
	if !ok || workerID == "" {
		return caller{}, fmt.Errorf("worker_id claim is missing or invalid")
	}

	role, _ := claims["role"].(string)
	return caller{WorkerID: workerID, Role: worker.Role(role)}, nil
}

func (c caller) isAdmin() bool {
	return c.Role == worker.RoleAdmin
}

// GetTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetTimesheet(ctx context.Context, id string) (*timesheet.TimesheetResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	ts, err := s.timesheetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !c.isAdmin() && ts.WorkerID != c.WorkerID {
		return nil, timesheet.ErrAccessDenied
	}

	entries, err := s.entryRepo.ListByTimesheet(ctx, ts.ID)
	if err != nil {
		return nil, err
	}

	resp := toTimesheetResponse(ts, entries)
	return &resp, nil
}

// CurrentWeek implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CurrentWeek(ctx context.Context) (*timesheet.ListTimesheetsResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	weekStart, _ := utils.WeekBounds(s.now().In(s.location))

	sheets, err := s.timesheetRepo.ListByWorkerAndWeek(ctx, c.WorkerID, weekStart)
	if err != nil {
		return nil, err
	}

	resp := &timesheet.ListTimesheetsResponse{Timesheets: make([]timesheet.TimesheetResponse, 0, len(sheets))}
	for _, ts := range sheets {
		entries, err := s.entryRepo.ListByTimesheet(ctx, ts.ID)
		if err != nil {
			return nil, err
		}
		resp.Timesheets = append(resp.Timesheets, toTimesheetResponse(ts, entries))
	}

	return resp, nil
}

// ListTimesheets implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListTimesheets(ctx context.Context, req *timesheet.ListFilterRequest) (*timesheet.ListTimesheetsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter := timesheet.ListFilter{Limit: req.Limit}
	if req.Status != nil && *req.Status != "" {
		status := timesheet.Status(*req.Status)
		filter.Status = &status
	}

	sheets, err := s.timesheetRepo.ListByWorker(ctx, c.WorkerID, filter)
	if err != nil {
		return nil, err
	}

	resp := &timesheet.ListTimesheetsResponse{Timesheets: make([]timesheet.TimesheetResponse, 0, len(sheets))}
	for _, ts := range sheets {
		resp.Timesheets = append(resp.Timesheets, toTimesheetResponse(ts, nil))
	}

	return resp, nil
}

// SubmitTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) SubmitTimesheet(ctx context.Context, req *timesheet.SubmitTimesheetRequest) (*timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.location)

	// The state read and the guarded write share one transaction so two
	// concurrent submits cannot both pass the draft check.
	var ts timesheet.Timesheet
	var entries []timesheet.Entry
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ts, err = s.timesheetRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if ts.WorkerID != c.WorkerID {
			return timesheet.ErrAccessDenied
		}
		if ts.Status != timesheet.StatusDraft && ts.Status != timesheet.StatusRejected {
			return timesheet.ErrAlreadySubmitted
		}

		ts.Status = timesheet.StatusSubmitted
		ts.HostCompanyName = &req.HostCompanyName
		ts.SupervisorName = &req.SupervisorName
		ts.SupervisorContact = &req.SupervisorContact
		ts.SupervisorSignature = req.SupervisorSignature
		ts.SupervisorSignedAt = &now
		ts.InjuryReported = timesheet.InjuryStatus(strings.ToLower(req.InjuryReported))
		ts.SubmittedAt = &now

		if err := s.timesheetRepo.UpdateStatus(ctx, ts, timesheet.StatusDraft, timesheet.StatusRejected); err != nil {
			if errors.Is(err, timesheet.ErrStaleState) {
				return timesheet.ErrAlreadySubmitted
			}
			return err
		}

		// Draft entries ride along with the weekly submission.
		entries, err = s.entryRepo.ListByTimesheet(ctx, ts.ID)
		if err != nil {
			return err
		}
		for i, e := range entries {
			if e.Status != timesheet.StatusDraft && e.Status != timesheet.StatusRejected {
				continue
			}
			e.Status = timesheet.StatusSubmitted
			e.HostCompanyName = ts.HostCompanyName
			e.SupervisorName = ts.SupervisorName
			e.SupervisorContact = ts.SupervisorContact
			e.SupervisorSignature = ts.SupervisorSignature
			e.SubmittedAt = &now
			err := s.entryRepo.UpdateStatus(ctx, e, timesheet.StatusDraft, timesheet.StatusRejected)
			if errors.Is(err, timesheet.ErrStaleState) {
				// Submitted on its own in the meantime, keep that attestation.
				continue
			}
			if err != nil {
				return err
			}
			entries[i] = e
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifySubmitted(ctx, ts)

	resp := toTimesheetResponse(ts, entries)
	return &resp, nil
}

// SubmitEntry implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) SubmitEntry(ctx context.Context, req *timesheet.SubmitEntryRequest) (*timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.location)

	var e timesheet.Entry
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		e, err = s.entryRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if e.WorkerID != c.WorkerID {
			return timesheet.ErrAccessDenied
		}
		if e.Status != timesheet.StatusDraft && e.Status != timesheet.StatusRejected {
			return timesheet.ErrAlreadySubmitted
		}
		if e.IsOpen() {
			return timesheet.ErrNotClockedIn
		}

		e.Status = timesheet.StatusSubmitted
		e.HostCompanyName = &req.HostCompanyName
		e.SupervisorName = &req.SupervisorName
		e.SupervisorContact = &req.SupervisorContact
		e.SupervisorSignature = req.SupervisorSignature
		e.SubmittedAt = &now

		if err := s.entryRepo.UpdateStatus(ctx, e, timesheet.StatusDraft, timesheet.StatusRejected); err != nil {
			if errors.Is(err, timesheet.ErrStaleState) {
				return timesheet.ErrAlreadySubmitted
			}
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyEntrySubmitted(ctx, e)

	resp := clock.ToEntryResponse(e)
	return &resp, nil
}

// ApproveTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ApproveTimesheet(ctx context.Context, id string) (*timesheet.TimesheetResponse, error) {
	return s.decideTimesheet(ctx, id, timesheet.StatusApproved, nil)
}

// RejectTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) RejectTimesheet(ctx context.Context, req *timesheet.RejectRequest) (*timesheet.TimesheetResponse, error) {
	return s.decideTimesheet(ctx, req.ID, timesheet.StatusRejected, req.Reason)
}

func (s *TimesheetServiceImpl) decideTimesheet(ctx context.Context, id string, decision timesheet.Status, reason *string) (*timesheet.TimesheetResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !c.isAdmin() {
		return nil, timesheet.ErrAccessDenied
	}

	var ts timesheet.Timesheet
	var entries []timesheet.Entry
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ts, err = s.timesheetRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if ts.Status != timesheet.StatusSubmitted {
			return timesheet.ErrNotSubmitted
		}

		ts.Status = decision

		if err := s.timesheetRepo.UpdateStatus(ctx, ts, timesheet.StatusSubmitted); err != nil {
			if errors.Is(err, timesheet.ErrStaleState) {
				return timesheet.ErrNotSubmitted
			}
			return err
		}

		// Submitted entries follow the weekly decision.
		entries, err = s.entryRepo.ListByTimesheet(ctx, ts.ID)
		if err != nil {
			return err
		}
		for i, e := range entries {
			if e.Status != timesheet.StatusSubmitted {
				continue
			}
			e.Status = decision
			err := s.entryRepo.UpdateStatus(ctx, e, timesheet.StatusSubmitted)
			if errors.Is(err, timesheet.ErrStaleState) {
				continue
			}
			if err != nil {
				return err
			}
			entries[i] = e
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecided(ctx, ts, reason)

	resp := toTimesheetResponse(ts, entries)
	return &resp, nil
}

// ApproveEntry implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ApproveEntry(ctx context.Context, id string) (*timesheet.EntryResponse, error) {
	return s.decideEntry(ctx, id, timesheet.StatusApproved, nil)
}

// RejectEntry implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) RejectEntry(ctx context.Context, req *timesheet.RejectRequest) (*timesheet.EntryResponse, error) {
	return s.decideEntry(ctx, req.ID, timesheet.StatusRejected, req.Reason)
}

func (s *TimesheetServiceImpl) decideEntry(ctx context.Context, id string, decision timesheet.Status, reason *string) (*timesheet.EntryResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !c.isAdmin() {
		return nil, timesheet.ErrAccessDenied
	}

	var e timesheet.Entry
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		e, err = s.entryRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e.Status != timesheet.StatusSubmitted {
			return timesheet.ErrNotSubmitted
		}

		e.Status = decision
		if err := s.entryRepo.UpdateStatus(ctx, e, timesheet.StatusSubmitted); err != nil {
			if errors.Is(err, timesheet.ErrStaleState) {
				return timesheet.ErrNotSubmitted
			}
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyEntryDecided(ctx, e, reason)

	resp := clock.ToEntryResponse(e)
	return &resp, nil
}

func (s *TimesheetServiceImpl) notifySubmitted(ctx context.Context, ts timesheet.Timesheet) {
	w, err := s.workerRepo.GetByID(ctx, ts.WorkerID)
	if err != nil {
		slog.Error("Worker lookup for submission notice failed", "worker_id", ts.WorkerID, "error", err)
		return
	}

	go s.notifier.TimesheetSubmitted(
		context.WithoutCancel(ctx),
		w,
		ts.DocketNumber,
		ts.WeekStarting.Format("2006-01-02"),
		ts.TotalHours,
	)
}

func (s *TimesheetServiceImpl) notifyEntrySubmitted(ctx context.Context, e timesheet.Entry) {
	w, ts, ok := s.entryNotifyContext(ctx, e)
	if !ok {
		return
	}

	go s.notifier.EntrySubmitted(
		context.WithoutCancel(ctx),
		w,
		ts.DocketNumber,
		e.EntryDate.Format("2006-01-02"),
		e.TotalHours,
	)
}

func (s *TimesheetServiceImpl) notifyEntryDecided(ctx context.Context, e timesheet.Entry, reason *string) {
	w, ts, ok := s.entryNotifyContext(ctx, e)
	if !ok {
		return
	}

	reasonStr := ""
	if reason != nil {
		reasonStr = *reason
	}

	go s.notifier.EntryDecided(
		context.WithoutCancel(ctx),
		w,
		ts.DocketNumber,
		e.EntryDate.Format("2006-01-02"),
		string(e.Status),
		reasonStr,
	)
}

// entryNotifyContext resolves the worker and parent timesheet for an
// entry-grain notice. Lookup failures are logged, never surfaced.
func (s *TimesheetServiceImpl) entryNotifyContext(ctx context.Context, e timesheet.Entry) (worker.Worker, timesheet.Timesheet, bool) {
	w, err := s.workerRepo.GetByID(ctx, e.WorkerID)
	if err != nil {
		slog.Error("Worker lookup for entry notice failed", "worker_id", e.WorkerID, "error", err)
		return worker.Worker{}, timesheet.Timesheet{}, false
	}

	ts, err := s.timesheetRepo.GetByID(ctx, e.TimesheetID)
	if err != nil {
		slog.Error("Timesheet lookup for entry notice failed", "timesheet_id", e.TimesheetID, "error", err)
		return worker.Worker{}, timesheet.Timesheet{}, false
	}

	return w, ts, true
}

func (s *TimesheetServiceImpl) notifyDecided(ctx context.Context, ts timesheet.Timesheet, reason *string) {
	w, err := s.workerRepo.GetByID(ctx, ts.WorkerID)
	if err != nil {
		slog.Error("Worker lookup for decision notice failed", "worker_id", ts.WorkerID, "error", err)
		return
	}

	reasonStr := ""
	if reason != nil {
		reasonStr = *reason
	}

	go s.notifier.TimesheetDecided(context.WithoutCancel(ctx), w, ts.DocketNumber, string(ts.Status), reasonStr)
}

func toTimesheetResponse(ts timesheet.Timesheet, entries []timesheet.Entry) timesheet.TimesheetResponse {
	resp := timesheet.TimesheetResponse{
		ID:                 ts.ID,
		DocketNumber:       ts.DocketNumber,
		OrderNumber:        ts.OrderNumber,
		WorkerName:         ts.WorkerName,
		ClientName:         ts.ClientName,
		WeekStarting:       ts.WeekStarting.Format("2006-01-02"),
		WeekEnding:         ts.WeekEnding.Format("2006-01-02"),
		Status:             string(ts.Status),
		TotalOrdinaryHours: hours.Round2(ts.TotalOrdinaryHours),
		TotalOvertimeHours: hours.Round2(ts.TotalOvertimeHours),
		TotalHours:         hours.Round2(ts.TotalHours),
		InjuryReported:     string(ts.InjuryReported),
	}

	if ts.SupervisorSignedAt != nil {
		signed := ts.SupervisorSignedAt.Format("2006-01-02 15:04:05")
		resp.SupervisorSignedAt = &signed
	}
	if ts.SubmittedAt != nil {
		submitted := ts.SubmittedAt.Format("2006-01-02 15:04:05")
		resp.SubmittedAt = &submitted
	}

	for _, e := range entries {
		resp.Entries = append(resp.Entries, clock.ToEntryResponse(e))
	}

	return resp
}
