package clock

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/jobsite"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/timesheet"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/database"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/geocode"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/hours"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/utils"
)

type ClockServiceImpl struct {
	tx            database.TxRunner
	timesheetRepo timesheet.TimesheetRepository
	entryRepo     timesheet.EntryRepository
	docketRepo    timesheet.DocketRepository
	jobSiteRepo   jobsite.Repository
	geocoder      geocode.Geocoder
	location      *time.Location

	// now is swappable for tests.
	now func() time.Time
}

func NewClockService(
	tx database.TxRunner,
	timesheetRepo timesheet.TimesheetRepository,
	entryRepo timesheet.EntryRepository,
	docketRepo timesheet.DocketRepository,
	jobSiteRepo jobsite.Repository,
	geocoder geocode.Geocoder,
	location *time.Location,
) timesheet.ClockService {
	if location == nil {
		location = time.Local
	}
	return &ClockServiceImpl{
		tx:            tx,
		timesheetRepo: timesheetRepo,
		entryRepo:     entryRepo,
		docketRepo:    docketRepo,
		jobSiteRepo:   jobSiteRepo,
		geocoder:      geocoder,
		location:      location,
		now:           time.Now,
	}
}

func callerID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	workerID, ok := claims["worker_id"].(string)
	if !ok || workerID == "" {
		return "", fmt.Errorf("worker_id claim is missing or invalid")
	}

	return workerID, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// ClockIn implements timesheet.ClockService.
func (s *ClockServiceImpl) ClockIn(ctx context.Context, req *timesheet.ClockInRequest) (*timesheet.ClockInResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	workerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if req.JobSiteID == nil {
		return nil, timesheet.ErrInvalidJobSite
	}

	site, err := s.jobSiteRepo.GetByID(ctx, *req.JobSiteID)
	if err != nil {
		return nil, timesheet.ErrInvalidJobSite
	}
	if site.ClientID == nil {
		return nil, timesheet.ErrInvalidJobSite
	}

	geofenceExceeded := false
	if site.HasCoordinates() {
		distance := utils.CalculateHaversineDistance(req.Latitude, req.Longitude, *site.Latitude, *site.Longitude)
		if distance > float64(site.GeofenceRadius) {
			// Flagged for review, never a hard block.
			geofenceExceeded = true
		}
	}

	now := s.now().In(s.location)
	today := utils.DateOnly(now)
	weekStart, weekEnd := utils.WeekBounds(now)

	// Best effort, outside the transaction. Falls back to "lat, lon".
	address := s.geocoder.ReverseGeocode(ctx, req.Latitude, req.Longitude)

	var entry timesheet.Entry
	var docketNumber string

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ts, err := s.timesheetRepo.GetByWorkerWeekClient(ctx, workerID, weekStart, *site.ClientID)
		if err != nil {
			return err
		}

		if ts == nil {
			created, err := s.createTimesheet(ctx, workerID, *site.ClientID, weekStart, weekEnd)
			if err != nil {
				return err
			}
			ts = &created
		}
		docketNumber = ts.DocketNumber

		entry = timesheet.Entry{
			TimesheetID:      ts.ID,
			WorkerID:         workerID,
			DayOfWeek:        utils.DayLabel(now),
			EntryDate:        today,
			JobSiteID:        req.JobSiteID,
			ClockInTime:      &now,
			ClockInLatitude:  &req.Latitude,
			ClockInLongitude: &req.Longitude,
			ClockInAddress:   &address,
			WorkedAs:         req.WorkedAs,
			Status:           timesheet.StatusDraft,
		}

		entry, err = s.entryRepo.Create(ctx, entry)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &timesheet.ClockInResponse{
		EntryID:          entry.ID,
		ClockInTime:      now.Format("2006-01-02 15:04:05"),
		ClockInAddress:   address,
		DocketNumber:     docketNumber,
		JobSiteName:      &site.Name,
		GeofenceExceeded: geofenceExceeded,
	}, nil
}

// createTimesheet allocates a docket number and inserts the weekly aggregate.
// A docket collision gets one retry with a fresh number. When a concurrent
// clock-in wins the (worker, week, client) insert the existing row is reused,
// so the loser fails later on the open-session check rather than here.
func (s *ClockServiceImpl) createTimesheet(ctx context.Context, workerID, clientID string, weekStart, weekEnd time.Time) (timesheet.Timesheet, error) {
	for attempt := 0; attempt < 2; attempt++ {
		number, err := s.docketRepo.Next(ctx)
		if err != nil {
			return timesheet.Timesheet{}, err
		}

		ts, err := s.timesheetRepo.Create(ctx, timesheet.Timesheet{
			DocketNumber:   strconv.FormatInt(number, 10),
			WorkerID:       workerID,
			ClientID:       clientID,
			WeekStarting:   weekStart,
			WeekEnding:     weekEnd,
			Status:         timesheet.StatusDraft,
			InjuryReported: timesheet.InjuryNA,
		})
		if err == nil {
			return ts, nil
		}
		if errors.Is(err, timesheet.ErrTimesheetExists) {
			existing, getErr := s.timesheetRepo.GetByWorkerWeekClient(ctx, workerID, weekStart, clientID)
			if getErr != nil {
				return timesheet.Timesheet{}, getErr
			}
			if existing == nil {
				return timesheet.Timesheet{}, err
			}
			return *existing, nil
		}
		if !errors.Is(err, timesheet.ErrDocketConflict) {
			return timesheet.Timesheet{}, err
		}
	}

	return timesheet.Timesheet{}, timesheet.ErrDocketConflict
}

// ClockOut implements timesheet.ClockService.
func (s *ClockServiceImpl) ClockOut(ctx context.Context, req *timesheet.ClockOutRequest) (*timesheet.ClockOutResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	workerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.location)
	today := utils.DateOnly(now)

	// Best effort, outside the transaction. Falls back to "lat, lon".
	address := s.geocoder.ReverseGeocode(ctx, req.Latitude, req.Longitude)

	// The open-session read and the close run in one transaction; the guarded
	// UPDATE is the backstop when two clock-outs race past the read.
	var open *timesheet.Entry
	var weeklyTotal float64
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		open, err = s.entryRepo.GetOpenSession(ctx, workerID, today)
		if err != nil {
			return err
		}
		if open == nil {
			return timesheet.ErrNotClockedIn
		}

		if now.Before(*open.ClockInTime) {
			return timesheet.ErrInvalidTimeRange
		}

		ordinary, overtime, total := hours.Split(*open.ClockInTime, now, hours.DefaultOrdinaryThreshold)

		open.ClockOutTime = &now
		open.ClockOutLatitude = &req.Latitude
		open.ClockOutLongitude = &req.Longitude
		open.ClockOutAddress = &address
		open.OrdinaryHours = ordinary
		open.OvertimeHours = overtime
		open.TotalHours = total
		open.Comments = req.Comments
		open.FirstAidInjury = req.FirstAidInjury

		if err := s.entryRepo.UpdateClockOut(ctx, *open); err != nil {
			return err
		}

		weeklyTotal, err = s.recomputeTotals(ctx, open.TimesheetID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &timesheet.ClockOutResponse{
		EntryID:         open.ID,
		ClockInTime:     open.ClockInTime.Format("2006-01-02 15:04:05"),
		ClockOutTime:    now.Format("2006-01-02 15:04:05"),
		ClockOutAddress: address,
		OrdinaryHours:   open.OrdinaryHours,
		OvertimeHours:   open.OvertimeHours,
		TotalHours:      open.TotalHours,
		WeeklyTotal:     weeklyTotal,
	}, nil
}

// recomputeTotals re-derives the weekly totals from the entries. Returns the
// new total hours.
func (s *ClockServiceImpl) recomputeTotals(ctx context.Context, timesheetID string) (float64, error) {
	entries, err := s.entryRepo.ListByTimesheet(ctx, timesheetID)
	if err != nil {
		return 0, err
	}

	var ordinary, overtime, total float64
	for _, e := range entries {
		ordinary += e.OrdinaryHours
		overtime += e.OvertimeHours
		total += e.TotalHours
	}
	ordinary = hours.Round2(ordinary)
	overtime = hours.Round2(overtime)
	total = hours.Round2(total)

	if err := s.timesheetRepo.UpdateTotals(ctx, timesheetID, ordinary, overtime, total); err != nil {
		return 0, err
	}

	return total, nil
}

// Status implements timesheet.ClockService.
func (s *ClockServiceImpl) Status(ctx context.Context) (*timesheet.ClockStatusResponse, error) {
	workerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.location)
	today := utils.DateOnly(now)

	open, err := s.entryRepo.GetOpenSession(ctx, workerID, today)
	if err != nil {
		return nil, err
	}

	completed, err := s.entryRepo.SumCompletedHours(ctx, workerID, today)
	if err != nil {
		return nil, err
	}

	resp := &timesheet.ClockStatusResponse{
		IsClockedIn:      open != nil,
		HoursWorkedToday: completed,
	}
	if open != nil {
		resp.ClockInTime = timePtrToString(open.ClockInTime)
		resp.ClockInAddress = open.ClockInAddress
		resp.CurrentEntryID = &open.ID
	}

	return resp, nil
}

// History implements timesheet.ClockService.
func (s *ClockServiceImpl) History(ctx context.Context, days int) (*timesheet.HistoryResponse, error) {
	workerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if days <= 0 {
		days = 30
	}

	now := s.now().In(s.location)
	since := utils.DateOnly(now).AddDate(0, 0, -days)

	entries, err := s.entryRepo.ListByWorkerSince(ctx, workerID, since)
	if err != nil {
		return nil, err
	}

	resp := &timesheet.HistoryResponse{
		Entries:      make([]timesheet.EntryResponse, 0, len(entries)),
		TotalEntries: len(entries),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, ToEntryResponse(e))
	}

	return resp, nil
}

// ToEntryResponse maps an entry to its transport shape.
func ToEntryResponse(e timesheet.Entry) timesheet.EntryResponse {
	return timesheet.EntryResponse{
		ID:              e.ID,
		DayOfWeek:       e.DayOfWeek,
		EntryDate:       e.EntryDate.Format("2006-01-02"),
		JobSiteName:     e.JobSiteName,
		ClockInTime:     timePtrToString(e.ClockInTime),
		ClockOutTime:    timePtrToString(e.ClockOutTime),
		ClockInAddress:  e.ClockInAddress,
		ClockOutAddress: e.ClockOutAddress,
		OrdinaryHours:   e.OrdinaryHours,
		OvertimeHours:   e.OvertimeHours,
		TotalHours:      e.TotalHours,
		WorkedAs:        e.WorkedAs,
		Comments:        e.Comments,
		FirstAidInjury:  e.FirstAidInjury,
		Status:          string(e.Status),
	}
}
