package clock

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/jobsite"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/timesheet"
)

// ---- fakes ----

type fakeTx struct{}

func (fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimesheetRepo struct {
	mu     sync.Mutex
	sheets map[string]timesheet.Timesheet
	nextID int

	createErrs []error // consumed per Create call, nil means success
	onCreate   func()  // runs once inside the next Create, before the key checks
}

func newFakeTimesheetRepo() *fakeTimesheetRepo {
	return &fakeTimesheetRepo{sheets: make(map[string]timesheet.Timesheet)}
}

func (f *fakeTimesheetRepo) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return timesheet.Timesheet{}, err
		}
	}

	if f.onCreate != nil {
		hook := f.onCreate
		f.onCreate = nil
		hook()
	}

	// Mirrors uq_timesheets_worker_week_client and uq_timesheets_docket_number.
	for _, existing := range f.sheets {
		if existing.WorkerID == ts.WorkerID && existing.ClientID == ts.ClientID && existing.WeekStarting.Equal(ts.WeekStarting) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetExists
		}
		if existing.DocketNumber == ts.DocketNumber {
			return timesheet.Timesheet{}, timesheet.ErrDocketConflict
		}
	}

	f.nextID++
	ts.ID = fmt.Sprintf("ts-%d", f.nextID)
	f.sheets[ts.ID] = ts
	return ts, nil
}

func (f *fakeTimesheetRepo) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ts, ok := f.sheets[id]
	if !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	return ts, nil
}

func (f *fakeTimesheetRepo) GetByWorkerWeekClient(ctx context.Context, workerID string, weekStarting time.Time, clientID string) (*timesheet.Timesheet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ts := range f.sheets {
		if ts.WorkerID == workerID && ts.ClientID == clientID && ts.WeekStarting.Equal(weekStarting) {
			found := ts
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeTimesheetRepo) ListByWorker(ctx context.Context, workerID string, filter timesheet.ListFilter) ([]timesheet.Timesheet, error) {
	return nil, nil
}

func (f *fakeTimesheetRepo) ListByWorkerAndWeek(ctx context.Context, workerID string, weekStarting time.Time) ([]timesheet.Timesheet, error) {
	return nil, nil
}

func (f *fakeTimesheetRepo) UpdateStatus(ctx context.Context, ts timesheet.Timesheet, from ...timesheet.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.sheets[ts.ID]
	if !ok {
		return timesheet.ErrTimesheetNotFound
	}
	if len(from) > 0 && !statusIn(existing.Status, from) {
		return timesheet.ErrStaleState
	}
	f.sheets[ts.ID] = ts
	return nil
}

func (f *fakeTimesheetRepo) UpdateTotals(ctx context.Context, id string, ordinary, overtime, total float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ts, ok := f.sheets[id]
	if !ok {
		return timesheet.ErrTimesheetNotFound
	}
	ts.TotalOrdinaryHours = ordinary
	ts.TotalOvertimeHours = overtime
	ts.TotalHours = total
	f.sheets[id] = ts
	return nil
}

type fakeEntryRepo struct {
	mu      sync.Mutex
	entries map[string]timesheet.Entry
	nextID  int
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[string]timesheet.Entry)}
}

func (f *fakeEntryRepo) Create(ctx context.Context, e timesheet.Entry) (timesheet.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Mirrors the partial unique index on open sessions.
	for _, existing := range f.entries {
		if existing.WorkerID == e.WorkerID && existing.EntryDate.Equal(e.EntryDate) && existing.IsOpen() {
			return timesheet.Entry{}, timesheet.ErrAlreadyClockedIn
		}
	}

	f.nextID++
	e.ID = fmt.Sprintf("entry-%d", f.nextID)
	f.entries[e.ID] = e
	return e, nil
}

func (f *fakeEntryRepo) GetByID(ctx context.Context, id string) (timesheet.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok {
		return timesheet.Entry{}, timesheet.ErrEntryNotFound
	}
	return e, nil
}

func (f *fakeEntryRepo) GetOpenSession(ctx context.Context, workerID string, date time.Time) (*timesheet.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.WorkerID == workerID && e.EntryDate.Equal(date) && e.IsOpen() {
			found := e
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeEntryRepo) ListByTimesheet(ctx context.Context, timesheetID string) ([]timesheet.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []timesheet.Entry
	for _, e := range f.entries {
		if e.TimesheetID == timesheetID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) ListByWorkerSince(ctx context.Context, workerID string, since time.Time) ([]timesheet.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []timesheet.Entry
	for _, e := range f.entries {
		if e.WorkerID == workerID && !e.EntryDate.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) SumCompletedHours(ctx context.Context, workerID string, date time.Time) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum float64
	for _, e := range f.entries {
		if e.WorkerID == workerID && e.EntryDate.Equal(date) && e.ClockOutTime != nil {
			sum += e.TotalHours
		}
	}
	return sum, nil
}

func (f *fakeEntryRepo) UpdateClockOut(ctx context.Context, e timesheet.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Mirrors the open-session predicate on the UPDATE.
	existing, ok := f.entries[e.ID]
	if !ok || !existing.IsOpen() {
		return timesheet.ErrNotClockedIn
	}
	f.entries[e.ID] = e
	return nil
}

func (f *fakeEntryRepo) UpdateStatus(ctx context.Context, e timesheet.Entry, from ...timesheet.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.entries[e.ID]
	if !ok {
		return timesheet.ErrEntryNotFound
	}
	if len(from) > 0 && !statusIn(existing.Status, from) {
		return timesheet.ErrStaleState
	}
	f.entries[e.ID] = e
	return nil
}

type fakeDocketRepo struct {
	mu   sync.Mutex
	last int64
}

func (f *fakeDocketRepo) Next(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.last == 0 {
		f.last = 12537
	}
	f.last++
	return f.last, nil
}

type fakeJobSiteRepo struct {
	sites map[string]jobsite.JobSite
}

func (f *fakeJobSiteRepo) Create(ctx context.Context, s jobsite.JobSite) (jobsite.JobSite, error) {
	return s, nil
}

func (f *fakeJobSiteRepo) GetByID(ctx context.Context, id string) (jobsite.JobSite, error) {
	s, ok := f.sites[id]
	if !ok {
		return jobsite.JobSite{}, jobsite.ErrNotFound
	}
	return s, nil
}

func (f *fakeJobSiteRepo) List(ctx context.Context) ([]jobsite.JobSite, error) { return nil, nil }

func (f *fakeJobSiteRepo) Update(ctx context.Context, s jobsite.JobSite) (jobsite.JobSite, error) {
	return s, nil
}

func (f *fakeJobSiteRepo) Deactivate(ctx context.Context, id string) error { return nil }

type fakeGeocoder struct{}

func (fakeGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	return "1 Test St, Sydney NSW"
}

// ---- helpers ----

func ptr[T any](v T) *T { return &v }

func statusIn(s timesheet.Status, states []timesheet.Status) bool {
	for _, candidate := range states {
		if s == candidate {
			return true
		}
	}
	return false
}

func contextWithClaims(t *testing.T, workerID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"worker_id": workerID,
		"role":      role,
		"type":      "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type clockFixture struct {
	svc           *ClockServiceImpl
	timesheetRepo *fakeTimesheetRepo
	entryRepo     *fakeEntryRepo
	jobSiteRepo   *fakeJobSiteRepo
}

func newClockFixture(t *testing.T, now time.Time) *clockFixture {
	t.Helper()

	tsRepo := newFakeTimesheetRepo()
	entryRepo := newFakeEntryRepo()
	siteRepo := &fakeJobSiteRepo{sites: map[string]jobsite.JobSite{
		"site-1": {
			ID:             "site-1",
			Name:           "Warehouse A",
			ClientID:       ptr("client-1"),
			Latitude:       ptr(-33.8688),
			Longitude:      ptr(151.2093),
			GeofenceRadius: 100,
			IsActive:       true,
		},
		"site-nocoords": {
			ID:       "site-nocoords",
			Name:     "Depot",
			ClientID: ptr("client-1"),
			IsActive: true,
		},
		"site-unlinked": {
			ID:       "site-unlinked",
			Name:     "Orphan Site",
			IsActive: true,
		},
	}}

	svc := NewClockService(fakeTx{}, tsRepo, entryRepo, &fakeDocketRepo{}, siteRepo, fakeGeocoder{}, time.UTC).(*ClockServiceImpl)
	svc.now = func() time.Time { return now }

	return &clockFixture{svc: svc, timesheetRepo: tsRepo, entryRepo: entryRepo, jobSiteRepo: siteRepo}
}

// Wednesday 2026-03-04 08:00 UTC.
var testNow = time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)

// ---- tests ----

func TestClockInCreatesTimesheetAndEntry(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	resp, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude:  -33.8688,
		Longitude: 151.2093,
		JobSiteID: ptr("site-1"),
		WorkedAs:  ptr("Forklift Driver"),
	})
	require.NoError(t, err)

	assert.Equal(t, "12538", resp.DocketNumber)
	assert.Equal(t, "2026-03-04 08:00:00", resp.ClockInTime)
	assert.Equal(t, "1 Test St, Sydney NSW", resp.ClockInAddress)
	assert.False(t, resp.GeofenceExceeded)
	require.NotNil(t, resp.JobSiteName)
	assert.Equal(t, "Warehouse A", *resp.JobSiteName)

	// The weekly timesheet spans Monday to Sunday of the clock-in week.
	ts, err := f.timesheetRepo.GetByWorkerWeekClient(ctx, "worker-1",
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), "client-1")
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.Equal(t, "2026-03-08", ts.WeekEnding.Format("2006-01-02"))
	assert.Equal(t, timesheet.StatusDraft, ts.Status)
	assert.Equal(t, timesheet.InjuryNA, ts.InjuryReported)

	entry, err := f.entryRepo.GetByID(ctx, resp.EntryID)
	require.NoError(t, err)
	assert.Equal(t, "WED", entry.DayOfWeek)
	assert.Equal(t, ts.ID, entry.TimesheetID)
	assert.True(t, entry.IsOpen())
}

func TestClockInReusesExistingWeeklyTimesheet(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	first, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	require.NoError(t, err)

	_, err = f.svc.ClockOut(ctx, &timesheet.ClockOutRequest{Latitude: -33.8688, Longitude: 151.2093})
	require.NoError(t, err)

	// Next day, same week, same client: the docket number must not change.
	f.svc.now = func() time.Time { return testNow.AddDate(0, 0, 1) }
	second, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, first.DocketNumber, second.DocketNumber)
	assert.Len(t, f.timesheetRepo.sheets, 1)
}

func TestClockInTwiceSameDayFails(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	_, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	require.NoError(t, err)

	_, err = f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	assert.ErrorIs(t, err, timesheet.ErrAlreadyClockedIn)
}

func TestClockInConcurrentOnlyOneWins(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	const n = 10
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
				Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, timesheet.ErrAlreadyClockedIn)
		}
	}
	assert.Equal(t, 1, succeeded)
}

// A clock-in that loses the first-creation race on the weekly timesheet must
// land on the open-session conflict, not a generic failure.
func TestClockInWeekKeyRaceLoserGetsAlreadyClockedIn(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	// A concurrent clock-in commits its timesheet and open entry between this
	// caller's lookup and its insert.
	clockIn := testNow
	f.timesheetRepo.onCreate = func() {
		f.timesheetRepo.sheets["ts-winner"] = timesheet.Timesheet{
			ID:           "ts-winner",
			DocketNumber: "12530",
			WorkerID:     "worker-1",
			ClientID:     "client-1",
			WeekStarting: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			WeekEnding:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
			Status:       timesheet.StatusDraft,
		}
		f.entryRepo.entries["entry-winner"] = timesheet.Entry{
			ID:          "entry-winner",
			TimesheetID: "ts-winner",
			WorkerID:    "worker-1",
			EntryDate:   time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
			ClockInTime: &clockIn,
			Status:      timesheet.StatusDraft,
		}
	}

	_, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	assert.ErrorIs(t, err, timesheet.ErrAlreadyClockedIn)
}

// When the concurrent winner only created the timesheet, the loser reuses it
// and keeps the winner's docket number.
func TestClockInWeekKeyRaceReusesWinnersTimesheet(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	f.timesheetRepo.onCreate = func() {
		f.timesheetRepo.sheets["ts-winner"] = timesheet.Timesheet{
			ID:           "ts-winner",
			DocketNumber: "12530",
			WorkerID:     "worker-1",
			ClientID:     "client-1",
			WeekStarting: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			WeekEnding:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
			Status:       timesheet.StatusDraft,
		}
	}

	resp, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "12530", resp.DocketNumber)
	assert.Len(t, f.timesheetRepo.sheets, 1)
}

func TestClockOutConcurrentOnlyOneWins(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	_, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	require.NoError(t, err)

	f.svc.now = func() time.Time { return testNow.Add(8 * time.Hour) }

	const n = 10
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.ClockOut(ctx, &timesheet.ClockOutRequest{
				Latitude: -33.8688, Longitude: 151.2093,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, timesheet.ErrNotClockedIn)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestClockInGeofenceExceededIsFlaggedNotBlocked(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	// Melbourne coordinates against a Sydney site.
	resp, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -37.8136, Longitude: 144.9631, JobSiteID: ptr("site-1"),
	})
	require.NoError(t, err)
	assert.True(t, resp.GeofenceExceeded)
}

func TestClockInSiteWithoutCoordinatesSkipsGeofence(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	resp, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -37.8136, Longitude: 144.9631, JobSiteID: ptr("site-nocoords"),
	})
	require.NoError(t, err)
	assert.False(t, resp.GeofenceExceeded)
}

func TestClockInInvalidJobSite(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	cases := []struct {
		name   string
		siteID *string
	}{
		{"missing job site", nil},
		{"unknown job site", ptr("nope")},
		{"site without a client", ptr("site-unlinked")},
	}
	for _, c := range cases {
		_, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
			Latitude: -33.8688, Longitude: 151.2093, JobSiteID: c.siteID,
		})
		assert.ErrorIs(t, err, timesheet.ErrInvalidJobSite, c.name)
	}
}

func TestClockInRejectsBadCoordinates(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	_, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: 95, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	assert.Error(t, err)
}

func TestClockInRetriesOnceOnDocketConflict(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	f.timesheetRepo.createErrs = []error{timesheet.ErrDocketConflict, nil}

	resp, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	require.NoError(t, err)
	// First allocation burned by the conflict, second one sticks.
	assert.Equal(t, "12539", resp.DocketNumber)
}

func TestClockInGivesUpAfterSecondDocketConflict(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	f.timesheetRepo.createErrs = []error{timesheet.ErrDocketConflict, timesheet.ErrDocketConflict}

	_, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	assert.ErrorIs(t, err, timesheet.ErrDocketConflict)
}

func TestClockOutSplitsHoursAtThreshold(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	in, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	require.NoError(t, err)

	// 10.5 hours on the clock.
	f.svc.now = func() time.Time { return testNow.Add(10*time.Hour + 30*time.Minute) }
	resp, err := f.svc.ClockOut(ctx, &timesheet.ClockOutRequest{
		Latitude: -33.8688, Longitude: 151.2093, Comments: ptr("long shift"),
	})
	require.NoError(t, err)

	assert.Equal(t, in.EntryID, resp.EntryID)
	assert.Equal(t, 8.0, resp.OrdinaryHours)
	assert.Equal(t, 2.5, resp.OvertimeHours)
	assert.Equal(t, 10.5, resp.TotalHours)
	assert.Equal(t, 10.5, resp.WeeklyTotal)

	// Totals frozen on the entry and rolled up to the timesheet.
	entry, err := f.entryRepo.GetByID(ctx, resp.EntryID)
	require.NoError(t, err)
	assert.False(t, entry.IsOpen())
	assert.Equal(t, 10.5, entry.TotalHours)

	ts, err := f.timesheetRepo.GetByID(ctx, entry.TimesheetID)
	require.NoError(t, err)
	assert.Equal(t, 8.0, ts.TotalOrdinaryHours)
	assert.Equal(t, 2.5, ts.TotalOvertimeHours)
	assert.Equal(t, 10.5, ts.TotalHours)
}

func TestClockOutWithoutOpenSession(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	_, err := f.svc.ClockOut(ctx, &timesheet.ClockOutRequest{Latitude: -33.8688, Longitude: 151.2093})
	assert.ErrorIs(t, err, timesheet.ErrNotClockedIn)
}

func TestClockOutBeforeClockInFails(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	_, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	require.NoError(t, err)

	f.svc.now = func() time.Time { return testNow.Add(-time.Hour) }
	_, err = f.svc.ClockOut(ctx, &timesheet.ClockOutRequest{Latitude: -33.8688, Longitude: 151.2093})
	assert.ErrorIs(t, err, timesheet.ErrInvalidTimeRange)
}

func TestWeeklyTotalAccumulatesAcrossDays(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	for day := 0; day < 2; day++ {
		dayStart := testNow.AddDate(0, 0, day)
		f.svc.now = func() time.Time { return dayStart }
		_, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
			Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
		})
		require.NoError(t, err)

		f.svc.now = func() time.Time { return dayStart.Add(9 * time.Hour) }
		resp, err := f.svc.ClockOut(ctx, &timesheet.ClockOutRequest{Latitude: -33.8688, Longitude: 151.2093})
		require.NoError(t, err)

		assert.Equal(t, 9.0, resp.TotalHours)
		assert.Equal(t, float64(9*(day+1)), resp.WeeklyTotal)
	}
}

func TestStatus(t *testing.T) {
	f := newClockFixture(t, testNow)
	ctx := contextWithClaims(t, "worker-1", "worker")

	status, err := f.svc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.IsClockedIn)
	assert.Zero(t, status.HoursWorkedToday)

	_, err = f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
		Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	require.NoError(t, err)

	status, err = f.svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.IsClockedIn)
	require.NotNil(t, status.ClockInTime)
	assert.Equal(t, "2026-03-04 08:00:00", *status.ClockInTime)

	f.svc.now = func() time.Time { return testNow.Add(4 * time.Hour) }
	_, err = f.svc.ClockOut(ctx, &timesheet.ClockOutRequest{Latitude: -33.8688, Longitude: 151.2093})
	require.NoError(t, err)

	status, err = f.svc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.IsClockedIn)
	assert.Equal(t, 4.0, status.HoursWorkedToday)
}

func TestHistoryScopesToCaller(t *testing.T) {
	f := newClockFixture(t, testNow)

	for i, workerID := range []string{"worker-1", "worker-2"} {
		ctx := contextWithClaims(t, workerID, "worker")
		_, err := f.svc.ClockIn(ctx, &timesheet.ClockInRequest{
			Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
		})
		require.NoError(t, err, strconv.Itoa(i))
	}

	history, err := f.svc.History(contextWithClaims(t, "worker-1", "worker"), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, history.TotalEntries)
}

func TestClockInWithoutClaimsFails(t *testing.T) {
	f := newClockFixture(t, testNow)

	_, err := f.svc.ClockIn(context.Background(), &timesheet.ClockInRequest{
		Latitude: -33.8688, Longitude: 151.2093, JobSiteID: ptr("site-1"),
	})
	assert.Error(t, err)
}
