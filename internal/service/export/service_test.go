package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/export"
)

type fakeExportRepo struct {
	lastFilter export.Filter
	rows       []export.Row
}

func (f *fakeExportRepo) ListApproved(ctx context.Context, filter export.Filter) ([]export.Row, error) {
	f.lastFilter = filter
	return f.rows, nil
}

func ptr[T any](v T) *T { return &v }

func sampleRow() export.Row {
	approved := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	return export.Row{
		TimesheetID:         "ts-1",
		DocketNumber:        "12538",
		WorkerID:            "worker-1",
		WorkerName:          "Jo Smith",
		ClientID:            "client-1",
		ClientName:          "Acme Logistics",
		WeekStarting:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		WeekEnding:          time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		OrdinaryHours:       38,
		OvertimeHours:       4.5,
		TotalHours:          42.5,
		PayRateBase:         ptr(34.50),
		PayRateWeekend:      ptr(51.75),
		PayRateNight:        ptr(41.40),
		BillingRateHourly:   ptr(52.00),
		BillingRateWeekend:  ptr(78.00),
		BillingRateNight:    ptr(62.40),
		MYOBCustomerID:      ptr("ACME01"),
		ApprovedAt:          &approved,
		BillingRateOvertime: ptr(72.80),
	}
}

func TestListApprovedDefaultsToTimesheetGrain(t *testing.T) {
	repo := &fakeExportRepo{rows: []export.Row{sampleRow()}}
	svc := NewExportService(repo)

	resp, err := svc.ListApproved(context.Background(), &export.ListRequest{})
	require.NoError(t, err)

	assert.Equal(t, export.GrainTimesheet, repo.lastFilter.Grain)
	require.Equal(t, 1, resp.TotalRows)

	row := resp.Rows[0]
	assert.Equal(t, "12538", row.DocketNumber)
	assert.Equal(t, "2026-03-02", row.WeekStarting)
	assert.Equal(t, "2026-03-08", row.WeekEnding)
	assert.Equal(t, 42.5, row.TotalHours)
	require.NotNil(t, row.ApprovedAt)
	assert.Equal(t, "2026-03-09T10:00:00Z", *row.ApprovedAt)
	require.NotNil(t, row.MYOBCustomerID)
	assert.Equal(t, "ACME01", *row.MYOBCustomerID)
	assert.Nil(t, row.EntryDate)

	// The full rate card rides along so the sink never re-derives amounts.
	assert.Equal(t, ptr(34.50), row.PayRateBase)
	assert.Equal(t, ptr(51.75), row.PayRateWeekend)
	assert.Equal(t, ptr(41.40), row.PayRateNight)
	assert.Equal(t, ptr(52.00), row.BillingRateHourly)
	assert.Equal(t, ptr(78.00), row.BillingRateWeekend)
	assert.Equal(t, ptr(62.40), row.BillingRateNight)
}

func TestListApprovedEntryGrain(t *testing.T) {
	row := sampleRow()
	row.EntryID = ptr("entry-1")
	entryDate := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	row.EntryDate = &entryDate
	row.DayOfWeek = ptr("TUE")

	repo := &fakeExportRepo{rows: []export.Row{row}}
	svc := NewExportService(repo)

	resp, err := svc.ListApproved(context.Background(), &export.ListRequest{Grain: "entry"})
	require.NoError(t, err)

	assert.Equal(t, export.GrainEntry, repo.lastFilter.Grain)
	require.Equal(t, 1, resp.TotalRows)
	require.NotNil(t, resp.Rows[0].EntryDate)
	assert.Equal(t, "2026-03-03", *resp.Rows[0].EntryDate)
}

func TestListApprovedPassesFiltersThrough(t *testing.T) {
	repo := &fakeExportRepo{}
	svc := NewExportService(repo)

	_, err := svc.ListApproved(context.Background(), &export.ListRequest{
		Grain:    "timesheet",
		ClientID: ptr("client-1"),
		WorkerID: ptr("worker-1"),
		WeekFrom: ptr("2026-03-02"),
		WeekTo:   ptr("2026-03-30"),
	})
	require.NoError(t, err)

	assert.Equal(t, ptr("client-1"), repo.lastFilter.ClientID)
	assert.Equal(t, ptr("worker-1"), repo.lastFilter.WorkerID)
	require.NotNil(t, repo.lastFilter.WeekFrom)
	assert.Equal(t, "2026-03-02", repo.lastFilter.WeekFrom.Format("2006-01-02"))
	require.NotNil(t, repo.lastFilter.WeekTo)
	assert.Equal(t, "2026-03-30", repo.lastFilter.WeekTo.Format("2006-01-02"))
}

func TestListApprovedRejectsBadInput(t *testing.T) {
	svc := NewExportService(&fakeExportRepo{})

	_, err := svc.ListApproved(context.Background(), &export.ListRequest{Grain: "hourly"})
	assert.Error(t, err)

	_, err = svc.ListApproved(context.Background(), &export.ListRequest{WeekFrom: ptr("03/02/2026")})
	assert.Error(t, err)
}
