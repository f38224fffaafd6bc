package postgresql

import (
	"context"
	"fmt"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/export"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/database"
)

type exportRepository struct {
	db *database.DB
}

func NewExportRepository(db *database.DB) export.Repository {
	return &exportRepository{db: db}
}

// ListApproved implements export.Repository. Rates are joined in live so an
// export reflects the records as they stand at query time.
func (r *exportRepository) ListApproved(ctx context.Context, filter export.Filter) ([]export.Row, error) {
	if filter.Grain == export.GrainEntry {
		return r.listApprovedEntries(ctx, filter)
	}
	return r.listApprovedTimesheets(ctx, filter)
}

func (r *exportRepository) listApprovedTimesheets(ctx context.Context, filter export.Filter) ([]export.Row, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.docket_number, COALESCE(t.order_number, c.order_number),
			   t.worker_id, w.first_name || ' ' || w.last_name,
			   t.client_id, c.name,
			   t.week_starting, t.week_ending,
			   t.total_ordinary_hours, t.total_overtime_hours, t.total_hours,
			   w.pay_rate_base, w.pay_rate_overtime, w.pay_rate_weekend, w.pay_rate_night,
			   c.billing_rate_hourly, c.billing_rate_overtime, c.billing_rate_weekend, c.billing_rate_night,
			   c.myob_customer_id, t.updated_at
		FROM timesheets t
		JOIN workers w ON w.id = t.worker_id
		JOIN clients c ON c.id = t.client_id
		WHERE t.status = 'approved'
	`
	args := []interface{}{}

	query, args = appendExportFilters(query, args, filter, "t")
	query += ` ORDER BY t.week_starting DESC, c.name, w.first_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query export rows: %w", err)
	}
	defer rows.Close()

	var result []export.Row
	for rows.Next() {
		var row export.Row
		if err := rows.Scan(
			&row.TimesheetID, &row.DocketNumber, &row.OrderNumber,
			&row.WorkerID, &row.WorkerName,
			&row.ClientID, &row.ClientName,
			&row.WeekStarting, &row.WeekEnding,
			&row.OrdinaryHours, &row.OvertimeHours, &row.TotalHours,
			&row.PayRateBase, &row.PayRateOvertime, &row.PayRateWeekend, &row.PayRateNight,
			&row.BillingRateHourly, &row.BillingRateOvertime, &row.BillingRateWeekend, &row.BillingRateNight,
			&row.MYOBCustomerID, &row.ApprovedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan export row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func (r *exportRepository) listApprovedEntries(ctx context.Context, filter export.Filter) ([]export.Row, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, e.id, t.docket_number, COALESCE(t.order_number, c.order_number),
			   t.worker_id, w.first_name || ' ' || w.last_name,
			   t.client_id, c.name,
			   t.week_starting, t.week_ending,
			   e.entry_date, e.day_of_week, s.name,
			   e.ordinary_hours, e.overtime_hours, e.total_hours,
			   w.pay_rate_base, w.pay_rate_overtime, w.pay_rate_weekend, w.pay_rate_night,
			   c.billing_rate_hourly, c.billing_rate_overtime, c.billing_rate_weekend, c.billing_rate_night,
			   c.myob_customer_id, e.updated_at
		FROM timesheet_entries e
		JOIN timesheets t ON t.id = e.timesheet_id
		JOIN workers w ON w.id = t.worker_id
		JOIN clients c ON c.id = t.client_id
		LEFT JOIN job_sites s ON s.id = e.job_site_id
		WHERE e.status = 'approved'
	`
	args := []interface{}{}

	query, args = appendExportFilters(query, args, filter, "t")
	query += ` ORDER BY e.entry_date DESC, c.name, w.first_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query export entry rows: %w", err)
	}
	defer rows.Close()

	var result []export.Row
	for rows.Next() {
		var row export.Row
		if err := rows.Scan(
			&row.TimesheetID, &row.EntryID, &row.DocketNumber, &row.OrderNumber,
			&row.WorkerID, &row.WorkerName,
			&row.ClientID, &row.ClientName,
			&row.WeekStarting, &row.WeekEnding,
			&row.EntryDate, &row.DayOfWeek, &row.JobSiteName,
			&row.OrdinaryHours, &row.OvertimeHours, &row.TotalHours,
			&row.PayRateBase, &row.PayRateOvertime, &row.PayRateWeekend, &row.PayRateNight,
			&row.BillingRateHourly, &row.BillingRateOvertime, &row.BillingRateWeekend, &row.BillingRateNight,
			&row.MYOBCustomerID, &row.ApprovedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan export entry row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func appendExportFilters(query string, args []interface{}, filter export.Filter, alias string) (string, []interface{}) {
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		query += fmt.Sprintf(" AND %s.client_id = $%d", alias, len(args))
	}
	if filter.WorkerID != nil {
		args = append(args, *filter.WorkerID)
		query += fmt.Sprintf(" AND %s.worker_id = $%d", alias, len(args))
	}
	if filter.WeekFrom != nil {
		args = append(args, *filter.WeekFrom)
		query += fmt.Sprintf(" AND %s.week_starting >= $%d", alias, len(args))
	}
	if filter.WeekTo != nil {
		args = append(args, *filter.WeekTo)
		query += fmt.Sprintf(" AND %s.week_starting <= $%d", alias, len(args))
	}
	return query, args
}
