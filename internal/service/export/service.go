package export

import (
	"context"
	"time"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/export"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/validator"
)

type ExportService interface {
	// ListApproved returns the export view of approved work at the requested
	// grain.
	ListApproved(ctx context.Context, req *export.ListRequest) (*export.ListResponse, error)
}

type ExportServiceImpl struct {
	repo export.Repository
}

func NewExportService(repo export.Repository) ExportService {
	return &ExportServiceImpl{repo: repo}
}

// ListApproved implements ExportService.
func (s *ExportServiceImpl) ListApproved(ctx context.Context, req *export.ListRequest) (*export.ListResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filter := export.Filter{
		Grain:    export.Grain(req.Grain),
		ClientID: req.ClientID,
		WorkerID: req.WorkerID,
	}
	if req.WeekFrom != nil {
		from, err := validator.ParseDate(*req.WeekFrom)
		if err != nil {
			return nil, err
		}
		filter.WeekFrom = &from
	}
	if req.WeekTo != nil {
		to, err := validator.ParseDate(*req.WeekTo)
		if err != nil {
			return nil, err
		}
		filter.WeekTo = &to
	}

	rows, err := s.repo.ListApproved(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &export.ListResponse{
		Rows:      make([]export.RowResponse, 0, len(rows)),
		TotalRows: len(rows),
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, toRowResponse(row))
	}

	return resp, nil
}

func toRowResponse(row export.Row) export.RowResponse {
	resp := export.RowResponse{
		TimesheetID:         row.TimesheetID,
		EntryID:             row.EntryID,
		DocketNumber:        row.DocketNumber,
		OrderNumber:         row.OrderNumber,
		WorkerName:          row.WorkerName,
		ClientName:          row.ClientName,
		WeekStarting:        row.WeekStarting.Format("2006-01-02"),
		WeekEnding:          row.WeekEnding.Format("2006-01-02"),
		DayOfWeek:           row.DayOfWeek,
		JobSiteName:         row.JobSiteName,
		OrdinaryHours:       row.OrdinaryHours,
		OvertimeHours:       row.OvertimeHours,
		TotalHours:          row.TotalHours,
		PayRateBase:         row.PayRateBase,
		PayRateOvertime:     row.PayRateOvertime,
		PayRateWeekend:      row.PayRateWeekend,
		PayRateNight:        row.PayRateNight,
		BillingRateHourly:   row.BillingRateHourly,
		BillingRateOvertime: row.BillingRateOvertime,
		BillingRateWeekend:  row.BillingRateWeekend,
		BillingRateNight:    row.BillingRateNight,
		MYOBCustomerID:      row.MYOBCustomerID,
	}

	if row.EntryDate != nil {
		entryDate := row.EntryDate.Format("2006-01-02")
		resp.EntryDate = &entryDate
	}
	if row.ApprovedAt != nil {
		approved := row.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approved
	}

	return resp
}
