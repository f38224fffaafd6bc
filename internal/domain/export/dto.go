package export

import (
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/validator"
)

type ListRequest struct {
	Grain    string  `json:"grain"`
	ClientID *string `json:"client_id,omitempty"`
	WorkerID *string `json:"worker_id,omitempty"`
	WeekFrom *string `json:"week_from,omitempty"`
	WeekTo   *string `json:"week_to,omitempty"`
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Grain == "" {
		r.Grain = string(GrainTimesheet)
	}
	if !validator.IsInSlice(r.Grain, []string{string(GrainEntry), string(GrainTimesheet)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "grain",
			Message: "grain must be one of: entry, timesheet",
		})
	}

	if r.WeekFrom != nil && !validator.IsValidDate(*r.WeekFrom) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_from",
			Message: "week_from must be a date in YYYY-MM-DD format",
		})
	}

	if r.WeekTo != nil && !validator.IsValidDate(*r.WeekTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_to",
			Message: "week_to must be a date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RowResponse struct {
	TimesheetID  string  `json:"timesheet_id"`
	EntryID      *string `json:"entry_id,omitempty"`
	DocketNumber string  `json:"docket_number"`
	OrderNumber  *string `json:"order_number,omitempty"`

	WorkerName string `json:"worker_name"`
	ClientName string `json:"client_name"`

	WeekStarting string  `json:"week_starting"`
	WeekEnding   string  `json:"week_ending"`
	EntryDate    *string `json:"entry_date,omitempty"`
	DayOfWeek    *string `json:"day_of_week,omitempty"`
	JobSiteName  *string `json:"job_site,omitempty"`

	OrdinaryHours float64 `json:"ordinary_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	TotalHours    float64 `json:"total_hours"`

	PayRateBase     *float64 `json:"pay_rate_base,omitempty"`
	PayRateOvertime *float64 `json:"pay_rate_overtime,omitempty"`
	PayRateWeekend  *float64 `json:"pay_rate_weekend,omitempty"`
	PayRateNight    *float64 `json:"pay_rate_night,omitempty"`

	BillingRateHourly   *float64 `json:"billing_rate_hourly,omitempty"`
	BillingRateOvertime *float64 `json:"billing_rate_overtime,omitempty"`
	BillingRateWeekend  *float64 `json:"billing_rate_weekend,omitempty"`
	BillingRateNight    *float64 `json:"billing_rate_night,omitempty"`

	MYOBCustomerID *string `json:"myob_customer_id,omitempty"`
	ApprovedAt     *string `json:"approved_at,omitempty"`
}

type ListResponse struct {
	Rows      []RowResponse `json:"rows"`
	TotalRows int           `json:"total_rows"`
}
