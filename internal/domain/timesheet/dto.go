package timesheet

import (
	"strings"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/validator"
)

// ========================================
// CLOCK DTOs
// ========================================

type ClockInRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	JobSiteID *string `json:"job_site_id,omitempty"`
	WorkedAs  *string `json:"worked_as,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Comments       *string `json:"comments,omitempty"`
	FirstAidInjury bool    `json:"first_aid_injury"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockStatusResponse struct {
	IsClockedIn      bool    `json:"is_clocked_in"`
	ClockInTime      *string `json:"clock_in_time,omitempty"`
	ClockInAddress   *string `json:"clock_in_address,omitempty"`
	CurrentEntryID   *string `json:"current_entry_id,omitempty"`
	HoursWorkedToday float64 `json:"hours_worked_today"`
}

type ClockInResponse struct {
	EntryID          string  `json:"entry_id"`
	ClockInTime      string  `json:"clock_in_time"`
	ClockInAddress   string  `json:"clock_in_address"`
	DocketNumber     string  `json:"docket_number"`
	JobSiteName      *string `json:"job_site,omitempty"`
	GeofenceExceeded bool    `json:"geofence_exceeded,omitempty"`
}

type ClockOutResponse struct {
	EntryID         string  `json:"entry_id"`
	ClockInTime     string  `json:"clock_in_time"`
	ClockOutTime    string  `json:"clock_out_time"`
	ClockOutAddress string  `json:"clock_out_address"`
	OrdinaryHours   float64 `json:"ordinary_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	TotalHours      float64 `json:"total_hours"`
	WeeklyTotal     float64 `json:"weekly_total"`
}

type EntryResponse struct {
	ID              string  `json:"id"`
	DayOfWeek       string  `json:"day_of_week"`
	EntryDate       string  `json:"entry_date"`
	JobSiteName     *string `json:"job_site,omitempty"`
	ClockInTime     *string `json:"clock_in_time,omitempty"`
	ClockOutTime    *string `json:"clock_out_time,omitempty"`
	ClockInAddress  *string `json:"clock_in_address,omitempty"`
	ClockOutAddress *string `json:"clock_out_address,omitempty"`
	OrdinaryHours   float64 `json:"ordinary_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	TotalHours      float64 `json:"total_hours"`
	WorkedAs        *string `json:"worked_as,omitempty"`
	Comments        *string `json:"comments,omitempty"`
	FirstAidInjury  bool    `json:"first_aid_injury"`
	Status          string  `json:"status"`
}

type HistoryResponse struct {
	Entries      []EntryResponse `json:"entries"`
	TotalEntries int             `json:"total_entries"`
}

// ========================================
// TIMESHEET DTOs
// ========================================

type TimesheetResponse struct {
	ID                 string          `json:"id"`
	DocketNumber       string          `json:"docket_number"`
	OrderNumber        *string         `json:"order_number,omitempty"`
	WorkerName         *string         `json:"worker_name,omitempty"`
	ClientName         *string         `json:"client_name,omitempty"`
	WeekStarting       string          `json:"week_starting"`
	WeekEnding         string          `json:"week_ending"`
	Status             string          `json:"status"`
	TotalOrdinaryHours float64         `json:"total_ordinary_hours"`
	TotalOvertimeHours float64         `json:"total_overtime_hours"`
	TotalHours         float64         `json:"total_hours"`
	InjuryReported     string          `json:"injury_reported"`
	SupervisorSignedAt *string         `json:"supervisor_signed_at,omitempty"`
	SubmittedAt        *string         `json:"submitted_at,omitempty"`
	Entries            []EntryResponse `json:"entries,omitempty"`
}

type ListTimesheetsResponse struct {
	Timesheets []TimesheetResponse `json:"timesheets"`
}

// SubmitTimesheetRequest submits a whole week with one attestation. The weekly
// injury declaration is collected at this grain only.
type SubmitTimesheetRequest struct {
	ID                  string  `json:"-"`
	HostCompanyName     string  `json:"host_company_name"`
	SupervisorName      string  `json:"supervisor_name"`
	SupervisorContact   string  `json:"supervisor_contact"`
	SupervisorSignature *string `json:"supervisor_signature,omitempty"`
	InjuryReported      string  `json:"injury_reported"`
}

func (r *SubmitTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.HostCompanyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "host_company_name",
			Message: "host_company_name is required",
		})
	}

	if validator.IsEmpty(r.SupervisorName) {
		errs = append(errs, validator.ValidationError{
			Field:   "supervisor_name",
			Message: "supervisor_name is required",
		})
	}

	if validator.IsEmpty(r.SupervisorContact) {
		errs = append(errs, validator.ValidationError{
			Field:   "supervisor_contact",
			Message: "supervisor_contact is required",
		})
	}

	validInjury := []string{string(InjuryYes), string(InjuryNo), string(InjuryNA)}
	if !validator.IsInSlice(strings.ToLower(r.InjuryReported), validInjury) {
		errs = append(errs, validator.ValidationError{
			Field:   "injury_reported",
			Message: "injury_reported must be one of: yes, no, n/a",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SubmitEntryRequest submits a single day with its own attestation, for weeks
// where the supervisor differs per day.
type SubmitEntryRequest struct {
	ID                  string  `json:"-"`
	HostCompanyName     string  `json:"host_company_name"`
	SupervisorName      string  `json:"supervisor_name"`
	SupervisorContact   string  `json:"supervisor_contact"`
	SupervisorSignature *string `json:"supervisor_signature,omitempty"`
}

func (r *SubmitEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.HostCompanyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "host_company_name",
			Message: "host_company_name is required",
		})
	}

	if validator.IsEmpty(r.SupervisorName) {
		errs = append(errs, validator.ValidationError{
			Field:   "supervisor_name",
			Message: "supervisor_name is required",
		})
	}

	if validator.IsEmpty(r.SupervisorContact) {
		errs = append(errs, validator.ValidationError{
			Field:   "supervisor_contact",
			Message: "supervisor_contact is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectRequest struct {
	ID     string  `json:"-"`
	Reason *string `json:"reason,omitempty"`
}

type ListFilterRequest struct {
	Status *string `json:"status,omitempty"`
	Limit  int     `json:"limit"`
}

func (f *ListFilterRequest) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && *f.Status != "" {
		validStatuses := []string{
			string(StatusDraft), string(StatusSubmitted),
			string(StatusApproved), string(StatusRejected),
		}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: draft, submitted, approved, rejected",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
