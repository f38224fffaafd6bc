package notification

import (
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/validator"
)

type UpdateRequest struct {
	SMSEnabled *bool `json:"sms_enabled,omitempty"`

	ClockInReminderEnabled *bool   `json:"clock_in_reminder_enabled,omitempty"`
	ClockInReminderTime    *string `json:"clock_in_reminder_time,omitempty"`

	ClockOutReminderEnabled *bool   `json:"clock_out_reminder_enabled,omitempty"`
	ClockOutReminderTime    *string `json:"clock_out_reminder_time,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClockInReminderTime != nil && !validator.IsValidTimeOfDay(*r.ClockInReminderTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in_reminder_time",
			Message: "clock_in_reminder_time must be in HH:MM format",
		})
	}

	if r.ClockOutReminderTime != nil && !validator.IsValidTimeOfDay(*r.ClockOutReminderTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out_reminder_time",
			Message: "clock_out_reminder_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	SMSEnabled bool `json:"sms_enabled"`

	ClockInReminderEnabled bool   `json:"clock_in_reminder_enabled"`
	ClockInReminderTime    string `json:"clock_in_reminder_time"`

	ClockOutReminderEnabled bool   `json:"clock_out_reminder_enabled"`
	ClockOutReminderTime    string `json:"clock_out_reminder_time"`
}

func ToResponse(s Settings) Response {
	return Response{
		SMSEnabled:              s.SMSEnabled,
		ClockInReminderEnabled:  s.ClockInReminderEnabled,
		ClockInReminderTime:     s.ClockInReminderTime,
		ClockOutReminderEnabled: s.ClockOutReminderEnabled,
		ClockOutReminderTime:    s.ClockOutReminderTime,
	}
}
