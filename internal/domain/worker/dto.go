package worker

import (
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`

	PayRateBase     *float64 `json:"pay_rate_base,omitempty"`
	PayRateOvertime *float64 `json:"pay_rate_overtime,omitempty"`
	PayRateWeekend  *float64 `json:"pay_rate_weekend,omitempty"`
	PayRateNight    *float64 `json:"pay_rate_night,omitempty"`

	WorkDays *string `json:"work_days,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Role == "" {
		r.Role = string(RoleWorker)
	}
	if !validator.IsInSlice(r.Role, []string{string(RoleWorker), string(RoleSupervisor), string(RoleAdmin)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: worker, supervisor, admin",
		})
	}

	if r.PhoneNumber != nil && !validator.IsValidAUPhone(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be an Australian mobile number",
		})
	}

	for field, rate := range map[string]*float64{
		"pay_rate_base":     r.PayRateBase,
		"pay_rate_overtime": r.PayRateOvertime,
		"pay_rate_weekend":  r.PayRateWeekend,
		"pay_rate_night":    r.PayRateNight,
	} {
		if rate != nil && *rate < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	ID          string  `json:"-"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`

	PayRateBase     *float64 `json:"pay_rate_base,omitempty"`
	PayRateOvertime *float64 `json:"pay_rate_overtime,omitempty"`
	PayRateWeekend  *float64 `json:"pay_rate_weekend,omitempty"`
	PayRateNight    *float64 `json:"pay_rate_night,omitempty"`

	WorkDays *string `json:"work_days,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PhoneNumber != nil && !validator.IsValidAUPhone(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be an Australian mobile number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Role        string  `json:"role"`

	PayRateBase     *float64 `json:"pay_rate_base,omitempty"`
	PayRateOvertime *float64 `json:"pay_rate_overtime,omitempty"`
	PayRateWeekend  *float64 `json:"pay_rate_weekend,omitempty"`
	PayRateNight    *float64 `json:"pay_rate_night,omitempty"`

	WorkDays *string `json:"work_days,omitempty"`
	IsActive bool    `json:"is_active"`
}

// ToResponse maps the entity without the password hash.
func ToResponse(w Worker) Response {
	return Response{
		ID:              w.ID,
		FirstName:       w.FirstName,
		LastName:        w.LastName,
		Email:           w.Email,
		PhoneNumber:     w.PhoneNumber,
		Role:            string(w.Role),
		PayRateBase:     w.PayRateBase,
		PayRateOvertime: w.PayRateOvertime,
		PayRateWeekend:  w.PayRateWeekend,
		PayRateNight:    w.PayRateNight,
		WorkDays:        w.WorkDays,
		IsActive:        w.IsActive,
	}
}
