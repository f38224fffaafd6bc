package client

import (
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Name         string  `json:"name"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	ABN          *string `json:"abn,omitempty"`
	OrderNumber  *string `json:"order_number,omitempty"`

	BillingRateHourly   *float64 `json:"billing_rate_hourly,omitempty"`
	BillingRateOvertime *float64 `json:"billing_rate_overtime,omitempty"`
	BillingRateWeekend  *float64 `json:"billing_rate_weekend,omitempty"`
	BillingRateNight    *float64 `json:"billing_rate_night,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.ContactEmail != nil && !validator.IsValidEmail(*r.ContactEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_email",
			Message: "contact_email must be a valid email address",
		})
	}

	for field, rate := range map[string]*float64{
		"billing_rate_hourly":   r.BillingRateHourly,
		"billing_rate_overtime": r.BillingRateOvertime,
		"billing_rate_weekend":  r.BillingRateWeekend,
		"billing_rate_night":    r.BillingRateNight,
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
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	ABN          *string `json:"abn,omitempty"`
	OrderNumber  *string `json:"order_number,omitempty"`

	BillingRateHourly   *float64 `json:"billing_rate_hourly,omitempty"`
	BillingRateOvertime *float64 `json:"billing_rate_overtime,omitempty"`
	BillingRateWeekend  *float64 `json:"billing_rate_weekend,omitempty"`
	BillingRateNight    *float64 `json:"billing_rate_night,omitempty"`

	MYOBCustomerID *string `json:"myob_customer_id,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.ContactEmail != nil && !validator.IsValidEmail(*r.ContactEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_email",
			Message: "contact_email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	ABN          *string `json:"abn,omitempty"`
	OrderNumber  *string `json:"order_number,omitempty"`

	BillingRateHourly   *float64 `json:"billing_rate_hourly,omitempty"`
	BillingRateOvertime *float64 `json:"billing_rate_overtime,omitempty"`
	BillingRateWeekend  *float64 `json:"billing_rate_weekend,omitempty"`
	BillingRateNight    *float64 `json:"billing_rate_night,omitempty"`

	MYOBCustomerID *string `json:"myob_customer_id,omitempty"`
	IsActive       bool    `json:"is_active"`
}

func ToResponse(c Client) Response {
	return Response{
		ID:                  c.ID,
		Name:                c.Name,
		ContactName:         c.ContactName,
		ContactEmail:        c.ContactEmail,
		ContactPhone:        c.ContactPhone,
		Address:             c.Address,
		ABN:                 c.ABN,
		OrderNumber:         c.OrderNumber,
		BillingRateHourly:   c.BillingRateHourly,
		BillingRateOvertime: c.BillingRateOvertime,
		BillingRateWeekend:  c.BillingRateWeekend,
		BillingRateNight:    c.BillingRateNight,
		MYOBCustomerID:      c.MYOBCustomerID,
		IsActive:            c.IsActive,
	}
}
