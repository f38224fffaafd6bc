package client

import "time"

// Client is a host company that workers are placed with. Billing rates feed
// the export view.
type Client struct {
	ID             string
	Name           string
	ContactName    *string
	ContactEmail   *string
	ContactPhone   *string
	Address        *string
	ABN            *string
	OrderNumber    *string
	MYOBCustomerID *string

	BillingRateHourly   *float64
	BillingRateOvertime *float64
	BillingRateWeekend  *float64
	BillingRateNight    *float64

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
