package myob

import "time"

// Connection stores the single MYOB OAuth grant for the agency account.
type Connection struct {
	ID           int
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	CompanyFile  *string
	ConnectedAt  time.Time
	UpdatedAt    time.Time
}

// Expired reports whether the access token needs a refresh.
func (c Connection) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
