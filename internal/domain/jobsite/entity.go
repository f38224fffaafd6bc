package jobsite

import "time"

// JobSite is a physical work location. ClientID resolves which client a clock
// session bills to; coordinates enable the geofence check at clock-in.
type JobSite struct {
	ID       string
	Name     string
	ClientID *string
	Address  *string

	Latitude  *float64
	Longitude *float64

	// GeofenceRadius is in metres.
	GeofenceRadius int

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined columns
	ClientName *string
}

// DefaultGeofenceRadius applies when a site is created without one.
const DefaultGeofenceRadius = 100

// HasCoordinates reports whether the site can be geofenced.
func (s JobSite) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}
