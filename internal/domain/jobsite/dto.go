package jobsite

import (
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Name           string   `json:"name"`
	ClientID       *string  `json:"client_id,omitempty"`
	Address        *string  `json:"address,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	GeofenceRadius int      `json:"geofence_radius"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.GeofenceRadius < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "geofence_radius",
			Message: "geofence_radius must not be negative",
		})
	}
	if r.GeofenceRadius == 0 {
		r.GeofenceRadius = DefaultGeofenceRadius
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	ID             string   `json:"-"`
	Name           *string  `json:"name,omitempty"`
	ClientID       *string  `json:"client_id,omitempty"`
	Address        *string  `json:"address,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	GeofenceRadius *int     `json:"geofence_radius,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.GeofenceRadius != nil && *r.GeofenceRadius < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "geofence_radius",
			Message: "geofence_radius must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ClientID       *string  `json:"client_id,omitempty"`
	ClientName     *string  `json:"client_name,omitempty"`
	Address        *string  `json:"address,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	GeofenceRadius int      `json:"geofence_radius"`
	IsActive       bool     `json:"is_active"`
}

func ToResponse(s JobSite) Response {
	return Response{
		ID:             s.ID,
		Name:           s.Name,
		ClientID:       s.ClientID,
		ClientName:     s.ClientName,
		Address:        s.Address,
		Latitude:       s.Latitude,
		Longitude:      s.Longitude,
		GeofenceRadius: s.GeofenceRadius,
		IsActive:       s.IsActive,
	}
}
