package response

import (
	"errors"
	"net/http"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/auth"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/client"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/jobsite"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/myob"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/timesheet"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/worker"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Clock session errors
	case errors.Is(err, timesheet.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in, please clock out first")
	case errors.Is(err, timesheet.ErrNotClockedIn):
		BadRequest(w, "Not currently clocked in", nil)
	case errors.Is(err, timesheet.ErrInvalidJobSite):
		BadRequest(w, "Job site cannot be resolved to a client", nil)
	case errors.Is(err, timesheet.ErrInvalidTimeRange):
		BadRequest(w, "Clock-out time precedes clock-in time", nil)

	// Approval workflow errors
	case errors.Is(err, timesheet.ErrAlreadySubmitted):
		Conflict(w, "Already submitted")
	case errors.Is(err, timesheet.ErrNotSubmitted):
		Conflict(w, "Not in submitted state")
	case errors.Is(err, timesheet.ErrDocketConflict):
		Conflict(w, "Docket number already taken")
	case errors.Is(err, timesheet.ErrTimesheetExists):
		Conflict(w, "Timesheet already exists for this worker, week and client")
	case errors.Is(err, timesheet.ErrStaleState):
		Conflict(w, "Record changed while the request was in flight, please retry")
	case errors.Is(err, timesheet.ErrAccessDenied):
		Forbidden(w, "Not allowed to access this timesheet")
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Timesheet entry not found")

	// Worker domain errors
	case errors.Is(err, worker.ErrNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrEmailTaken):
		Conflict(w, "Email already registered")
	case errors.Is(err, worker.ErrInactiveWorker):
		Forbidden(w, "Worker account is deactivated")

	// Client and job site errors
	case errors.Is(err, client.ErrNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrNameTaken):
		Conflict(w, "Client name already registered")
	case errors.Is(err, jobsite.ErrNotFound):
		NotFound(w, "Job site not found")

	// Integrations
	case errors.Is(err, myob.ErrNotConnected):
		NotFound(w, "MYOB account not connected")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
