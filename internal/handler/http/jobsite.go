package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/jobsite"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/handler/http/response"
	jobsiteservice "github.com/raw-labour-hire/timesheet-backend-go/internal/service/jobsite"
)

type JobSiteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type jobSiteHandlerImpl struct {
	jobSiteService jobsiteservice.JobSiteService
}

func NewJobSiteHandler(jobSiteService jobsiteservice.JobSiteService) JobSiteHandler {
	return &jobSiteHandlerImpl{
		jobSiteService: jobSiteService,
	}
}

// Create implements JobSiteHandler.
func (h *jobSiteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req jobsite.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.jobSiteService.Create(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job site created", result)
}

// Get implements JobSiteHandler.
func (h *jobSiteHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.jobSiteService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements JobSiteHandler.
func (h *jobSiteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobSiteService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements JobSiteHandler.
func (h *jobSiteHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req jobsite.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.jobSiteService.Update(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job site updated", result)
}

// Deactivate implements JobSiteHandler.
func (h *jobSiteHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.jobSiteService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job site deactivated", nil)
}
