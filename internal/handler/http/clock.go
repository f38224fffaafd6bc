package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/timesheet"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/handler/http/response"
)

type ClockHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type clockHandlerImpl struct {
	clockService timesheet.ClockService
}

func NewClockHandler(clockService timesheet.ClockService) ClockHandler {
	return &clockHandlerImpl{
		clockService: clockService,
	}
}

// ClockIn implements ClockHandler.
func (h *clockHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req timesheet.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.clockService.ClockIn(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements ClockHandler.
func (h *clockHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req timesheet.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.clockService.ClockOut(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// Status implements ClockHandler.
func (h *clockHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.clockService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History implements ClockHandler.
func (h *clockHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "days must be a number", nil)
			return
		}
		days = parsed
	}

	result, err := h.clockService.History(r.Context(), days)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
