package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/client"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/handler/http/response"
	clientservice "github.com/raw-labour-hire/timesheet-backend-go/internal/service/client"
)

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type clientHandlerImpl struct {
	clientService clientservice.ClientService
}

func NewClientHandler(clientService clientservice.ClientService) ClientHandler {
	return &clientHandlerImpl{
		clientService: clientService,
	}
}

// Create implements ClientHandler.
func (h *clientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req client.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.clientService.Create(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created", result)
}

// Get implements ClientHandler.
func (h *clientHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.clientService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ClientHandler.
func (h *clientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.clientService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ClientHandler.
func (h *clientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req client.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.clientService.Update(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client updated", result)
}

// Deactivate implements ClientHandler.
func (h *clientHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.clientService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deactivated", nil)
}
