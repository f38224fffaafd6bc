package http

import (
	"encoding/json"
	"net/http"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/notification"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/handler/http/response"
	notificationservice "github.com/raw-labour-hire/timesheet-backend-go/internal/service/notification"
)

type NotificationHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	settingsService notificationservice.SettingsService
}

func NewNotificationHandler(settingsService notificationservice.SettingsService) NotificationHandler {
	return &notificationHandlerImpl{
		settingsService: settingsService,
	}
}

// GetSettings implements NotificationHandler.
func (h *notificationHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSettings implements NotificationHandler.
func (h *notificationHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req notification.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.Update(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification settings updated", result)
}
