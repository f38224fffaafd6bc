package http

import (
	"net/http"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/export"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/handler/http/response"
	exportservice "github.com/raw-labour-hire/timesheet-backend-go/internal/service/export"
)

type ExportHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService exportservice.ExportService
}

func NewExportHandler(exportService exportservice.ExportService) ExportHandler {
	return &exportHandlerImpl{
		exportService: exportService,
	}
}

// List implements ExportHandler.
func (h *exportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := export.ListRequest{Grain: q.Get("grain")}
	if v := q.Get("client_id"); v != "" {
		req.ClientID = &v
	}
	if v := q.Get("worker_id"); v != "" {
		req.WorkerID = &v
	}
	if v := q.Get("week_from"); v != "" {
		req.WeekFrom = &v
	}
	if v := q.Get("week_to"); v != "" {
		req.WeekTo = &v
	}

	result, err := h.exportService.ListApproved(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
