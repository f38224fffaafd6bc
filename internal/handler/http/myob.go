package http

import (
	"net/http"
	"time"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/handler/http/response"
	myobservice "github.com/raw-labour-hire/timesheet-backend-go/internal/service/myob"
)

type MYOBHandler interface {
	Connect(w http.ResponseWriter, r *http.Request)
	Callback(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Disconnect(w http.ResponseWriter, r *http.Request)
}

type myobHandlerImpl struct {
	myobService myobservice.MYOBService
}

func NewMYOBHandler(myobService myobservice.MYOBService) MYOBHandler {
	return &myobHandlerImpl{
		myobService: myobService,
	}
}

const myobStateCookie = "myob_oauth_state"

// Connect implements MYOBHandler.
func (h *myobHandlerImpl) Connect(w http.ResponseWriter, r *http.Request) {
	url, state := h.myobService.ConnectURL(r.Context())

	http.SetCookie(w, &http.Cookie{
		Name:     myobStateCookie,
		Value:    state,
		Path:     "/api/v1/myob",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(w, map[string]string{"authorize_url": url})
}

// Callback implements MYOBHandler.
func (h *myobHandlerImpl) Callback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(myobStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != state {
		response.BadRequest(w, "OAuth state mismatch", nil)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	conn, err := h.myobService.HandleCallback(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "MYOB connected", map[string]interface{}{
		"connected_at": conn.ConnectedAt,
		"expires_at":   conn.ExpiresAt,
	})
}

// Status implements MYOBHandler.
func (h *myobHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	conn, err := h.myobService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"connected":    true,
		"connected_at": conn.ConnectedAt,
		"expires_at":   conn.ExpiresAt,
		"company_file": conn.CompanyFile,
	})
}

// Disconnect implements MYOBHandler.
func (h *myobHandlerImpl) Disconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.myobService.Disconnect(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "MYOB disconnected", nil)
}
