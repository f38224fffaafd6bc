package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/worker"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/handler/http/response"
)

// AdminOnly rejects callers whose role claim is not admin.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(worker.RoleAdmin) {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
