package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Clock        ClockHandler
	Timesheet    TimesheetHandler
	Export       ExportHandler
	Worker       WorkerHandler
	Client       ClientHandler
	JobSite      JobSiteHandler
	Notification NotificationHandler
	MYOB         MYOBHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/clock", func(r chi.Router) {
				r.Post("/in", h.Clock.ClockIn)
				r.Post("/out", h.Clock.ClockOut)
				r.Get("/status", h.Clock.Status)
				r.Get("/history", h.Clock.History)
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", h.Timesheet.List)
				r.Get("/current-week", h.Timesheet.CurrentWeek)
				r.Get("/{id}", h.Timesheet.Get)
				r.Post("/{id}/submit", h.Timesheet.Submit)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", h.Timesheet.Approve)
					r.Post("/{id}/reject", h.Timesheet.Reject)
				})
			})

			r.Route("/entries", func(r chi.Router) {
				r.Post("/{id}/submit", h.Timesheet.SubmitEntry)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", h.Timesheet.ApproveEntry)
					r.Post("/{id}/reject", h.Timesheet.RejectEntry)
				})
			})

			r.Get("/job-sites", h.JobSite.List)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/export", h.Export.List)

				r.Route("/workers", func(r chi.Router) {
					r.Get("/", h.Worker.List)
					r.Post("/", h.Worker.Create)
					r.Get("/{id}", h.Worker.Get)
					r.Put("/{id}", h.Worker.Update)
					r.Delete("/{id}", h.Worker.Deactivate)
				})

				r.Route("/clients", func(r chi.Router) {
					r.Get("/", h.Client.List)
					r.Post("/", h.Client.Create)
					r.Get("/{id}", h.Client.Get)
					r.Put("/{id}", h.Client.Update)
					r.Delete("/{id}", h.Client.Deactivate)
				})

				r.Route("/job-sites", func(r chi.Router) {
					r.Post("/", h.JobSite.Create)
					r.Get("/{id}", h.JobSite.Get)
					r.Put("/{id}", h.JobSite.Update)
					r.Delete("/{id}", h.JobSite.Deactivate)
				})

				r.Route("/notifications", func(r chi.Router) {
					r.Get("/settings", h.Notification.GetSettings)
					r.Put("/settings", h.Notification.UpdateSettings)
				})

				r.Route("/myob", func(r chi.Router) {
					r.Get("/connect", h.MYOB.Connect)
					r.Get("/callback", h.MYOB.Callback)
					r.Get("/status", h.MYOB.Status)
					r.Delete("/", h.MYOB.Disconnect)
				})
			})
		})
	})
	return r
}
