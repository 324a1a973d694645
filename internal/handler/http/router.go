package http

import (
	"log/slog"
	"os"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Master     MasterHandler
	Admin      AdminHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.Get("/me", h.Auth.GetProfile)
				r.Put("/profile", h.Auth.UpdateProfile)
				r.Put("/change-password", h.Auth.ChangePassword)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/register", h.Auth.Register)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", h.Attendance.PunchIn)
				r.Post("/punch-out", h.Attendance.PunchOut)
				r.Get("/my-attendance", h.Attendance.GetMyAttendance)
				r.Get("/today", h.Attendance.TodayStatus)
				r.Get("/calendar", h.Attendance.Calendar)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/apply", h.Leave.Apply)
				r.Get("/my-leaves", h.Leave.GetMyLeaves)
				r.Get("/balance", h.Leave.GetBalance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/all", h.Admin.ListLeaves)
					r.Put("/{id}/approve", h.Admin.ApproveLeave)
					r.Put("/{id}/reject", h.Admin.RejectLeave)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Master.ListHolidays)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateHoliday)
					r.Delete("/{id}", h.Master.DeleteHoliday)
				})
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", h.Master.ListActiveLeaveTypes)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/all", h.Master.ListAllLeaveTypes)
					r.Post("/", h.Master.CreateLeaveType)
					r.Put("/{id}", h.Master.UpdateLeaveType)
					r.Delete("/{id}", h.Master.DeleteLeaveType)
				})
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Admin.ListEmployees)
					r.Post("/", h.Admin.CreateEmployee)
					r.Put("/{id}", h.Admin.UpdateEmployee)
					r.Delete("/{id}", h.Admin.DeleteEmployee)
				})

				r.Get("/attendance-report", h.Admin.AttendanceReport)
				r.Get("/payroll-summary", h.Admin.PayrollSummary)
				r.Get("/export/csv", h.Admin.ExportCSV)
				r.Get("/export/pdf", h.Admin.ExportPDF)
				r.Post("/trigger-auto-punchout", h.Admin.TriggerAutoPunchOut)
			})
		})
	})
	return r
}
