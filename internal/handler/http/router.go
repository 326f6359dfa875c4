package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/suweldo/suweldo-backend-go/internal/handler/http/middleware"
	"github.com/suweldo/suweldo-backend-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, authHandler AuthHandler, payrollHandler PayrollHandler, attendanceHandler AttendanceHandler, holidayHandler HolidayHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "suweldo"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/token", authHandler.Token)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/runs", func(r chi.Router) {
					r.Get("/", payrollHandler.ListRuns)
					r.Post("/", payrollHandler.CreateRun)

					r.Route("/{runID}", func(r chi.Router) {
						r.Get("/", payrollHandler.GetRun)
						r.Post("/compute", payrollHandler.ComputeRun)
						r.Post("/release", payrollHandler.ReleaseRun)
						r.Get("/payslips", payrollHandler.GetRunPayslips)
					})
				})

				r.Get("/payslips/{payslipID}", payrollHandler.GetPayslip)

				r.Route("/adjustments", func(r chi.Router) {
					r.Post("/", payrollHandler.CreateAdjustment)
					r.Delete("/{adjustmentID}", payrollHandler.DeleteAdjustment)
				})

				r.Route("/penalties", func(r chi.Router) {
					r.Post("/", payrollHandler.CreatePenalty)
					r.Route("/{penaltyID}", func(r chi.Router) {
						r.Get("/", payrollHandler.GetPenalty)
						r.Post("/cancel", payrollHandler.CancelPenalty)
					})
				})

				r.Put("/wage-profiles", payrollHandler.UpsertWageProfile)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Create)
				r.Route("/{attendanceID}", func(r chi.Router) {
					r.Get("/", attendanceHandler.GetByID)
					r.Put("/", attendanceHandler.Update)
					r.Delete("/", attendanceHandler.Delete)
				})
				r.Get("/employees/{employeeID}", attendanceHandler.ListByEmployee)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)
				r.Post("/", holidayHandler.Create)
				r.Delete("/{holidayID}", holidayHandler.Delete)
			})
		})
	})
	return r
}
