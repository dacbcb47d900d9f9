package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/softventure/timesheet-backend-go/internal/domain/report"
	"github.com/softventure/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/softventure/timesheet-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	recordHandler WorkRecordHandler,
	dailyReportHandler DailyReportHandler,
	reportHandler MonthlyReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-backend"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/companies", masterHandler.ListCompanies)
			r.Get("/holidays/{year}", masterHandler.ListHolidays)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
				})
			})

			r.Route("/work-records", func(r chi.Router) {
				r.Get("/{employeeID}/{year}/{month}", recordHandler.GetMonth)
				r.Post("/", recordHandler.SaveMonth)
			})

			r.Route("/daily-reports", func(r chi.Router) {
				r.Get("/{employeeID}/{date}", dailyReportHandler.Get)
				r.Post("/", dailyReportHandler.Save)
			})

			r.Route("/reports/{employeeID}/{year}/{month}", func(r chi.Router) {
				r.Get("/", reportHandler.Get)
				r.Get("/summary", reportHandler.Summary)
				r.Put("/overrides", reportHandler.SetOverrides)

				r.Post("/submit", reportHandler.Transition(report.TransitionSubmit))
				r.Post("/withdraw", reportHandler.Transition(report.TransitionWithdraw))

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/approve", reportHandler.Transition(report.TransitionApprove))
					r.Post("/remand", reportHandler.Transition(report.TransitionRemand))
					r.Post("/unapprove", reportHandler.Transition(report.TransitionUnapprove))
				})

				// Accounting only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAccounting)
					r.Post("/finalize", reportHandler.Transition(report.TransitionFinalize))
					r.Post("/definalize", reportHandler.Transition(report.TransitionDefinalize))
				})
			})
		})
	})

	return r
}
