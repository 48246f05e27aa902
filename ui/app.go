// Package ui exposes the diagnostic engine over HTTP: intake submission,
// diagnosis history, admin aggregates, and workbook export.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"opsdiag/adapters/excel"
	"opsdiag/app"
	"opsdiag/internal"
	"opsdiag/ports"
)

// App represents the HTTP application
type App struct {
	router      *chi.Mux
	diagnoser   *app.DiagnosisService
	statsSvc    *app.StatsService
	rescorer    *app.RescoreService
	submissions ports.SubmissionRepository
	diagnoses   ports.DiagnosisRepository
	exporter    *excel.Exporter
	logger      *internal.Logger
}

// Config holds the app's collaborators.
type Config struct {
	Diagnoser   *app.DiagnosisService
	Stats       *app.StatsService
	Rescorer    *app.RescoreService
	Submissions ports.SubmissionRepository
	Diagnoses   ports.DiagnosisRepository
	Exporter    *excel.Exporter
	Logger      *internal.Logger
}

// NewApp creates the HTTP application and wires its routes.
func NewApp(config Config) *App {
	logger := config.Logger
	if logger == nil {
		logger = internal.DefaultLogger
	}

	a := &App{
		router:      chi.NewRouter(),
		diagnoser:   config.Diagnoser,
		statsSvc:    config.Stats,
		rescorer:    config.Rescorer,
		submissions: config.Submissions,
		diagnoses:   config.Diagnoses,
		exporter:    config.Exporter,
		logger:      logger,
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/health", a.handleHealth)

	a.router.Post("/api/diagnose", a.handleDiagnose)
	a.router.Get("/api/diagnoses", a.handleListDiagnoses)
	a.router.Get("/api/diagnoses/{id}", a.handleGetDiagnosis)
	a.router.Get("/api/diagnoses/{id}/report", a.handleDiagnosisReport)
	a.router.Get("/api/stats", a.handleStats)
	a.router.Post("/api/rescore", a.handleRescore)
	a.router.Post("/api/export", a.handleExport)
}

// Handler returns the root http.Handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Start runs the HTTP server on the given address.
func (a *App) Start(addr string) error {
	a.logger.Info("listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
