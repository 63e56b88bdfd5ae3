// Package app wires the configuration, logging, services, and HTTP router
// into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salespulse/internal/config"
	apierrors "salespulse/internal/errors"
	"salespulse/internal/infrastructure"
	"salespulse/internal/middleware"
	"salespulse/internal/report"
	"salespulse/internal/services"
	transporthttp "salespulse/internal/transport/http"
)

// Version is the application version reported by the health endpoint.
const Version = "1.0.0"

// Application holds the assembled components of the running service.
type Application struct {
	config *config.Config
	logger *slog.Logger
	router chi.Router
	server *http.Server

	reportService *services.ReportService
	healthService *services.HealthService
}

// New creates the application from configuration: logger, metrics, the
// pipeline services, and the HTTP router.
func New(cfg *config.Config) (*Application, error) {
	if err := cfg.Paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := infrastructure.NewMetrics(registry)

	store := report.NewArtifactStore(cfg.Paths.ReportsDir, logger)
	chartRenderer := report.NewChartRenderer(cfg.Report.ChartWidth, cfg.Report.ChartHeight)
	documentBuilder := report.NewDocumentBuilder(cfg.Report.CurrencyPrefix)

	app := &Application{
		config: cfg,
		logger: logger,
		reportService: services.NewReportService(
			chartRenderer,
			documentBuilder,
			store,
			cfg.Forecast.HorizonDays,
			metrics,
			logger,
		),
		healthService: services.NewHealthService(Version, cfg.Paths.ReportsDir),
	}

	app.router = app.setupRouter(registry)
	app.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return app, nil
}

// setupRouter builds the middleware chain and mounts the API routes.
func (a *Application) setupRouter(registry *prometheus.Registry) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredLogger(a.logger))
	r.Use(middleware.Recoverer(a.logger))
	r.Use(middleware.SecurityHeaders)

	if a.config.Security.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			a.config.Security.RateLimit.RPS,
			a.config.Security.RateLimit.Burst,
			a.logger,
		)
		r.Use(limiter.Handler)
	}

	errorHandler := apierrors.NewErrorHandler(a.logger, false)

	reportHandler := transporthttp.NewReportHandler(
		a.reportService,
		a.config.Upload.MaxBytes,
		a.logger,
		errorHandler,
	)
	healthHandler := transporthttp.NewHealthHandler(a.healthService, a.logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Mount("/", reportHandler.Routes())
		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/health/ready", healthHandler.ReadinessCheck)
	})

	// Metrics are scraped internally and skip the API middleware extras.
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.NotFound(errorHandler.NotFound)

	return r
}

// Router exposes the assembled router, mainly for tests.
func (a *Application) Router() chi.Router {
	return a.router
}

// Start begins serving HTTP traffic. It blocks until the server stops.
func (a *Application) Start() error {
	a.logger.Info("server starting",
		slog.String("addr", a.server.Addr),
		slog.String("version", Version),
	)

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down within the configured timeout.
func (a *Application) Stop(ctx context.Context) error {
	a.logger.Info("server stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.logger.Info("server stopped")
	return nil
}

// Run starts the application and blocks until an interrupt or termination
// signal arrives, then shuts down gracefully.
func (a *Application) Run() error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		a.logger.Info("signal received", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
	defer cancel()
	return a.Stop(ctx)
}
