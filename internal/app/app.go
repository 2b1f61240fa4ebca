// Package app wires configuration, logging, telemetry, services and the
// HTTP router into a runnable application.
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
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"callpulse/internal/config"
	apierrors "callpulse/internal/errors"
	"callpulse/internal/exporter"
	"callpulse/internal/infrastructure"
	custommw "callpulse/internal/middleware"
	"callpulse/internal/services"
	transport "callpulse/internal/transport/http"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Application holds all application state and dependencies.
type Application struct {
	config       *config.Config
	logger       *slog.Logger
	router       *chi.Mux
	server       *http.Server
	otel         *infrastructure.OTelProviders
	errorHandler *apierrors.ErrorHandler

	reportService *services.ReportService
	healthService *services.HealthService
}

// New creates a fully wired application.
func New() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	providers, err := infrastructure.InitializeOTel(infrastructure.DefaultOTelConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	var businessMetrics *infrastructure.BusinessMetrics
	if providers.Meter != nil {
		businessMetrics, err = infrastructure.CreateBusinessMetrics(providers.Meter)
		if err != nil {
			return nil, fmt.Errorf("failed to create business metrics: %w", err)
		}
	}

	app := &Application{
		config:        cfg,
		logger:        logger,
		otel:          providers,
		errorHandler:  apierrors.NewErrorHandler(logger, cfg.Logging.Development),
		reportService: services.NewReportService(logger, businessMetrics),
		healthService: services.NewHealthService(Version, BuildTime, logger),
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// setupRouter builds the middleware chain and mounts the API routes.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(custommw.RequestID)
	r.Use(custommw.RealIP)
	r.Use(custommw.StructuredLogger(a.logger))
	r.Use(custommw.Recoverer(a.logger))
	r.Use(custommw.SecurityHeaders)
	r.Use(custommw.StripSlashes)
	r.Use(custommw.Compress(5))
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(custommw.MaxUploadSize(a.config.Upload.MaxSizeBytes))

	if a.config.Security.EnableCORS {
		r.Use(custommw.CORS(custommw.CORSConfig{
			AllowedOrigins: a.config.Security.AllowedOrigins,
			Logger:         a.logger,
		}))
	}

	if a.config.Security.RateLimit.Enabled {
		limiter := custommw.NewRateLimiter(
			a.config.Security.RateLimit.RPS,
			a.config.Security.RateLimit.Burst,
			a.logger,
		)
		r.Use(limiter.Handler)
	}

	r.NotFound(a.errorHandler.NotFound)
	r.MethodNotAllowed(a.errorHandler.MethodNotAllowed)

	reportHandler := transport.NewReportHandler(
		a.reportService,
		exporter.NewCSVExporter(a.logger),
		a.logger,
		a.errorHandler,
	)
	healthHandler := transport.NewHealthHandler(a.healthService, a.logger)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/reports", reportHandler.Routes())
		r.Mount("/health", healthHandler.Routes())
		r.Get("/version", healthHandler.Version)
	})

	if a.otel.PrometheusHTTP != nil {
		r.Handle("/metrics", a.otel.PrometheusHTTP)
	}

	a.router = r
}

func (a *Application) createServer() {
	a.server = &http.Server{
		Addr:           fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:        a.router,
		ReadTimeout:    a.config.Server.ReadTimeout,
		WriteTimeout:   a.config.Server.WriteTimeout,
		IdleTimeout:    a.config.Server.IdleTimeout,
		MaxHeaderBytes: a.config.Server.MaxHeaderBytes,
	}
}

// Router exposes the configured router, mainly for tests.
func (a *Application) Router() http.Handler {
	return a.router
}

// Run starts the server and blocks until shutdown completes.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting",
			slog.String("addr", a.server.Addr),
			slog.String("version", Version))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutdown signal received")
	return a.Stop()
}

// Stop gracefully shuts down the server and telemetry providers.
func (a *Application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("server shutdown failed", slog.String("error", err.Error()))
		return err
	}

	if a.otel != nil {
		if err := a.otel.Shutdown(ctx); err != nil {
			a.logger.Error("telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}

	if err := infrastructure.CloseLogFile(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}

	a.logger.Info("shutdown complete")
	return nil
}
