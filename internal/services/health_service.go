package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// HealthService reports process health and build information.
type HealthService struct {
	version   string
	buildTime string
	startTime time.Time
	logger    *slog.Logger
}

// NewHealthService creates a health service with build information.
func NewHealthService(version, buildTime string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:   version,
		buildTime: buildTime,
		startTime: time.Now(),
		logger:    logger.With(slog.String("component", "health_service")),
	}
}

// HealthCheck returns the overall health of the service. The pipeline has
// no external dependencies, so liveness implies readiness.
func (s *HealthService) HealthCheck(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{
		"status":     "healthy",
		"version":    s.version,
		"uptime":     time.Since(s.startTime).String(),
		"goroutines": runtime.NumGoroutine(),
	}
}

// LivenessCheck reports that the process is alive.
func (s *HealthService) LivenessCheck(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{"status": "alive"}
}

// ReadinessCheck reports that the service can accept uploads.
func (s *HealthService) ReadinessCheck(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{"status": "ready"}
}

// Version returns build information.
func (s *HealthService) Version() map[string]interface{} {
	return map[string]interface{}{
		"version":    s.version,
		"build_time": s.buildTime,
		"go_version": runtime.Version(),
	}
}
