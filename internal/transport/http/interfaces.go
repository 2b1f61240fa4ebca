package http

import (
	"context"
	"io"

	"callpulse/pkg/contracts/domain"
)

// ReportServiceInterface defines what the report handler needs from the
// analysis pipeline. Defined handler-side so tests can substitute fakes.
type ReportServiceInterface interface {
	Analyze(ctx context.Context, filename string, r io.Reader) (*domain.Analysis, error)
	NormalizedTable(ctx context.Context, filename string, r io.Reader) (*domain.Table, error)
	DescribeTable(ctx context.Context, filename string, r io.Reader) ([]domain.ColumnStats, error)
	Template() map[string]interface{}
}

// ExporterInterface serializes analysis results for download.
type ExporterInterface interface {
	WriteTable(w io.Writer, t *domain.Table) error
	WriteColumnStats(w io.Writer, stats []domain.ColumnStats) error
}

// HealthServiceInterface defines what the health handler needs.
type HealthServiceInterface interface {
	HealthCheck(ctx context.Context) map[string]interface{}
	LivenessCheck(ctx context.Context) map[string]interface{}
	ReadinessCheck(ctx context.Context) map[string]interface{}
	Version() map[string]interface{}
}
