// Package services contains the application services that sit between the
// HTTP transport and the dataprocessing pipeline.
package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"callpulse/internal/dataprocessing"
	"callpulse/internal/infrastructure"
	"callpulse/pkg/contracts/domain"
)

// ReportService runs the analysis pipeline for uploaded call reports.
// It is stateless: every call parses its own stream and discards the table
// when the response is written.
type ReportService struct {
	loader  *dataprocessing.Loader
	logger  *slog.Logger
	metrics *infrastructure.BusinessMetrics
}

// NewReportService creates a report service with an injected logger.
// The business metrics are optional and may be nil.
func NewReportService(logger *slog.Logger, metrics *infrastructure.BusinessMetrics) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		loader:  dataprocessing.NewLoader(logger),
		logger:  logger.With(slog.String("component", "report_service")),
		metrics: metrics,
	}
}

// Analyze runs the full pipeline: load and normalize, then compute metrics,
// insights and charts. Loader errors abort the upload; everything after the
// loader is total and cannot fail the request.
func (s *ReportService) Analyze(ctx context.Context, filename string, r io.Reader) (*domain.Analysis, error) {
	start := time.Now()

	table, warnings, err := s.loader.Load(filename, r)
	infrastructure.RecordAnalysis(ctx, s.metrics, uploadFormat(filename), rowCount(table), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	metrics := dataprocessing.CalculateMetrics(table)
	analysis := &domain.Analysis{
		Filename:    filename,
		RowCount:    table.RowCount(),
		ColumnCount: len(table.Columns),
		Warnings:    warnings,
		Metrics:     metrics,
		Insights:    dataprocessing.GenerateInsights(table, metrics),
		Charts:      dataprocessing.BuildCharts(s.logger, table),
	}

	s.logger.InfoContext(ctx, "analysis complete",
		slog.String("filename", filename),
		slog.Int("rows", analysis.RowCount),
		slog.Int("insights", len(analysis.Insights)),
		slog.Int("charts", len(analysis.Charts)),
		slog.Duration("duration", time.Since(start)))

	return analysis, nil
}

// NormalizedTable loads the upload and returns the normalized table for the
// data export. Warnings are logged but not returned; the export succeeds
// regardless of missing columns.
func (s *ReportService) NormalizedTable(ctx context.Context, filename string, r io.Reader) (*domain.Table, error) {
	table, warnings, err := s.loader.Load(filename, r)
	if err != nil {
		return nil, err
	}
	if len(warnings) > 0 {
		s.logger.WarnContext(ctx, "exporting table with missing expected columns",
			slog.String("filename", filename),
			slog.Any("warnings", warnings))
	}
	if s.metrics != nil {
		s.metrics.ExportsTotal.Add(ctx, 1)
	}
	return table, nil
}

// DescribeTable loads the upload and returns per-column descriptive
// statistics for the summary export.
func (s *ReportService) DescribeTable(ctx context.Context, filename string, r io.Reader) ([]domain.ColumnStats, error) {
	table, _, err := s.loader.Load(filename, r)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ExportsTotal.Add(ctx, 1)
	}
	return dataprocessing.DescribeColumns(table), nil
}

// Template describes the expected upload schema, with a small sample row
// set analysts can copy.
func (s *ReportService) Template() map[string]interface{} {
	return map[string]interface{}{
		"required_columns": domain.RequiredColumns,
		"optional_columns": domain.OptionalColumns,
		"sample_rows": []map[string]string{
			{"representative": "John Doe", "doctor": "Dr. Smith", "division": "Cardiology", "date": "2024-01-15", "call_type": "In-person", "outcome": "Positive"},
			{"representative": "Jane Smith", "doctor": "Dr. Jones", "division": "Oncology", "date": "2024-01-16", "call_type": "Virtual", "outcome": "Positive"},
			{"representative": "Bob Johnson", "doctor": "Dr. Brown", "division": "Cardiology", "date": "2024-01-16", "call_type": "In-person", "outcome": "Follow-up needed"},
			{"representative": "Alice Williams", "doctor": "Dr. Davis", "division": "Neurology", "date": "2024-01-17", "call_type": "Phone", "outcome": "Positive"},
		},
	}
}

func uploadFormat(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

func rowCount(t *domain.Table) int {
	if t == nil {
		return 0
	}
	return t.RowCount()
}
