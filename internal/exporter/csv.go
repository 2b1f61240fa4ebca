// Package exporter serializes analysis results for download. Both exports
// are recomputed per upload and streamed straight to the response; nothing
// is written to disk.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"callpulse/pkg/contracts/domain"
)

// utf8BOM helps Excel recognize the downloads as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVExporter writes the two downloadable artifacts: the normalized table
// and the per-column descriptive statistics.
type CSVExporter struct {
	logger *slog.Logger
}

// NewCSVExporter creates an exporter. A nil logger falls back to slog.Default.
func NewCSVExporter(logger *slog.Logger) *CSVExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVExporter{logger: logger.With(slog.String("component", "exporter"))}
}

// WriteTable streams the normalized table as CSV, header first.
func (e *CSVExporter) WriteTable(w io.Writer, t *domain.Table) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	writer.Flush()

	e.logger.Info("table exported",
		slog.Int("rows", t.RowCount()),
		slog.Int("columns", len(t.Columns)))

	return writer.Error()
}

var statsHeader = []string{"column", "count", "unique", "top", "freq", "mean", "std", "min", "max"}

// WriteColumnStats streams the descriptive statistics as CSV, one row per
// column. Numeric fields are blank for non-numeric columns.
func (e *CSVExporter) WriteColumnStats(w io.Writer, stats []domain.ColumnStats) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(statsHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, cs := range stats {
		record := []string{
			cs.Column,
			strconv.Itoa(cs.Count),
			strconv.Itoa(cs.Unique),
			cs.Top,
			freqField(cs),
			floatField(cs.Mean),
			floatField(cs.Std),
			floatField(cs.Min),
			floatField(cs.Max),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write stats for column %s: %w", cs.Column, err)
		}
	}
	writer.Flush()

	e.logger.Info("summary statistics exported", slog.Int("columns", len(stats)))

	return writer.Error()
}

func freqField(cs domain.ColumnStats) string {
	if cs.Top == "" {
		return ""
	}
	return strconv.Itoa(cs.Freq)
}

func floatField(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
