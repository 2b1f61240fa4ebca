package dataprocessing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"callpulse/pkg/contracts/domain"
)

// Loader errors surfaced to the upload handler.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyFile         = errors.New("file contains no data")
)

// ParseError wraps a parser failure with the offending filename so the
// handler can report it as a user-facing message.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Loader parses uploaded call-report files into normalized tables.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger.With(slog.String("component", "loader"))}
}

// Load dispatches on the file extension, parses the stream and returns the
// normalized table along with non-fatal warnings about missing expected
// columns. Unsupported extensions return ErrUnsupportedFormat; parser
// failures return a *ParseError. No schema is enforced beyond header
// normalization.
func (l *Loader) Load(filename string, r io.Reader) (*domain.Table, []string, error) {
	var (
		table *domain.Table
		err   error
	)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		table, err = l.loadCSV(r)
	case ".xlsx", ".xls":
		table, err = l.loadExcel(r)
	default:
		l.logger.Warn("rejected upload with unsupported extension",
			slog.String("filename", filename),
			slog.String("extension", ext))
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		if errors.Is(err, ErrEmptyFile) {
			return nil, nil, &ParseError{Filename: filename, Err: ErrEmptyFile}
		}
		return nil, nil, &ParseError{Filename: filename, Err: err}
	}

	normalizeColumns(table)
	warnings := missingColumnWarnings(table)

	l.logger.Info("file loaded",
		slog.String("filename", filename),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", len(table.Columns)),
		slog.Int("warnings", len(warnings)))

	return table, warnings, nil
}

// loadCSV reads the stream with encoding/csv. Ragged rows are tolerated and
// padded or truncated to the header width.
func (l *Loader) loadCSV(r io.Reader) (*domain.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	return tableFromRecords(records), nil
}

// loadExcel reads the first sheet of a workbook with excelize.
func (l *Loader) loadExcel(r io.Reader) (*domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	return tableFromRecords(rows), nil
}

// tableFromRecords treats the first record as the header row and pads or
// truncates every data row to the header width.
func tableFromRecords(records [][]string) *domain.Table {
	header := records[0]
	width := len(header)

	table := &domain.Table{
		Columns: append([]string(nil), header...),
		Rows:    make([][]string, 0, len(records)-1),
	}
	for _, record := range records[1:] {
		row := make([]string, width)
		copy(row, record)
		table.Rows = append(table.Rows, row)
	}
	return table
}

// normalizeColumns lower-cases and trims every header in place.
func normalizeColumns(t *domain.Table) {
	for i, c := range t.Columns {
		t.Columns[i] = domain.NormalizeHeader(c)
	}
}

// missingColumnWarnings reports which expected columns the upload lacks.
func missingColumnWarnings(t *domain.Table) []string {
	var missing []string
	for _, col := range domain.RequiredColumns {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return []string{
		fmt.Sprintf("some recommended columns are missing: %s", strings.Join(missing, ", ")),
		fmt.Sprintf("the dashboard works best with columns: %s, and optionally: %s",
			strings.Join(domain.RequiredColumns, ", "),
			strings.Join(domain.OptionalColumns, ", ")),
	}
}
