package domain

import "strings"

// Canonical column names after header normalization.
const (
	ColRepresentative = "representative"
	ColDoctor         = "doctor"
	ColDivision       = "division"
	ColDate           = "date"
	ColCallType       = "call_type"
	ColOutcome        = "outcome"
	ColProduct        = "product"
	ColLocation       = "location"
)

// RequiredColumns lists the columns a call report is expected to carry.
// Absence is a warning, not an error.
var RequiredColumns = []string{ColRepresentative, ColDoctor, ColDivision, ColDate}

// OptionalColumns lists columns the dashboard can additionally use.
var OptionalColumns = []string{ColCallType, ColOutcome, ColProduct, ColLocation}

// Table is an in-memory call-report table with normalized column names.
// Rows are padded to the column count; no other schema is enforced.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Column returns all cell values of the named column in row order.
// A nil slice is returned when the column is absent.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[idx])
	}
	return values
}

// NormalizeHeader lower-cases and trims a raw column header.
func NormalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}
