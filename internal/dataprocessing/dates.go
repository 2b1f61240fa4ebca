package dataprocessing

import (
	"strings"
	"time"
)

// dateLayouts are the formats accepted for the date column, tried in order.
// Slash-separated dates are read month-first, matching the original reports.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02-Jan-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// parseDate attempts to parse a single cell value as a calendar date.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// parseDates parses every value of a date column, silently dropping cells
// that match no known layout. The returned slice preserves row order.
func parseDates(values []string) []time.Time {
	parsed := make([]time.Time, 0, len(values))
	for _, v := range values {
		if ts, ok := parseDate(v); ok {
			parsed = append(parsed, ts)
		}
	}
	return parsed
}

// dayOf truncates a timestamp to its calendar day in UTC.
func dayOf(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}
