package dataprocessing

import (
	"sort"
	"strings"

	"callpulse/pkg/contracts/domain"
)

// CalculateMetrics computes the per-upload key metrics. total_calls is the
// row count; the distinct-value metrics are included only when their column
// is present in the table.
func CalculateMetrics(t *domain.Table) domain.Metrics {
	metrics := domain.Metrics{
		domain.MetricTotalCalls: t.RowCount(),
	}

	distinct := func(col, metric string) {
		if !t.HasColumn(col) {
			return
		}
		metrics[metric] = distinctCount(t.Column(col))
	}

	distinct(domain.ColRepresentative, domain.MetricTotalReps)
	distinct(domain.ColDoctor, domain.MetricTotalDoctors)
	distinct(domain.ColDivision, domain.MetricTotalDivisions)

	return metrics
}

func trimmed(s string) string { return strings.TrimSpace(s) }

// distinctCount counts distinct non-empty trimmed values.
func distinctCount(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}

// valueCount pairs a cell value with its row frequency.
type valueCount struct {
	Value string
	Count int
}

// countValues tallies non-empty trimmed values and returns them ordered by
// descending count, ties broken by first appearance in the column.
func countValues(values []string) []valueCount {
	counts := make(map[string]int)
	order := make(map[string]int)
	for i, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := counts[v]; !ok {
			order[v] = i
		}
		counts[v]++
	}

	result := make([]valueCount, 0, len(counts))
	for v, c := range counts {
		result = append(result, valueCount{Value: v, Count: c})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return order[result[i].Value] < order[result[j].Value]
	})
	return result
}

// topValue returns the most frequent non-empty value of a column, or false
// when the column has no usable values.
func topValue(values []string) (valueCount, bool) {
	counts := countValues(values)
	if len(counts) == 0 {
		return valueCount{}, false
	}
	return counts[0], true
}
