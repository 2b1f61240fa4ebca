package dataprocessing

import (
	"math"
	"strconv"
	"strings"

	"callpulse/pkg/contracts/domain"
)

// DescribeColumns computes descriptive statistics for every column, in
// column order. All columns get count/unique/top/freq; columns whose
// non-empty cells all parse as numbers additionally get mean, sample
// standard deviation, min and max.
func DescribeColumns(t *domain.Table) []domain.ColumnStats {
	stats := make([]domain.ColumnStats, 0, len(t.Columns))
	for _, col := range t.Columns {
		stats = append(stats, describeColumn(col, t.Column(col)))
	}
	return stats
}

func describeColumn(name string, values []string) domain.ColumnStats {
	cs := domain.ColumnStats{Column: name}

	nonEmpty := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			nonEmpty = append(nonEmpty, v)
		}
	}
	cs.Count = len(nonEmpty)
	cs.Unique = distinctCount(nonEmpty)

	if top, ok := topValue(nonEmpty); ok {
		cs.Top = top.Value
		cs.Freq = top.Count
	}

	if numbers, ok := parseNumeric(nonEmpty); ok {
		mean, std, minVal, maxVal := summarize(numbers)
		cs.Mean = &mean
		cs.Std = &std
		cs.Min = &minVal
		cs.Max = &maxVal
	}

	return cs
}

// parseNumeric parses the cells as floats; it reports false unless every
// non-empty cell parses and at least one value exists.
func parseNumeric(values []string) ([]float64, bool) {
	if len(values) == 0 {
		return nil, false
	}
	numbers := make([]float64, 0, len(values))
	for _, v := range values {
		f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			return nil, false
		}
		numbers = append(numbers, f)
	}
	return numbers, true
}

// summarize returns mean, sample standard deviation, min and max.
func summarize(numbers []float64) (mean, std, minVal, maxVal float64) {
	minVal, maxVal = numbers[0], numbers[0]
	var sum float64
	for _, n := range numbers {
		sum += n
		if n < minVal {
			minVal = n
		}
		if n > maxVal {
			maxVal = n
		}
	}
	mean = sum / float64(len(numbers))

	if len(numbers) > 1 {
		var ss float64
		for _, n := range numbers {
			d := n - mean
			ss += d * d
		}
		std = math.Sqrt(ss / float64(len(numbers)-1))
	}
	return mean, std, minVal, maxVal
}
