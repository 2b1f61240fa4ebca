package dataprocessing

import (
	"fmt"

	"callpulse/pkg/contracts/domain"
)

// GenerateInsights derives the ordered human-readable insight list from a
// table and its metrics. Every rule is independently optional: a rule whose
// column (or metric) is absent contributes nothing. Dates that fail to parse
// are dropped; if none parse, the date-based insights are omitted entirely.
func GenerateInsights(t *domain.Table, metrics domain.Metrics) []string {
	insights := make([]string, 0, 6)

	totalCalls := metrics[domain.MetricTotalCalls]

	if reps, ok := metrics[domain.MetricTotalReps]; ok && reps > 0 {
		insights = append(insights,
			fmt.Sprintf("Average calls per representative: %.1f", float64(totalCalls)/float64(reps)))

		if top, ok := topValue(t.Column(domain.ColRepresentative)); ok {
			insights = append(insights,
				fmt.Sprintf("Top performer: %s with %d calls", top.Value, top.Count))
		}
	}

	if doctors, ok := metrics[domain.MetricTotalDoctors]; ok && doctors > 0 {
		insights = append(insights,
			fmt.Sprintf("Average visits per doctor: %.1f", float64(totalCalls)/float64(doctors)))
	}

	if t.HasColumn(domain.ColDivision) {
		if top, ok := topValue(t.Column(domain.ColDivision)); ok {
			insights = append(insights,
				fmt.Sprintf("Most active division: %s with %d calls", top.Value, top.Count))
		}
	}

	insights = append(insights, dateInsights(t)...)

	return insights
}

// dateInsights computes the date span and daily average over the rows whose
// date column parses. The daily average divides by max(span, 1), so a report
// whose rows all fall on one day still divides by one day.
func dateInsights(t *domain.Table) []string {
	if !t.HasColumn(domain.ColDate) {
		return nil
	}

	dates := parseDates(t.Column(domain.ColDate))
	if len(dates) == 0 {
		return nil
	}

	minDate, maxDate := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	spanDays := int(dayOf(maxDate).Sub(dayOf(minDate)).Hours() / 24)
	denominator := spanDays
	if denominator < 1 {
		denominator = 1
	}
	dailyAvg := float64(len(dates)) / float64(denominator)

	return []string{
		fmt.Sprintf("Data covers %d days", spanDays),
		fmt.Sprintf("Average daily calls: %.1f", dailyAvg),
	}
}
