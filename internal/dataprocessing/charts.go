package dataprocessing

import (
	"log/slog"
	"sort"

	"callpulse/pkg/contracts/domain"
)

const (
	topRepresentatives = 10
	topDoctors         = 15
)

// chartBuilder builds one chart from the table, or returns nil when the
// columns it needs are missing or empty.
type chartBuilder struct {
	id    string
	build func(*domain.Table) *domain.Chart
}

var chartBuilders = []chartBuilder{
	{id: "rep_performance", build: buildRepresentativePerformance},
	{id: "division_distribution", build: buildDivisionDistribution},
	{id: "call_trend", build: buildCallTrend},
	{id: "doctor_engagement", build: buildDoctorEngagement},
	{id: "division_rep_heatmap", build: buildDivisionRepHeatmap},
}

// BuildCharts runs the five chart builders independently. A builder that
// panics forfeits its slot; the remaining charts still render.
func BuildCharts(logger *slog.Logger, t *domain.Table) []domain.Chart {
	if logger == nil {
		logger = slog.Default()
	}

	charts := make([]domain.Chart, 0, len(chartBuilders))
	for _, b := range chartBuilders {
		if chart := safeBuild(logger, b, t); chart != nil {
			charts = append(charts, *chart)
		}
	}
	return charts
}

func safeBuild(logger *slog.Logger, b chartBuilder, t *domain.Table) (chart *domain.Chart) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("chart builder failed, omitting chart",
				slog.String("chart_id", b.id),
				slog.Any("panic", r))
			chart = nil
		}
	}()
	chart = b.build(t)
	if chart != nil {
		chart.ID = b.id
	}
	return chart
}

// buildRepresentativePerformance charts the top representatives by call count.
func buildRepresentativePerformance(t *domain.Table) *domain.Chart {
	if !t.HasColumn(domain.ColRepresentative) {
		return nil
	}
	counts := countValues(t.Column(domain.ColRepresentative))
	if len(counts) == 0 {
		return nil
	}
	if len(counts) > topRepresentatives {
		counts = counts[:topRepresentatives]
	}

	labels, data := splitCounts(counts)
	return &domain.Chart{
		Type:   domain.ChartBar,
		Title:  "Top 10 Representatives by Number of Calls",
		XTitle: "Representative",
		YTitle: "Number of Calls",
		Labels: labels,
		Series: []domain.Series{{Name: "Number of Calls", Data: data}},
	}
}

// buildDivisionDistribution charts call share per division as a donut.
func buildDivisionDistribution(t *domain.Table) *domain.Chart {
	if !t.HasColumn(domain.ColDivision) {
		return nil
	}
	counts := countValues(t.Column(domain.ColDivision))
	if len(counts) == 0 {
		return nil
	}

	labels, data := splitCounts(counts)
	return &domain.Chart{
		Type:   domain.ChartDonut,
		Title:  "Call Distribution by Division",
		Labels: labels,
		Series: []domain.Series{{Name: "Number of Calls", Data: data}},
	}
}

// buildCallTrend charts daily call counts over the rows whose date parses,
// grouped by calendar day in ascending order.
func buildCallTrend(t *domain.Table) *domain.Chart {
	if !t.HasColumn(domain.ColDate) {
		return nil
	}

	dates := parseDates(t.Column(domain.ColDate))
	if len(dates) == 0 {
		return nil
	}

	daily := make(map[string]float64, len(dates))
	for _, ts := range dates {
		daily[dayOf(ts).Format("2006-01-02")]++
	}

	days := make([]string, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Strings(days)

	data := make([]float64, len(days))
	for i, day := range days {
		data[i] = daily[day]
	}

	return &domain.Chart{
		Type:   domain.ChartLine,
		Title:  "Call Trend Over Time",
		XTitle: "Date",
		YTitle: "Number of Calls",
		Labels: days,
		Series: []domain.Series{{Name: "Number of Calls", Data: data}},
	}
}

// buildDoctorEngagement charts the most visited doctors as a horizontal bar.
func buildDoctorEngagement(t *domain.Table) *domain.Chart {
	if !t.HasColumn(domain.ColDoctor) {
		return nil
	}
	counts := countValues(t.Column(domain.ColDoctor))
	if len(counts) == 0 {
		return nil
	}
	if len(counts) > topDoctors {
		counts = counts[:topDoctors]
	}

	labels, data := splitCounts(counts)
	return &domain.Chart{
		Type:   domain.ChartHorizontalBar,
		Title:  "Top 15 Most Visited Doctors",
		XTitle: "Number of Visits",
		YTitle: "Doctor",
		Labels: labels,
		Series: []domain.Series{{Name: "Number of Visits", Data: data}},
	}
}

// buildDivisionRepHeatmap cross-tabulates division (rows) against
// representative (columns), each cell counting rows matching both.
func buildDivisionRepHeatmap(t *domain.Table) *domain.Chart {
	if !t.HasColumn(domain.ColDivision) || !t.HasColumn(domain.ColRepresentative) {
		return nil
	}

	divisions := countValues(t.Column(domain.ColDivision))
	reps := countValues(t.Column(domain.ColRepresentative))
	if len(divisions) == 0 || len(reps) == 0 {
		return nil
	}

	divIdx := make(map[string]int, len(divisions))
	yLabels := make([]string, len(divisions))
	for i, d := range divisions {
		divIdx[d.Value] = i
		yLabels[i] = d.Value
	}
	repIdx := make(map[string]int, len(reps))
	xLabels := make([]string, len(reps))
	for i, r := range reps {
		repIdx[r.Value] = i
		xLabels[i] = r.Value
	}

	matrix := make([][]float64, len(yLabels))
	for i := range matrix {
		matrix[i] = make([]float64, len(xLabels))
	}

	divCol := t.Column(domain.ColDivision)
	repCol := t.Column(domain.ColRepresentative)
	for i := range divCol {
		di, ok := divIdx[trimmed(divCol[i])]
		if !ok {
			continue
		}
		ri, ok := repIdx[trimmed(repCol[i])]
		if !ok {
			continue
		}
		matrix[di][ri]++
	}

	return &domain.Chart{
		Type:    domain.ChartHeatmap,
		Title:   "Calls Heatmap: Division vs Representative",
		XTitle:  "Representative",
		YTitle:  "Division",
		Labels:  xLabels,
		YLabels: yLabels,
		Matrix:  matrix,
	}
}

func splitCounts(counts []valueCount) ([]string, []float64) {
	labels := make([]string, len(counts))
	data := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Value
		data[i] = float64(c.Count)
	}
	return labels, data
}
