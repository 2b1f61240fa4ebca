package domain

// Metric names produced by the metrics calculator. Keys for columns absent
// from the uploaded table are omitted from the map entirely.
const (
	MetricTotalCalls     = "total_calls"
	MetricTotalReps      = "total_reps"
	MetricTotalDoctors   = "total_doctors"
	MetricTotalDivisions = "total_divisions"
)

// Metrics maps metric name to an integer count, recomputed per upload.
type Metrics map[string]int

// ChartType identifies the renderer a chart spec targets.
type ChartType string

const (
	ChartBar           ChartType = "bar"
	ChartHorizontalBar ChartType = "horizontal_bar"
	ChartDonut         ChartType = "donut"
	ChartLine          ChartType = "line"
	ChartHeatmap       ChartType = "heatmap"
)

// Series is a single named data series within a chart.
type Series struct {
	Name string    `json:"name,omitempty"`
	Data []float64 `json:"data"`
}

// Chart is a declarative chart specification for the dashboard frontend.
// Labels carry the category axis (or slice names); heatmaps additionally
// use YLabels for rows and Matrix for cell values, row order matching
// YLabels and column order matching Labels.
type Chart struct {
	ID      string      `json:"id"`
	Type    ChartType   `json:"type"`
	Title   string      `json:"title"`
	XTitle  string      `json:"x_title,omitempty"`
	YTitle  string      `json:"y_title,omitempty"`
	Labels  []string    `json:"labels,omitempty"`
	YLabels []string    `json:"y_labels,omitempty"`
	Series  []Series    `json:"series,omitempty"`
	Matrix  [][]float64 `json:"matrix,omitempty"`
}

// ColumnStats holds descriptive statistics for one table column.
// Numeric fields are nil for non-numeric columns.
type ColumnStats struct {
	Column string   `json:"column"`
	Count  int      `json:"count"`
	Unique int      `json:"unique"`
	Top    string   `json:"top,omitempty"`
	Freq   int      `json:"freq,omitempty"`
	Mean   *float64 `json:"mean,omitempty"`
	Std    *float64 `json:"std,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

// Analysis is the full result of one upload's pipeline run: metrics,
// insights and chart specs, plus the warnings raised while loading.
// Nothing here survives past the response; there is no cross-upload state.
type Analysis struct {
	Filename    string   `json:"filename"`
	RowCount    int      `json:"rows"`
	ColumnCount int      `json:"columns"`
	Warnings    []string `json:"warnings,omitempty"`
	Metrics     Metrics  `json:"metrics"`
	Insights    []string `json:"insights"`
	Charts      []Chart  `json:"charts"`
}
