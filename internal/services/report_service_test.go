package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"callpulse/internal/dataprocessing"
	"callpulse/pkg/contracts/domain"
)

const sampleCSV = `representative,doctor,division,date
John Doe,Dr. Smith,Cardiology,2024-01-15
John Doe,Dr. Jones,Cardiology,2024-01-16
`

func TestReportService_Analyze(t *testing.T) {
	service := NewReportService(nil, nil)

	analysis, err := service.Analyze(context.Background(), "report.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, "report.csv", analysis.Filename)
	assert.Equal(t, 2, analysis.RowCount)
	assert.Equal(t, 4, analysis.ColumnCount)
	assert.Empty(t, analysis.Warnings)

	assert.Equal(t, 2, analysis.Metrics[domain.MetricTotalCalls])
	assert.Equal(t, 1, analysis.Metrics[domain.MetricTotalReps])

	assert.Contains(t, analysis.Insights, "Top performer: John Doe with 2 calls")
	assert.Len(t, analysis.Charts, 5)
}

func TestReportService_Analyze_UnsupportedFormat(t *testing.T) {
	service := NewReportService(nil, nil)

	_, err := service.Analyze(context.Background(), "report.pdf", strings.NewReader("a,b\n1,2\n"))
	assert.ErrorIs(t, err, dataprocessing.ErrUnsupportedFormat)
}

func TestReportService_Analyze_PartialColumns(t *testing.T) {
	service := NewReportService(nil, nil)

	csv := "doctor,notes\nDr. Smith,ok\nDr. Jones,ok\n"
	analysis, err := service.Analyze(context.Background(), "report.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Len(t, analysis.Warnings, 2)
	_, hasReps := analysis.Metrics[domain.MetricTotalReps]
	assert.False(t, hasReps)
	assert.Equal(t, 2, analysis.Metrics[domain.MetricTotalDoctors])
}

func TestReportService_NormalizedTable(t *testing.T) {
	service := NewReportService(nil, nil)

	table, err := service.NormalizedTable(context.Background(), "report.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"representative", "doctor", "division", "date"}, table.Columns)
	assert.Equal(t, 2, table.RowCount())
}

func TestReportService_DescribeTable(t *testing.T) {
	service := NewReportService(nil, nil)

	stats, err := service.DescribeTable(context.Background(), "report.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.Len(t, stats, 4)
	assert.Equal(t, "representative", stats[0].Column)
	assert.Equal(t, "John Doe", stats[0].Top)
	assert.Equal(t, 2, stats[0].Freq)
}

func TestReportService_Template(t *testing.T) {
	service := NewReportService(nil, nil)

	template := service.Template()

	assert.Equal(t, domain.RequiredColumns, template["required_columns"])
	assert.Equal(t, domain.OptionalColumns, template["optional_columns"])

	rows, ok := template["sample_rows"].([]map[string]string)
	require.True(t, ok)
	require.NotEmpty(t, rows)
	assert.Equal(t, "John Doe", rows[0]["representative"])
}
