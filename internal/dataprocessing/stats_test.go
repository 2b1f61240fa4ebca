package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"callpulse/pkg/contracts/domain"
)

func TestDescribeColumns_ColumnOrder(t *testing.T) {
	stats := DescribeColumns(sampleTable())

	require.Len(t, stats, 4)
	assert.Equal(t, "representative", stats[0].Column)
	assert.Equal(t, "doctor", stats[1].Column)
	assert.Equal(t, "division", stats[2].Column)
	assert.Equal(t, "date", stats[3].Column)
}

func TestDescribeColumn_Categorical(t *testing.T) {
	cs := describeColumn("division", []string{"Cardiology", "Oncology", "Cardiology", "", "  "})

	assert.Equal(t, 3, cs.Count)
	assert.Equal(t, 2, cs.Unique)
	assert.Equal(t, "Cardiology", cs.Top)
	assert.Equal(t, 2, cs.Freq)
	assert.Nil(t, cs.Mean)
	assert.Nil(t, cs.Std)
	assert.Nil(t, cs.Min)
	assert.Nil(t, cs.Max)
}

func TestDescribeColumn_Numeric(t *testing.T) {
	cs := describeColumn("samples", []string{"1", "2", "3", "4"})

	assert.Equal(t, 4, cs.Count)
	require.NotNil(t, cs.Mean)
	assert.InDelta(t, 2.5, *cs.Mean, 1e-9)
	require.NotNil(t, cs.Std)
	assert.InDelta(t, 1.2909944487, *cs.Std, 1e-9)
	require.NotNil(t, cs.Min)
	assert.Equal(t, 1.0, *cs.Min)
	require.NotNil(t, cs.Max)
	assert.Equal(t, 4.0, *cs.Max)
}

func TestDescribeColumn_ThousandsSeparators(t *testing.T) {
	cs := describeColumn("revenue", []string{"1,000", "2,000"})

	require.NotNil(t, cs.Mean)
	assert.Equal(t, 1500.0, *cs.Mean)
}

func TestDescribeColumn_MixedValuesNotNumeric(t *testing.T) {
	cs := describeColumn("notes", []string{"12", "pending"})

	assert.Equal(t, 2, cs.Count)
	assert.Nil(t, cs.Mean)
}

func TestDescribeColumn_SingleValueZeroStd(t *testing.T) {
	cs := describeColumn("samples", []string{"7"})

	require.NotNil(t, cs.Std)
	assert.Equal(t, 0.0, *cs.Std)
	assert.Equal(t, 7.0, *cs.Mean)
	assert.Equal(t, 7.0, *cs.Min)
	assert.Equal(t, 7.0, *cs.Max)
}

func TestDescribeColumn_AllBlank(t *testing.T) {
	cs := describeColumn("empty", []string{"", "  "})

	assert.Equal(t, 0, cs.Count)
	assert.Equal(t, 0, cs.Unique)
	assert.Equal(t, "", cs.Top)
	assert.Equal(t, 0, cs.Freq)
	assert.Nil(t, cs.Mean)
}

func TestDescribeColumns_EmptyTable(t *testing.T) {
	table := &domain.Table{Columns: []string{"a"}, Rows: nil}

	stats := DescribeColumns(table)
	require.Len(t, stats, 1)
	assert.Equal(t, 0, stats[0].Count)
}
