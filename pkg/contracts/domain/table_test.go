package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Representative", "representative"},
		{"  DOCTOR  ", "doctor"},
		{"Call_Type", "call_type"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHeader(tt.in))
		})
	}
}

func TestTable_Column(t *testing.T) {
	table := &Table{
		Columns: []string{"representative", "division"},
		Rows: [][]string{
			{"John Doe", "Cardiology"},
			{"Jane Smith", "Oncology"},
		},
	}

	assert.Equal(t, 2, table.RowCount())
	assert.True(t, table.HasColumn("division"))
	assert.False(t, table.HasColumn("doctor"))
	assert.Equal(t, []string{"Cardiology", "Oncology"}, table.Column("division"))
	assert.Nil(t, table.Column("doctor"))
}

func TestTable_ColumnIndex(t *testing.T) {
	table := &Table{Columns: []string{"a", "b"}}

	assert.Equal(t, 0, table.ColumnIndex("a"))
	assert.Equal(t, 1, table.ColumnIndex("b"))
	assert.Equal(t, -1, table.ColumnIndex("c"))
}
