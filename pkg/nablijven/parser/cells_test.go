package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReaderCell(t *testing.T) {
	lvs := time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC)
	f := reopen(t, buildWorkbook(t, sheetFixture{
		name: "Sheet1",
		rows: [][]interface{}{
			{"Header1", 100, 200.5, true, false, lvs, "05/09/2025"},
		},
	}))
	r := NewReader(f)

	tests := []struct {
		col   int
		kind  CellKind
		value string
	}{
		{1, KindText, "Header1"},
		{2, KindNumber, "100"},
		{3, KindNumber, "200.5"},
		{4, KindBool, ""},
		{5, KindBool, ""},
		{6, KindDate, ""},
		{7, KindText, "05/09/2025"},
		{8, KindEmpty, ""},
	}

	for _, tt := range tests {
		c, err := r.Cell("Sheet1", tt.col, 1)
		require.NoError(t, err)
		assert.Equal(t, tt.kind, c.Kind, "column %d", tt.col)
		if tt.value != "" {
			assert.Equal(t, tt.value, c.Value, "column %d", tt.col)
		}
	}

	c, err := r.Cell("Sheet1", 6, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-05", c.Time.Format("2006-01-02"))
}

func TestReaderCellCustomDateFormat(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	format := "dd/mm/yyyy"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Sheet1", "A1", 45908))
	require.NoError(t, f.SetCellStyle("Sheet1", "A1", "A1", style))

	c, err := NewReader(f).Cell("Sheet1", 1, 1)
	require.NoError(t, err)
	require.Equal(t, KindDate, c.Kind)
	assert.Equal(t, "2025-09-08", c.Time.Format("2006-01-02"))
}

func TestReaderCellMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := NewReader(f).Cell("Nope", 1, 1)
	assert.Error(t, err)
}

func TestReaderLastRow(t *testing.T) {
	f := buildWorkbook(t,
		sheetFixture{name: "Filled", rows: [][]interface{}{{"a"}, {nil}, {nil, "b"}}},
		sheetFixture{name: "Empty"},
	)
	r := NewReader(f)

	last, err := r.LastRow("Filled")
	require.NoError(t, err)
	assert.Equal(t, 3, last)

	last, err = r.LastRow("Empty")
	require.NoError(t, err)
	assert.Equal(t, 0, last)

	assert.True(t, r.HasSheet("Empty"))
	assert.False(t, r.HasSheet("empty"))
	assert.Equal(t, []string{"Filled", "Empty"}, r.Sheets())
}

func TestIsDateNumFmt(t *testing.T) {
	custom := func(s string) *string { return &s }

	tests := []struct {
		id       int
		custom   *string
		expected bool
	}{
		{0, nil, false},
		{1, nil, false},
		{14, nil, true},
		{22, nil, true},
		{49, nil, false},
		{0, custom("dd/mm/yyyy"), true},
		{0, custom("[$-413]d mmm yyyy"), true},
		{0, custom("h:mm"), true},
		{0, custom("General"), false},
		{0, custom("#,##0.00"), false},
		{0, custom(`0 "days"`), false},
		{0, custom(`[Red]0.00`), false},
		{0, custom(`0\d`), false},
	}

	for _, tt := range tests {
		result := isDateNumFmt(tt.id, tt.custom)
		if tt.custom != nil {
			assert.Equal(t, tt.expected, result, "custom %q", *tt.custom)
		} else {
			assert.Equal(t, tt.expected, result, "id %d", tt.id)
		}
	}
}

func TestFindDataBounds(t *testing.T) {
	minRow, maxRow, minCol, maxCol := findDataBounds([][]string{{"", ""}, {"", "x"}, {"y"}, {"", ""}})
	assert.Equal(t, []int{1, 2, 0, 1}, []int{minRow, maxRow, minCol, maxCol})

	minRow, maxRow, _, _ = findDataBounds(nil)
	assert.Equal(t, -1, minRow)
	assert.Equal(t, -1, maxRow)
}
