package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// sheetFixture describes one worksheet; nil values leave the cell absent.
type sheetFixture struct {
	name string
	rows [][]interface{}
}

// buildWorkbook creates an in-memory workbook with the sheets in order.
// time.Time values get the built-in short date format.
func buildWorkbook(t *testing.T, sheets ...sheetFixture) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)

	for i, s := range sheets {
		if i == 0 {
			if first := f.GetSheetName(0); first != s.name {
				require.NoError(t, f.SetSheetName(first, s.name))
			}
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}

		for r, row := range s.rows {
			for c, v := range row {
				if v == nil {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(s.name, cell, v))
				if _, ok := v.(time.Time); ok {
					require.NoError(t, f.SetCellStyle(s.name, cell, cell, dateStyle))
				}
			}
		}
	}

	return f
}

// reopen saves f and opens the saved copy, so tests read what Excel would.
func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, f.SaveAs(path))

	saved, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = saved.Close() })
	return saved
}
