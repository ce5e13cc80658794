package parser

// LastRow returns the 1-based index of the last row holding a value, or 0
// when the sheet is empty.
func (r *Reader) LastRow(sheet string) (int, error) {
	rows, err := r.f.GetRows(sheet)
	if err != nil {
		return 0, err
	}

	_, maxRow, _, _ := findDataBounds(rows)
	return maxRow + 1, nil
}

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when no cell holds a value.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
