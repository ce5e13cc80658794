package parser

import "github.com/chichermo/detentions/pkg/nablijven/models"

// Session sheet columns (1-based).
const (
	colNumber = iota + 1
	colStudent
	colTeacher
	colReason
	colTask
	colLVSDate
	colShouldPrint
	colChromebook
	colExtraNotes
)

// headerRows are the rows above the first session entry.
const headerRows = 2

// SessionSheets holds the records read from all session sheets.
type SessionSheets struct {
	Detentions []models.Detention
	// Sheets lists the names of the session sheets that were read.
	Sheets []string
	// DefaultDated lists the session sheets whose name held no valid date.
	DefaultDated []string
}

// ExtractDetentions reads every session sheet in workbook order. Roster
// and template sheets, and sheets without a day prefix, are skipped.
func ExtractDetentions(r *Reader, year AcademicYear) (*SessionSheets, error) {
	result := &SessionSheets{Detentions: make([]models.Detention, 0)}

	for _, sheet := range r.Sheets() {
		if IsIgnoredSheet(sheet) {
			continue
		}
		day, ok := ClassifyDay(sheet)
		if !ok {
			continue
		}

		date, defaulted := SessionDate(sheet, year)
		if defaulted {
			result.DefaultDated = append(result.DefaultDated, sheet)
		}
		result.Sheets = append(result.Sheets, sheet)

		lastRow, err := r.LastRow(sheet)
		if err != nil {
			return nil, &SheetError{SheetName: sheet, Err: err}
		}

		for row := headerRows + 1; row <= lastRow; row++ {
			d, ok, err := readDetention(r, sheet, row)
			if err != nil {
				return nil, &SheetError{SheetName: sheet, Row: row, Err: err}
			}
			if !ok {
				continue
			}
			d.Date = date
			d.DayOfWeek = day
			result.Detentions = append(result.Detentions, d)
		}
	}

	return result, nil
}

// readDetention reads one session row. It reports false when the row has
// no student.
func readDetention(r *Reader, sheet string, row int) (models.Detention, bool, error) {
	var cells [colExtraNotes + 1]Cell
	for col := colNumber; col <= colExtraNotes; col++ {
		c, err := r.Cell(sheet, col, row)
		if err != nil {
			return models.Detention{}, false, err
		}
		cells[col] = c
	}

	student := Text(cells[colStudent])
	if student == "" {
		return models.Detention{}, false, nil
	}

	return models.Detention{
		ID:               models.DetentionID(sheet, row),
		Number:           Number(cells[colNumber], row-headerRows),
		Student:          student,
		Teacher:          Text(cells[colTeacher]),
		Reason:           Text(cells[colReason]),
		Task:             Text(cells[colTask]),
		LVSDate:          LVSDate(cells[colLVSDate]),
		ShouldPrint:      Flag(cells[colShouldPrint]),
		CanUseChromebook: Flag(cells[colChromebook]),
		ExtraNotes:       Text(cells[colExtraNotes]),
	}, true, nil
}
