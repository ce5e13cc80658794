package parser

import "github.com/chichermo/detentions/pkg/nablijven/models"

// Roster columns (1-based).
const (
	colStudentName  = 1
	colStudentGrade = 2
)

// ExtractStudents reads every roster sheet present in the workbook.
// Rows without a name are skipped and missing sheets are ignored.
func ExtractStudents(r *Reader, rosters []RosterSheet) ([]models.Student, error) {
	students := make([]models.Student, 0)

	for _, roster := range rosters {
		if !r.HasSheet(roster.Name) {
			continue
		}

		lastRow, err := r.LastRow(roster.Name)
		if err != nil {
			return nil, &SheetError{SheetName: roster.Name, Err: err}
		}

		for row := 1; row <= lastRow; row++ {
			nameCell, err := r.Cell(roster.Name, colStudentName, row)
			if err != nil {
				return nil, &SheetError{SheetName: roster.Name, Row: row, Err: err}
			}
			name := Text(nameCell)
			if name == "" {
				continue
			}

			gradeCell, err := r.Cell(roster.Name, colStudentGrade, row)
			if err != nil {
				return nil, &SheetError{SheetName: roster.Name, Row: row, Err: err}
			}

			students = append(students, models.Student{
				ID:    models.StudentID(roster.Day, row),
				Name:  name,
				Grade: Text(gradeCell),
				Day:   roster.Day,
			})
		}
	}

	return students, nil
}
