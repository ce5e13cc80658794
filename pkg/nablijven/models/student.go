package models

import "fmt"

// Student represents one roster entry for a session day.
type Student struct {
	// ID is derived from the day and the 1-based source row.
	ID string `json:"id"`
	// Name is the trimmed student name (never empty).
	Name string `json:"name"`
	// Grade is the trimmed class label, or empty when absent.
	Grade string `json:"grade"`
	// Day is the session day of the roster sheet.
	Day Day `json:"day"`
}

// StudentID builds the synthetic id for a roster row.
// It is unique per (day, row) pair only.
func StudentID(day Day, row int) string {
	return fmt.Sprintf("student-%s-%d", day, row)
}
