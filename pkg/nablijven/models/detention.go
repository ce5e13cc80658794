package models

import "fmt"

// Detention represents one student entry on a detention session sheet.
type Detention struct {
	// ID is derived from the sheet name and the 1-based source row.
	ID string `json:"id"`
	// Number is the sequence number within the session.
	Number int `json:"number"`
	// Date is the session date (YYYY-MM-DD).
	Date string `json:"date"`
	// DayOfWeek is resolved from the sheet name prefix.
	DayOfWeek Day `json:"dayOfWeek"`
	// Student is the trimmed student label (never empty).
	Student string `json:"student"`
	Teacher string `json:"teacher"`
	Reason  string `json:"reason"`
	Task    string `json:"task"`
	// LVSDate mirrors the student-tracking-system date: YYYY-MM-DD for
	// date cells, the cell text otherwise.
	LVSDate          string `json:"lvsDate"`
	ShouldPrint      bool   `json:"shouldPrint"`
	CanUseChromebook bool   `json:"canUseChromebook"`
	ExtraNotes       string `json:"extraNotes"`
}

// DetentionID builds the synthetic id for a session row.
func DetentionID(sheetName string, row int) string {
	return fmt.Sprintf("detention-%s-%d", sheetName, row)
}
