package parser

import "fmt"

// SheetError reports a failure to read a sheet or one of its rows.
type SheetError struct {
	SheetName string
	// Row is the 1-based row being read, or 0 for the sheet as a whole.
	Row int
	Err error
}

func (e *SheetError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("sheet %q row %d: %v", e.SheetName, e.Row, e.Err)
	}
	return fmt.Sprintf("sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
