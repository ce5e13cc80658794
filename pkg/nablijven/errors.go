package nablijven

import (
	"errors"
	"fmt"

	"github.com/chichermo/detentions/pkg/nablijven/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Component string // "students", "detentions"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// wrapSheetError attaches the pass name to a sheet read failure.
func wrapSheetError(component string, err error) error {
	var se *parser.SheetError
	if errors.As(err, &se) {
		return NewExtractionError(se.SheetName, component, err)
	}
	return err
}
