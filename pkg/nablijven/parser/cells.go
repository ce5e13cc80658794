package parser

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// CellKind classifies a cell by the type of value it holds.
type CellKind int

const (
	// KindEmpty is an absent cell or one without a value.
	KindEmpty CellKind = iota
	// KindText is a string cell, or any value that is not one of the kinds below.
	KindText
	// KindNumber is a numeric cell without a date number format.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
	// KindDate is a numeric cell with a date number format, or an ISO date cell.
	KindDate
)

// Cell is a single worksheet value as read from the workbook.
type Cell struct {
	Kind CellKind
	// Value is the value as displayed by Excel.
	Value string
	// Raw is the unformatted stored value.
	Raw string
	// Time is the decoded value of a KindDate cell.
	Time time.Time
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// Reader reads typed cell values from an open workbook.
type Reader struct {
	f          *excelize.File
	date1904   bool
	dateStyles map[int]bool
}

// NewReader creates a Reader over f. The caller keeps ownership of f.
func NewReader(f *excelize.File) *Reader {
	r := &Reader{
		f:          f,
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r
}

// Sheets returns the sheet names in workbook order.
func (r *Reader) Sheets() []string {
	return r.f.GetSheetList()
}

// HasSheet reports whether the workbook contains a sheet with the given name.
func (r *Reader) HasSheet(name string) bool {
	return slices.Contains(r.f.GetSheetList(), name)
}

// Cell reads the cell at the 1-based column and row.
// Absent cells are returned as an empty Cell without error.
func (r *Reader) Cell(sheet string, col, row int) (Cell, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Cell{}, err
	}

	value, err := r.f.GetCellValue(sheet, name)
	if err != nil {
		return Cell{}, err
	}
	raw, err := r.f.GetCellValue(sheet, name, excelize.Options{RawCellValue: true})
	if err != nil {
		return Cell{}, err
	}
	if value == "" && raw == "" {
		return Cell{}, nil
	}

	typ, err := r.f.GetCellType(sheet, name)
	if err != nil {
		return Cell{}, err
	}

	c := Cell{Kind: KindText, Value: value, Raw: raw}
	switch typ {
	case excelize.CellTypeBool:
		c.Kind = KindBool
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			c.Kind = KindDate
			c.Time = t
		}
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		serial, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			break
		}
		c.Kind = KindNumber
		if r.isDateStyle(sheet, name) {
			if t, err := excelize.ExcelDateToTime(serial, r.date1904); err == nil {
				c.Kind = KindDate
				c.Time = t
			}
		}
	}

	return c, nil
}

// isDateStyle reports whether the cell's number format renders a date.
func (r *Reader) isDateStyle(sheet, cell string) bool {
	styleID, err := r.f.GetCellStyle(sheet, cell)
	if err != nil {
		return false
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate
	}

	style, err := r.f.GetStyle(styleID)
	isDate := err == nil && style != nil && isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	r.dateStyles[styleID] = isDate
	return isDate
}

// isDateNumFmt reports whether a built-in number format id or a custom
// format code displays a date or time.
func isDateNumFmt(id int, custom *string) bool {
	if custom != nil {
		return isDateFormatCode(*custom)
	}
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58,
		id >= 71 && id <= 81:
		return true
	}
	return false
}

// isDateFormatCode scans a custom format code for date or time tokens,
// ignoring quoted literals, escaped characters and bracketed sections.
func isDateFormatCode(code string) bool {
	code = strings.ToLower(code)
	if code == "general" {
		return false
	}

	inQuote, inBracket, escaped := false, false, false
	for _, ch := range code {
		switch {
		case escaped:
			escaped = false
		case inQuote:
			inQuote = ch != '"'
		case inBracket:
			inBracket = ch != ']'
		case ch == '\\':
			escaped = true
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case strings.ContainsRune("dmyhs", ch):
			return true
		}
	}
	return false
}

var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
