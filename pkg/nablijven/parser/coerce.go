// Package parser reads rosters and detention sessions from a workbook.
package parser

import (
	"math"
	"strconv"
	"strings"
)

// dateLayout is the output format of every date field.
const dateLayout = "2006-01-02"

// Text returns the trimmed display value, or "" for an empty cell.
func Text(c Cell) string {
	if c.IsEmpty() {
		return ""
	}
	return strings.TrimSpace(c.Value)
}

// Number returns the integer value of the cell. Empty, non-numeric and
// zero cells yield fallback. Decimals are truncated toward zero.
func Number(c Cell, fallback int) int {
	if c.IsEmpty() {
		return fallback
	}

	src := c.Raw
	if src == "" {
		src = c.Value
	}
	switch v := parseValue(strings.TrimSpace(src)).(type) {
	case int64:
		if v != 0 {
			return int(v)
		}
	case float64:
		if t := math.Trunc(v); t != 0 && !math.IsInf(t, 0) {
			return int(t)
		}
	}
	return fallback
}

// Flag returns false for an empty cell. A boolean cell yields its own
// value; any other value is true.
func Flag(c Cell) bool {
	switch c.Kind {
	case KindEmpty:
		return false
	case KindBool:
		switch strings.ToUpper(strings.TrimSpace(c.Raw)) {
		case "0", "FALSE":
			return false
		}
		return true
	}
	return c.Value != ""
}

// LVSDate formats a date cell as YYYY-MM-DD and passes any other value
// through unchanged.
func LVSDate(c Cell) string {
	switch c.Kind {
	case KindEmpty:
		return ""
	case KindDate:
		return c.Time.Format(dateLayout)
	}
	return c.Value
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
