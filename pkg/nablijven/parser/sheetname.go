package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chichermo/detentions/pkg/nablijven/models"
)

const (
	// RosterPrefix starts the name of every student roster sheet.
	RosterPrefix = "Leerlingen"
	// TemplatePrefix starts the name of template sheets.
	TemplatePrefix = "Sjabloon"
)

// RosterSheet maps a roster sheet to the day its students attend.
type RosterSheet struct {
	Name string
	Day  models.Day
}

// DefaultRosters are the roster sheets read by ExtractStudents.
var DefaultRosters = []RosterSheet{
	{Name: "Leerlingen MAANDAG", Day: models.Maandag},
	{Name: "Leerlingen DINSDAG", Day: models.Dinsdag},
	{Name: "Leerlingen DONDERDAG", Day: models.Donderdag},
}

type dayPrefix struct {
	prefix string
	day    models.Day
}

// dayPrefixes are matched in order; the first match wins.
var dayPrefixes = []dayPrefix{
	{"MA", models.Maandag},
	{"Di", models.Dinsdag},
	{"DI", models.Dinsdag},
	{"Do", models.Donderdag},
	{"DO", models.Donderdag},
}

// sheetDateRe matches "<day> <month>" tokens such as "8 sept" or "12 Okt".
var sheetDateRe = regexp.MustCompile(`(?i)(\d{1,2})\s+(sept|okt|nov|dec|jan|feb|maart|apr|mei|jun|jul|aug)`)

var dutchMonths = map[string]time.Month{
	"sept":  time.September,
	"okt":   time.October,
	"nov":   time.November,
	"dec":   time.December,
	"jan":   time.January,
	"feb":   time.February,
	"maart": time.March,
	"apr":   time.April,
	"mei":   time.May,
	"jun":   time.June,
	"jul":   time.July,
	"aug":   time.August,
}

// AcademicYear resolves the calendar year of a session from its month.
// A school year starts in September: September to December fall in
// StartYear, January to August in StartYear+1. Nothing detects the school
// year from the workbook, so StartYear must be moved on for each new year.
type AcademicYear struct {
	StartYear int
}

// DefaultAcademicYear is the 2025-2026 school year.
var DefaultAcademicYear = AcademicYear{StartYear: 2025}

// YearOf returns the calendar year in which month falls.
func (a AcademicYear) YearOf(month time.Month) int {
	if month >= time.September {
		return a.StartYear
	}
	return a.StartYear + 1
}

// Default is the date used for sessions whose sheet name holds no date:
// the first of September of the start year.
func (a AcademicYear) Default() time.Time {
	return time.Date(a.StartYear, time.September, 1, 0, 0, 0, 0, time.UTC)
}

// IsIgnoredSheet reports whether a sheet is a roster or a template and so
// never holds detention sessions.
func IsIgnoredSheet(name string) bool {
	return strings.HasPrefix(name, RosterPrefix) || strings.HasPrefix(name, TemplatePrefix)
}

// ClassifyDay resolves the session day from the sheet name prefix.
func ClassifyDay(name string) (models.Day, bool) {
	for _, p := range dayPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.day, true
		}
	}
	return "", false
}

// ParseSheetDate extracts the session date from the first date token in
// the sheet name. It reports false when there is no token or the token is
// not a valid calendar date.
func ParseSheetDate(name string, year AcademicYear) (time.Time, bool) {
	m := sheetDateRe.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	month, ok := dutchMonths[strings.ToLower(m[2])]
	if !ok {
		month = time.September
	}

	y := year.YearOf(month)
	t := time.Date(y, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow, so "31 feb" would roll into March.
	if t.Year() != y || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// SessionDate returns the formatted session date of a sheet and whether
// the default date was used.
func SessionDate(name string, year AcademicYear) (string, bool) {
	if t, ok := ParseSheetDate(name, year); ok {
		return t.Format(dateLayout), false
	}
	return year.Default().Format(dateLayout), true
}
