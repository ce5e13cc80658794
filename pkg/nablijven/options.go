// Package nablijven imports student rosters and detention sessions from the
// detentions workbook into JSON datasets.
package nablijven

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chichermo/detentions/pkg/nablijven/parser"
)

const (
	// DefaultInputPath is the workbook read when no input is configured.
	DefaultInputPath = "2025-2026 Nablijven.xlsx"
	// DefaultOutputDir receives the JSON datasets when none is configured.
	DefaultOutputDir = "data"
)

var validate = validator.New()

// Options configures an import pass.
type Options struct {
	// InputPath is the workbook to read.
	InputPath string `validate:"required"`
	// OutputDir receives the JSON file. It is created when absent.
	OutputDir string `validate:"required"`
	// AcademicYear is the calendar year in which the school year starts.
	// Sessions from September to December fall in this year, January to
	// August in the next.
	AcademicYear int `validate:"min=1900,max=9998"`
	// Logger receives progress logs. If nil, logging is disabled.
	Logger *zap.Logger `validate:"-"`
}

// DefaultOptions returns default import options.
func DefaultOptions() Options {
	return Options{
		InputPath:    DefaultInputPath,
		OutputDir:    DefaultOutputDir,
		AcademicYear: parser.DefaultAcademicYear.StartYear,
	}
}

// Validate checks that the options are complete.
func (o Options) Validate() error {
	return validate.Struct(o)
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) academicYear() parser.AcademicYear {
	return parser.AcademicYear{StartYear: o.AcademicYear}
}
