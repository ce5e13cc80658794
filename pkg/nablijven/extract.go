package nablijven

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/chichermo/detentions/pkg/nablijven/models"
	"github.com/chichermo/detentions/pkg/nablijven/output"
	"github.com/chichermo/detentions/pkg/nablijven/parser"
)

// Output file names inside the output directory.
const (
	StudentsFile   = "students.json"
	DetentionsFile = "detentions.json"
)

// Result summarizes one import pass.
type Result struct {
	// Count is the number of records written.
	Count int
	// Path is the written JSON file.
	Path string
	// DefaultDated lists session sheets dated with the default date.
	// Always empty for the student pass.
	DefaultDated []string
}

// ExtractStudents reads the student rosters of the workbook at path.
func ExtractStudents(path string) ([]models.Student, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	students, err := parser.ExtractStudents(parser.NewReader(f), parser.DefaultRosters)
	if err != nil {
		return nil, wrapSheetError("students", err)
	}
	return students, nil
}

// ExtractDetentions reads the detention session sheets of the workbook at
// path, dating sessions within the given academic year.
func ExtractDetentions(path string, year parser.AcademicYear) (*parser.SessionSheets, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sessions, err := parser.ExtractDetentions(parser.NewReader(f), year)
	if err != nil {
		return nil, wrapSheetError("detentions", err)
	}
	return sessions, nil
}

// ImportStudents extracts the student rosters and writes them to
// students.json in the output directory.
func ImportStudents(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	log := opts.logger().With(zap.String("input", opts.InputPath))

	students, err := ExtractStudents(opts.InputPath)
	if err != nil {
		return nil, err
	}

	path, err := output.WriteFile(opts.OutputDir, StudentsFile, students)
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", StudentsFile, err)
	}

	log.Info("students imported", zap.Int("count", len(students)), zap.String("path", path))
	return &Result{Count: len(students), Path: path}, nil
}

// ImportDetentions extracts the detention sessions and writes them to
// detentions.json in the output directory.
func ImportDetentions(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	log := opts.logger().With(zap.String("input", opts.InputPath))
	year := opts.academicYear()

	sessions, err := ExtractDetentions(opts.InputPath, year)
	if err != nil {
		return nil, err
	}

	for _, sheet := range sessions.Sheets {
		log.Debug("session sheet read", zap.String("sheet", sheet))
	}
	defaultDate := year.Default().Format("2006-01-02")
	for _, sheet := range sessions.DefaultDated {
		log.Warn("no date in sheet name, using default",
			zap.String("sheet", sheet), zap.String("date", defaultDate))
	}

	path, err := output.WriteFile(opts.OutputDir, DetentionsFile, sessions.Detentions)
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", DetentionsFile, err)
	}

	log.Info("detentions imported",
		zap.Int("count", len(sessions.Detentions)),
		zap.Int("sheets", len(sessions.Sheets)),
		zap.String("path", path))
	return &Result{
		Count:        len(sessions.Detentions),
		Path:         path,
		DefaultDated: sessions.DefaultDated,
	}, nil
}

// openWorkbook opens the workbook at path. A missing file yields
// ErrFileNotFound and an unreadable one ErrInvalidFormat.
func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return f, nil
}
