package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/chichermo/detentions/pkg/nablijven"
)

func writeWorkbook(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName(f.GetSheetName(0), "Leerlingen DINSDAG"))
	require.NoError(t, f.SetSheetRow("Leerlingen DINSDAG", "A1", &[]interface{}{"An Claes", "3B"}))

	_, err := f.NewSheet("Di 9 sept")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Di 9 sept", "A3", &[]interface{}{1, "An Claes - 3B"}))

	path := filepath.Join(dir, "Nablijven.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRunImport(t *testing.T) {
	dir := t.TempDir()
	opts := nablijven.DefaultOptions()
	opts.InputPath = writeWorkbook(t, dir)
	opts.OutputDir = filepath.Join(dir, "data")

	var out bytes.Buffer
	require.NoError(t, runImport(&out, opts))

	want := "Importing data from workbook...\n" +
		separator + "\n" +
		"[OK] Imported 1 students to " + filepath.Join(opts.OutputDir, "students.json") + "\n" +
		"[OK] Imported 1 detentions to " + filepath.Join(opts.OutputDir, "detentions.json") + "\n" +
		"[INFO] Note: review the imported dates, especially sessions whose date could not be parsed from the sheet name\n" +
		separator + "\n" +
		"[OK] Import complete\n"
	assert.Equal(t, want, out.String())
}

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	for _, key := range []string{"INPUT_FILE", "OUTPUT_DIR", "ACADEMIC_YEAR", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
	writeWorkbook(t, dir)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--input", "Nablijven.xlsx", "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "data", "detentions.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"date": "2025-09-09"`)
	assert.Contains(t, out.String(), "[OK] Import complete")
}

func TestRootCmdMissingWorkbook(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	for _, key := range []string{"INPUT_FILE", "OUTPUT_DIR", "ACADEMIC_YEAR", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--log-level", "error"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, nablijven.ErrFileNotFound)
	assert.NotContains(t, out.String(), "[OK] Imported")
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra.xlsx"})

	assert.Error(t, cmd.Execute())
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
