// Package output serializes import results to JSON files.
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// ToJSON encodes v as JSON. Non-ASCII characters and HTML-sensitive
// characters are written literally. With pretty set the output is
// indented by two spaces.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteFile writes v as pretty JSON to name inside dir, creating dir when
// needed and replacing any existing file. It returns the written path.
func WriteFile(dir, name string, v interface{}) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data, err := ToJSON(v, true)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
