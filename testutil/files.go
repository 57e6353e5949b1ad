// Package testutil provides shared helpers for file-based tests.
// Every helper fails the calling test on I/O errors, so tests read as
// straight-line fixture setup.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CSVHeader is the canonical six-column header used by fixture files.
const CSVHeader = "flight_id,origin,destination,departure_datetime,arrival_datetime,price"

// CSV joins the canonical header and the given rows into one file body.
func CSV(rows ...string) string {
	if len(rows) == 0 {
		return CSVHeader + "\n"
	}
	return CSVHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("testutil.WriteFile: %v", err)
	}
	return path
}

// ReadFile returns the content of the file at path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("testutil.ReadFile: %v", err)
	}
	return string(data)
}
