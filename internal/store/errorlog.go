package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkordes/flightdb/internal/domain"
)

// SaveErrors writes the error log to path, one line per record in slice
// order:
//
//	File: <name>, Line <n>: <original row text> → <reason1>, <reason2>
//
// The "File: <name>, " prefix appears only on records that carry a source
// filename (directory parses).
func (s *FileStore) SaveErrors(path string, records []domain.ErrorRecord) error {
	var b strings.Builder
	for _, rec := range records {
		if rec.File != "" {
			fmt.Fprintf(&b, "File: %s, ", rec.File)
		}
		fmt.Fprintf(&b, "Line %d: %s → %s\n", rec.Line, rec.Content, rec.Reason())
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("store.FileStore.SaveErrors: %w", err)
	}
	return nil
}
