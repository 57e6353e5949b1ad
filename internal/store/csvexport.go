package store

import (
	"fmt"
	"os"

	"github.com/jszwec/csvutil"

	"github.com/pkordes/flightdb/internal/domain"
)

// ExportCSV writes the working set to path as a CSV table. Column names and
// order come from the csv tags on domain.Flight, so the export header
// matches the delimited input header. An empty working set writes the
// header row only.
func (s *FileStore) ExportCSV(path string, flights []domain.Flight) error {
	if flights == nil {
		flights = []domain.Flight{}
	}
	data, err := csvutil.Marshal(flights)
	if err != nil {
		return fmt.Errorf("store.FileStore.ExportCSV: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("store.FileStore.ExportCSV: %w", err)
	}
	return nil
}
