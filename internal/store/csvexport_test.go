package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/flightdb/internal/store"
	"github.com/pkordes/flightdb/testutil"
)

func TestFileStore_ExportCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flights.csv")
	s := store.NewFileStore()

	err := s.ExportCSV(path, sampleFlights())

	require.NoError(t, err)
	assert.Equal(t,
		testutil.CSVHeader+"\n"+
			"AB12,LHR,JFK,01/15/2025 10:00,01/15/2025 18:00,450\n"+
			"CD34,CDG,DXB,01/16/2025 08:30,01/16/2025 16:45,620.5\n",
		testutil.ReadFile(t, path))
}

func TestFileStore_ExportCSV_EmptyWorkingSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flights.csv")
	s := store.NewFileStore()

	err := s.ExportCSV(path, nil)

	require.NoError(t, err)
	assert.Equal(t, testutil.CSVHeader+"\n", testutil.ReadFile(t, path),
		"an empty set still writes the header row")
}
