package service_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/flightdb/internal/domain"
	"github.com/pkordes/flightdb/internal/service"
	"github.com/pkordes/flightdb/internal/store"
	"github.com/pkordes/flightdb/testutil"
)

// ---- mock reader -----------------------------------------------------------

// mockTableReader is a hand-written test double for store.TableReader.
type mockTableReader struct {
	readFile func(path string) (store.Table, error)
}

func (m *mockTableReader) ReadFile(path string) (store.Table, error) {
	return m.readFile(path)
}

// compile-time check: mockTableReader must satisfy store.TableReader.
var _ store.TableReader = (*mockTableReader)(nil)

// ---- helpers ---------------------------------------------------------------

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newIngestor(reader store.TableReader) *service.Ingestor {
	return service.NewIngestor(reader, service.NewValidator(), discardLogger())
}

// ---- ParseFile -------------------------------------------------------------

func TestIngestor_ParseFile_SplitsAcceptedAndRejected(t *testing.T) {
	invalid := validRaw()
	invalid["origin"] = "ZZZ"

	ing := newIngestor(&mockTableReader{
		readFile: func(_ string) (store.Table, error) {
			return store.Table{
				Header: []string{"flight_id", "origin", "destination", "departure_datetime", "arrival_datetime", "price"},
				Rows: []store.Row{
					{Line: 2, Text: "AB12,LHR,JFK,...", Record: validRaw()},
					{Line: 3, Text: "# seasonal schedule", Comment: true},
					{Line: 4, Text: "AB12,ZZZ,JFK,...", Record: invalid},
				},
			}, nil
		},
	})

	flights, records, err := ing.ParseFile("flights.csv")

	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "AB12", flights[0].FlightID)

	require.Len(t, records, 2)
	assert.Equal(t, 3, records[0].Line)
	assert.Equal(t, "# seasonal schedule", records[0].Content)
	assert.Equal(t, []string{"comment line, ignored for data parsing"}, records[0].Reasons)
	assert.Equal(t, 4, records[1].Line)
	assert.Equal(t, []string{"invalid origin code"}, records[1].Reasons)
}

func TestIngestor_ParseFile_EmptyTable(t *testing.T) {
	ing := newIngestor(&mockTableReader{
		readFile: func(_ string) (store.Table, error) {
			return store.Table{}, nil
		},
	})

	flights, records, err := ing.ParseFile("empty.csv")

	require.NoError(t, err)
	assert.NotNil(t, flights)
	assert.Empty(t, flights)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestIngestor_ParseFile_ReaderError(t *testing.T) {
	readerErr := errors.New("disk on fire")
	ing := newIngestor(&mockTableReader{
		readFile: func(_ string) (store.Table, error) {
			return store.Table{}, readerErr
		},
	})

	_, _, err := ing.ParseFile("flights.csv")

	assert.ErrorIs(t, err, readerErr)
}

func TestIngestor_ParseFile_RealFileBlankLinesSkipped(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "flights.csv", testutil.CSVHeader+"\n"+
		"\n"+
		"AB12,LHR,JFK,01/15/2025 10:00,01/15/2025 18:00,450.0\n"+
		"   \n"+
		"CD34,CDG,DXB,01/16/2025 08:30,01/16/2025 16:45,620.0\n")

	ing := newIngestor(store.NewTableReader(",", "#"))
	flights, records, err := ing.ParseFile(path)

	require.NoError(t, err)
	assert.Len(t, flights, 2)
	assert.Empty(t, records, "blank lines are dropped silently, not logged")
}

// ---- ParseDirectory --------------------------------------------------------

func TestIngestor_ParseDirectory_CombinesFilesInSortedOrder(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "a.csv", testutil.CSV(
		"AB12,LHR,JFK,01/15/2025 10:00,01/15/2025 18:00,450.0",
		"CD34,CDG,DXB,01/16/2025 08:30,01/16/2025 16:45,620.0",
		"XX,ZZZ,JFK,01/15/2025 10:00,01/15/2025 18:00,450.0",
		"EF56,LHR,SYD,02/01/2025 22:00,02/02/2025 20:15,1150.0",
	))
	testutil.WriteFile(t, dir, "b.csv", testutil.CSV(
		"GH78,OSL,HEL,03/01/2025 07:00,03/01/2025 09:10,210.0",
		"IJ90,ARN,RIX,03/02/2025 12:00,03/02/2025 13:20,150.0",
	))
	testutil.WriteFile(t, dir, "notes.txt", "not a schedule")

	ing := newIngestor(store.NewTableReader(",", "#"))
	flights, records, err := ing.ParseDirectory(dir)

	require.NoError(t, err)
	require.Len(t, flights, 5)
	assert.Equal(t, "AB12", flights[0].FlightID, "a.csv flights come first")
	assert.Equal(t, "GH78", flights[3].FlightID, "b.csv flights follow")

	require.Len(t, records, 1)
	assert.Equal(t, "a.csv", records[0].File)
	assert.Equal(t, 4, records[0].Line)
}

func TestIngestor_ParseDirectory_NoCSVFiles(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "readme.md", "nothing to parse")

	ing := newIngestor(store.NewTableReader(",", "#"))
	flights, records, err := ing.ParseDirectory(dir)

	require.NoError(t, err)
	assert.NotNil(t, flights)
	assert.Empty(t, flights)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestIngestor_ParseDirectory_MissingDir(t *testing.T) {
	ing := newIngestor(store.NewTableReader(",", "#"))

	_, _, err := ing.ParseDirectory("/no/such/dir")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIngestor_ParseDirectory_PathIsFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "flights.csv", testutil.CSV())

	ing := newIngestor(store.NewTableReader(",", "#"))

	_, _, err := ing.ParseDirectory(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
