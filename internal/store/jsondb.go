package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pkordes/flightdb/internal/domain"
)

// FileStore persists the working set and its derived artifacts as files on
// the local filesystem: the JSON database, query results, the error log,
// and the CSV export. Methods take explicit paths; the store holds no state.
type FileStore struct{}

// NewFileStore constructs a FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// SaveFlights writes the accepted working set to path in the database JSON
// shape: an array of flight objects, two-space indented. An empty working
// set writes [].
func (s *FileStore) SaveFlights(path string, flights []domain.Flight) error {
	if flights == nil {
		flights = []domain.Flight{}
	}
	if err := writeJSON(path, flights); err != nil {
		return fmt.Errorf("store.FileStore.SaveFlights: %w", err)
	}
	return nil
}

// LoadFlights reads an existing JSON database from path.
// The document must be an array of flight objects; anything else returns an
// error wrapping domain.ErrFormat. A missing file wraps domain.ErrNotFound.
// Always returns a non-nil slice on success.
func (s *FileStore) LoadFlights(path string) ([]domain.Flight, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("store.FileStore.LoadFlights: %w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("store.FileStore.LoadFlights: %w", err)
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, fmt.Errorf("store.FileStore.LoadFlights: %w: must contain an array of flight objects: %v", domain.ErrFormat, err)
	}
	if flights == nil {
		// A "null" document decodes without error but is not an array.
		return nil, fmt.Errorf("store.FileStore.LoadFlights: %w: must contain an array of flight objects", domain.ErrFormat)
	}
	return flights, nil
}

// LoadQueries reads a query file from path. The document is either a single
// query object, promoted to a one-element slice, or an array of query
// objects. Any other shape, including a non-object array element, returns an
// error wrapping domain.ErrFormat.
func (s *FileStore) LoadQueries(path string) ([]domain.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("store.FileStore.LoadQueries: %w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("store.FileStore.LoadQueries: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store.FileStore.LoadQueries: %w: %v", domain.ErrFormat, err)
	}

	switch v := doc.(type) {
	case map[string]any:
		return []domain.Query{domain.Query(v)}, nil
	case []any:
		queries := make([]domain.Query, 0, len(v))
		for i, el := range v {
			obj, ok := el.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("store.FileStore.LoadQueries: %w: element %d is not a query object", domain.ErrFormat, i)
			}
			queries = append(queries, domain.Query(obj))
		}
		return queries, nil
	default:
		return nil, fmt.Errorf("store.FileStore.LoadQueries: %w: must contain a query object or an array of query objects", domain.ErrFormat)
	}
}

// SaveResults writes query results to path in the response JSON shape: an
// array of {query, matches} objects in query order.
func (s *FileStore) SaveResults(path string, results []domain.QueryResult) error {
	if results == nil {
		results = []domain.QueryResult{}
	}
	if err := writeJSON(path, results); err != nil {
		return fmt.Errorf("store.FileStore.SaveResults: %w", err)
	}
	return nil
}

// writeJSON encodes v two-space indented, without HTML escaping, and writes
// it to path. Encode appends the trailing newline.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
