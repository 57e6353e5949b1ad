// Package store contains all file access logic for the flightdb tool:
// delimited input tables, the JSON database, query files, the error log,
// and CSV export. No business logic lives here — only I/O and type mapping.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pkordes/flightdb/internal/domain"
)

// Row is one classified line of a delimited input file.
// Blank lines never appear as rows; the reader drops them silently.
type Row struct {
	// Line is the 1-based line number in the source file (header = 1).
	Line int

	// Text is the original line content, trimmed.
	Text string

	// Comment is true when the line starts with the comment marker.
	// Comment rows carry no Record.
	Comment bool

	// Record holds the trimmed cells zipped against the header names.
	// Nil for comment rows.
	Record domain.RawRecord
}

// Table is the line-oriented view of one delimited input file: the trimmed
// header names (empty names mark columns that are dropped from every row)
// plus every comment and data row in input order.
type Table struct {
	Header []string
	Rows   []Row
}

// TableReader reads one delimited text file into a Table.
// The service layer depends on this interface, not the file-backed
// implementation, which allows the ingestor to be unit-tested with a mock.
type TableReader interface {
	// ReadFile parses the file at path. Returns domain.ErrNotFound if the
	// file does not exist; row content never causes an error.
	ReadFile(path string) (Table, error)
}

// fileTableReader is the filesystem implementation of TableReader.
type fileTableReader struct {
	delimiter string
	comment   string
}

// NewTableReader constructs a TableReader splitting rows on delimiter and
// treating rows that start with comment as comment rows. Both come from
// config and are single characters.
func NewTableReader(delimiter, comment string) TableReader {
	return &fileTableReader{delimiter: delimiter, comment: comment}
}

// ReadFile reads path line by line. Line 1 is the header; each later line is
// classified as blank (dropped), comment, or data. Data cells are trimmed
// and zipped against the header: missing trailing cells become empty
// strings, cells beyond the header width are dropped.
func (r *fileTableReader) ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, fmt.Errorf("store.TableReader.ReadFile: %w: %s", domain.ErrNotFound, path)
		}
		return Table{}, fmt.Errorf("store.TableReader.ReadFile: %w", err)
	}
	defer f.Close()

	var table Table
	line := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())

		if line == 1 {
			table.Header = splitTrim(text, r.delimiter)
			continue
		}
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, r.comment) {
			table.Rows = append(table.Rows, Row{Line: line, Text: text, Comment: true})
			continue
		}
		table.Rows = append(table.Rows, Row{
			Line:   line,
			Text:   text,
			Record: zipRecord(table.Header, splitTrim(text, r.delimiter)),
		})
	}
	if err := sc.Err(); err != nil {
		return Table{}, fmt.Errorf("store.TableReader.ReadFile: %w", err)
	}

	return table, nil
}

// splitTrim splits s on the delimiter and trims each piece.
func splitTrim(s, delimiter string) []string {
	parts := strings.Split(s, delimiter)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// zipRecord pairs header names with row cells. Columns whose header name is
// empty are skipped entirely; a duplicated header name keeps the last
// occurrence's cell.
func zipRecord(header, cells []string) domain.RawRecord {
	rec := make(domain.RawRecord, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		var v string
		if i < len(cells) {
			v = cells[i]
		}
		rec[name] = v
	}
	return rec
}
