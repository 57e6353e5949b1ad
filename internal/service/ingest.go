package service

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkordes/flightdb/internal/domain"
	"github.com/pkordes/flightdb/internal/store"
)

// commentReason is the informational reason recorded for comment rows.
// Comment rows are not validation failures; they land in the error log so
// the input can be audited line by line.
const commentReason = "comment line, ignored for data parsing"

// Ingestor turns delimited input files into the accepted working set plus
// the error records for every rejected or ignored row. It wires the table
// reader and the validator together; rejected rows never halt a parse.
type Ingestor struct {
	reader    store.TableReader
	validator *Validator
	log       *slog.Logger
}

// NewIngestor constructs an Ingestor backed by the provided reader and
// validator. The logger reports per-file progress.
func NewIngestor(reader store.TableReader, validator *Validator, log *slog.Logger) *Ingestor {
	return &Ingestor{reader: reader, validator: validator, log: log}
}

// ParseFile parses a single delimited file. Accepted flights and error
// records each preserve input order. Only I/O problems return an error;
// invalid rows are reported through the error records.
func (ing *Ingestor) ParseFile(path string) ([]domain.Flight, []domain.ErrorRecord, error) {
	table, err := ing.reader.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("service.Ingestor.ParseFile: %w", err)
	}

	flights := make([]domain.Flight, 0, len(table.Rows))
	records := make([]domain.ErrorRecord, 0)
	for _, row := range table.Rows {
		if row.Comment {
			records = append(records, domain.ErrorRecord{
				Line:    row.Line,
				Content: row.Text,
				Reasons: []string{commentReason},
			})
			continue
		}

		flight, reasons := ing.validator.Validate(row.Record)
		if len(reasons) > 0 {
			records = append(records, domain.ErrorRecord{
				Line:    row.Line,
				Content: row.Text,
				Reasons: reasons,
			})
			continue
		}
		flights = append(flights, flight)
	}

	return flights, records, nil
}

// ParseDirectory parses every *.csv file in dir in sorted filename order,
// strictly sequentially, and combines the results. Error records from a
// directory parse are tagged with the base name of their source file.
// A directory with no *.csv files yields empty results and a warning, not
// an error; a missing path returns domain.ErrNotFound.
func (ing *Ingestor) ParseDirectory(dir string) ([]domain.Flight, []domain.ErrorRecord, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("service.Ingestor.ParseDirectory: %w: %s", domain.ErrNotFound, dir)
		}
		return nil, nil, fmt.Errorf("service.Ingestor.ParseDirectory: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("service.Ingestor.ParseDirectory: not a directory: %s", dir)
	}

	// Glob returns matches already sorted.
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, nil, fmt.Errorf("service.Ingestor.ParseDirectory: %w", err)
	}
	if len(paths) == 0 {
		ing.log.Warn("no csv files found", "dir", dir)
	}

	flights := make([]domain.Flight, 0)
	records := make([]domain.ErrorRecord, 0)
	for _, path := range paths {
		name := filepath.Base(path)
		fileFlights, fileRecords, err := ing.ParseFile(path)
		if err != nil {
			return nil, nil, err
		}
		for i := range fileRecords {
			fileRecords[i].File = name
		}
		ing.log.Info("processed file",
			"file", name,
			"accepted", len(fileFlights),
			"rejected", len(fileRecords),
		)
		flights = append(flights, fileFlights...)
		records = append(records, fileRecords...)
	}

	return flights, records, nil
}
