// Package cli implements the command-line application for the flightdb
// tool: the flag surface, run-mode selection, and the orchestration of
// parsing, saving, and querying. Structural failures are returned as
// errors; main maps them to exit codes.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pkordes/flightdb/internal/config"
	"github.com/pkordes/flightdb/internal/domain"
	"github.com/pkordes/flightdb/internal/service"
)

// Ingestor defines the parsing operations the app depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets app
// tests inject a mock without touching the filesystem.
type Ingestor interface {
	ParseFile(path string) ([]domain.Flight, []domain.ErrorRecord, error)
	ParseDirectory(dir string) ([]domain.Flight, []domain.ErrorRecord, error)
}

// Store defines the file operations the app depends on.
type Store interface {
	SaveFlights(path string, flights []domain.Flight) error
	LoadFlights(path string) ([]domain.Flight, error)
	LoadQueries(path string) ([]domain.Query, error)
	SaveResults(path string, results []domain.QueryResult) error
	SaveErrors(path string, records []domain.ErrorRecord) error
	ExportCSV(path string, flights []domain.Flight) error
}

// Options holds the parsed command-line options for one run.
// Exactly one of Input, Dir, or DB is set; ParseOptions enforces that.
type Options struct {
	Input     string // parse a single delimited file
	Dir       string // parse all *.csv files in a directory
	DB        string // load an existing JSON database
	Output    string // flights database path; config default when empty
	Errors    string // error log path; config default when empty
	Query     string // query file to execute against the working set
	ExportCSV string // CSV export path; no export when empty
	Config    string // optional YAML config file
}

// ParseOptions parses command-line arguments into Options. Usage and
// error text are written to errw. The returned error is flag.ErrHelp for
// -h; any other error means the arguments were invalid.
func ParseOptions(args []string, errw io.Writer) (Options, error) {
	var opts Options

	fs := flag.NewFlagSet("flightdb", flag.ContinueOnError)
	fs.SetOutput(errw)
	fs.StringVar(&opts.Input, "input", "", "parse a single delimited file")
	fs.StringVar(&opts.Dir, "dir", "", "parse all *.csv files in a directory")
	fs.StringVar(&opts.DB, "db", "", "load an existing JSON database instead of parsing")
	fs.StringVar(&opts.Output, "output", "", "output path for the flights database (default db.json)")
	fs.StringVar(&opts.Errors, "errors", "", "output path for the error log (default errors.txt)")
	fs.StringVar(&opts.Query, "query", "", "execute queries from a JSON file against the loaded flights")
	fs.StringVar(&opts.ExportCSV, "export-csv", "", "also export the loaded flights as CSV to this path")
	fs.StringVar(&opts.Config, "config", "", "optional YAML config file")
	fs.Usage = func() {
		fmt.Fprintf(errw, "Usage: flightdb [flags]\n\n")
		fmt.Fprintf(errw, "Parse delimited flight schedules into a validated JSON database and run\ndeclarative queries against it.\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errw, "\nExamples:\n")
		fmt.Fprintf(errw, "  flightdb -input data/db.csv\n")
		fmt.Fprintf(errw, "  flightdb -dir data/flights\n")
		fmt.Fprintf(errw, "  flightdb -db db.json -query query.json\n")
	}

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, usageError(fs, fmt.Errorf("unexpected argument: %s", fs.Arg(0)))
	}

	modes := 0
	for _, mode := range []string{opts.Input, opts.Dir, opts.DB} {
		if mode != "" {
			modes++
		}
	}
	if modes != 1 {
		return Options{}, usageError(fs, errors.New("exactly one of -input, -dir or -db is required"))
	}

	return opts, nil
}

// usageError reports err through the flag set's output and usage text, the
// same way the flag package reports its own parse errors.
func usageError(fs *flag.FlagSet, err error) error {
	fmt.Fprintf(fs.Output(), "flightdb: %v\n", err)
	fs.Usage()
	return err
}

// App runs one flightdb invocation over its injected dependencies.
type App struct {
	ing   Ingestor
	store Store
	cfg   config.Config
	log   *slog.Logger
}

// NewApp constructs the App with all its dependencies.
func NewApp(ing Ingestor, store Store, cfg config.Config, log *slog.Logger) *App {
	return &App{ing: ing, store: store, cfg: cfg, log: log}
}

// Run executes one invocation: build the working set from the selected
// source, write the parse outputs, then run the optional CSV export and
// query steps. Any structural error aborts the run.
func (a *App) Run(opts Options) error {
	outputPath := opts.Output
	if outputPath == "" {
		outputPath = a.cfg.Output
	}
	errorsPath := opts.Errors
	if errorsPath == "" {
		errorsPath = a.cfg.Errors
	}

	var flights []domain.Flight

	switch {
	case opts.DB != "":
		loaded, err := a.store.LoadFlights(opts.DB)
		if err != nil {
			return fmt.Errorf("cli.App.Run: %w", err)
		}
		flights = loaded
		a.log.Info("database loaded", "path", opts.DB, "flights", len(flights))

	case opts.Input != "":
		accepted, records, err := a.ing.ParseFile(opts.Input)
		if err != nil {
			return fmt.Errorf("cli.App.Run: %w", err)
		}
		flights = accepted
		if err := a.saveParseOutput(outputPath, errorsPath, flights, records); err != nil {
			return err
		}

	case opts.Dir != "":
		accepted, records, err := a.ing.ParseDirectory(opts.Dir)
		if err != nil {
			return fmt.Errorf("cli.App.Run: %w", err)
		}
		flights = accepted
		if err := a.saveParseOutput(outputPath, errorsPath, flights, records); err != nil {
			return err
		}
	}

	if opts.ExportCSV != "" {
		if err := a.store.ExportCSV(opts.ExportCSV, flights); err != nil {
			return fmt.Errorf("cli.App.Run: %w", err)
		}
		a.log.Info("csv exported", "path", opts.ExportCSV, "flights", len(flights))
	}

	if opts.Query != "" {
		if err := a.runQueries(opts.Query, flights); err != nil {
			return err
		}
	}

	return nil
}

// saveParseOutput writes the flights database and, when any rows were
// rejected, the error log. No error file is written for a clean parse.
func (a *App) saveParseOutput(outputPath, errorsPath string, flights []domain.Flight, records []domain.ErrorRecord) error {
	if err := a.store.SaveFlights(outputPath, flights); err != nil {
		return fmt.Errorf("cli.App.Run: %w", err)
	}
	a.log.Info("flights saved", "path", outputPath, "accepted", len(flights), "rejected", len(records))

	if len(records) == 0 {
		return nil
	}
	if err := a.store.SaveErrors(errorsPath, records); err != nil {
		return fmt.Errorf("cli.App.Run: %w", err)
	}
	a.log.Info("errors saved", "path", errorsPath, "count", len(records))
	return nil
}

// runQueries loads the query file, executes every query against the working
// set, and writes the response file. Querying an empty working set is
// rejected before any file is touched.
func (a *App) runQueries(queryPath string, flights []domain.Flight) error {
	if len(flights) == 0 {
		return fmt.Errorf("cli.App.Run: %w: no flights loaded to query", domain.ErrValidation)
	}

	queries, err := a.store.LoadQueries(queryPath)
	if err != nil {
		return fmt.Errorf("cli.App.Run: %w", err)
	}

	engine := service.NewQueryEngine(flights)
	results := engine.ExecuteAll(queries)

	path := a.responsePath(time.Now())
	if err := a.store.SaveResults(path, results); err != nil {
		return fmt.Errorf("cli.App.Run: %w", err)
	}
	a.log.Info("query results saved", "path", path, "queries", len(results))
	for i, result := range results {
		a.log.Info("query executed", "query", i+1, "matches", len(result.Matches))
	}
	return nil
}

// responsePath builds the timestamped response filename, e.g.
// "response_20250115_1004.json".
func (a *App) responsePath(now time.Time) string {
	return fmt.Sprintf("%s_%s.json", a.cfg.ResponsePrefix, now.Format("20060102_1504"))
}
