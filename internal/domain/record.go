package domain

import "strings"

// RawRecord maps header names to cell values for one data row of a delimited
// input file. Keys and values are trimmed of surrounding whitespace by the
// reader; validation consumes the map as-is.
type RawRecord map[string]string

// ErrorRecord describes one rejected or ignored input row.
// Created once during parsing and never mutated afterwards; the error log
// writes records in input order, grouped by originating file.
type ErrorRecord struct {
	// File is the base name of the source file. Empty for single-file
	// parses; set on every record produced by a directory parse.
	File string

	// Line is the 1-based line number in the source file. The header is
	// line 1, so data rows start at 2.
	Line int

	// Content is the original row text, trimmed.
	Content string

	// Reasons holds one or more human-readable rejection reasons in the
	// order the checks ran.
	Reasons []string
}

// Reason returns all rejection reasons joined into the single string form
// used by the error log.
func (e ErrorRecord) Reason() string {
	return strings.Join(e.Reasons, ", ")
}
