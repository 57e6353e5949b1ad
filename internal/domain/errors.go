package domain

import "errors"

// ErrNotFound is returned by store functions when an input file or
// directory does not exist. The CLI maps this to a failed run.
var ErrNotFound = errors.New("not found")

// ErrValidation marks per-record rule failures (e.g. missing required
// field, arrival before departure). Record-level failures are collected
// into ErrorRecords and never halt a parse; this sentinel exists for the
// rare caller that needs to classify a single record's rejection.
var ErrValidation = errors.New("validation error")

// ErrFormat is returned by store functions when a JSON document has the
// wrong shape (non-array database, non-object query element, undecodable
// content). Format errors are structural: they fail the whole operation.
var ErrFormat = errors.New("format error")
