// Package errors provides the typed errors used across the loader, the
// refresh pipeline and the HTTP layer. Data-quality problems are recovered
// locally and never travel as errors; these types cover the few places where
// a failure must carry context to a caller.
package errors

import (
	"errors"
	"fmt"
)

// New is an alias for the standard library errors.New.
var New = errors.New

// ErrNoPipeline indicates that no refresh pipeline command is configured.
var ErrNoPipeline = errors.New("no refresh pipeline configured")

// LoadError wraps a failure to locate or read one of the source tables.
// The loader logs it and substitutes an empty table; it never propagates
// past ingestion.
type LoadError struct {
	Table string // "oferta", "matriculados" or "titulados"
	Path  string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s from %s: %v", e.Table, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NewLoadError creates a LoadError for the given table and path.
func NewLoadError(table, path string, err error) *LoadError {
	return &LoadError{Table: table, Path: path, Err: err}
}

// PipelineError carries the captured output of a failed external refresh
// run so the admin endpoint can surface diagnostics to the caller.
type PipelineError struct {
	Stdout string
	Stderr string
	Err    error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("refresh pipeline failed: %v", e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }
