package cli

import (
	"errors"

	"github.com/example/docmaker/internal/core/document"
)

// Process exit codes.
const (
	ExitFailure          = 1 // generic failure, including usage errors
	ExitNoCollection     = 1 // no or invalid collection name
	ExitInvalidField     = 2 // invalid field name, kind, type or target
	ExitGenerationFailed = 3 // the class could not be rendered or written
)

// ExitError carries the process exit code for err.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the exit code a command error should terminate with.
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classify attaches an exit code to an error returned while collecting
// input or generating a class.
func classify(err error, fallback int) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	var verr *document.ValidationError
	if errors.As(err, &verr) {
		switch verr.Subject {
		case document.SubjectCollection:
			return &ExitError{Code: ExitNoCollection, Err: err}
		case document.SubjectField:
			return &ExitError{Code: ExitInvalidField, Err: err}
		}
	}
	return &ExitError{Code: fallback, Err: err}
}
