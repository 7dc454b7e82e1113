package docgen

import (
	"errors"
	"strings"
)

// Sentinel errors for generation failures.
var (
	// ErrWriteFailed indicates the class file could not be written.
	ErrWriteFailed = errors.New("docgen: impossible to write the generated PHP class")
	// ErrPathResolutionFailed indicates the written file's absolute path
	// could not be determined.
	ErrPathResolutionFailed = errors.New("docgen: impossible to get the absolute path to the generated PHP class")
	// ErrRenderFailed indicates the class template could not be executed.
	ErrRenderFailed = errors.New("docgen: impossible to render the PHP class")
)

// GenerationError describes a failed generation step.
type GenerationError struct {
	Kind error  // one of the sentinel errors above
	Path string // output path, if known
	Err  error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *GenerationError) Is(target error) bool {
	return target == e.Kind
}
