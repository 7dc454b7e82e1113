// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import (
	"context"
	"errors"
)

// ErrPathUnresolved is matched by errors returned from a ClassWriter when
// the file was written but its absolute path could not be determined.
var ErrPathUnresolved = errors.New("absolute path could not be resolved")

// ClassWriter persists generated class source.
type ClassWriter interface {
	// WriteClass writes content to path, replacing any existing file, and
	// returns the absolute form of path.
	WriteClass(ctx context.Context, path string, content []byte) (string, error)
}
