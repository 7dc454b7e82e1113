// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/docmaker/internal/ports/secondary"
)

// ClassWriter implements secondary.ClassWriter on the local filesystem.
type ClassWriter struct {
	perm os.FileMode
}

var _ secondary.ClassWriter = (*ClassWriter)(nil)

// NewClassWriter creates a writer producing files with mode 0644.
func NewClassWriter() *ClassWriter {
	return &ClassWriter{perm: 0o644}
}

// WriteClass writes content to a temporary file next to path and renames it
// into place, so readers never observe a partially written class.
func (w *ClassWriter) WriteClass(ctx context.Context, path string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, w.perm); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to move %s into place: %w", path, err)
	}

	return ResolvePath(path)
}

// ResolvePath returns the absolute, symlink-free form of an existing path.
func ResolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &PathError{Path: path, Err: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &PathError{Path: path, Err: err}
	}
	return resolved, nil
}

// PathError reports that a written file could not be resolved to an
// absolute path.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("failed to resolve absolute path of %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// Is matches secondary.ErrPathUnresolved.
func (e *PathError) Is(target error) bool { return target == secondary.ErrPathUnresolved }
