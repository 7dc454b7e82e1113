package docgen

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/docmaker/internal/core/document"
	"github.com/example/docmaker/internal/ports/secondary"
)

// DefaultNamespace is the namespace of Symfony document classes.
const DefaultNamespace = `App\Document`

// Extension is the file extension of generated classes.
const Extension = ".php"

// Option configures a Generator.
type Option func(*Generator) error

// WithBaseDir sets the directory generated classes are written to.
func WithBaseDir(dir string) Option {
	return func(g *Generator) error {
		if dir == "" {
			return errors.New("docgen: base directory cannot be empty")
		}
		g.baseDir = dir
		return nil
	}
}

// WithNamespace sets the PHP namespace of generated classes.
func WithNamespace(ns string) Option {
	return func(g *Generator) error {
		if ns == "" {
			return errors.New("docgen: namespace cannot be empty")
		}
		if err := document.CanUseNamespace(ns).Error(); err != nil {
			return fmt.Errorf("docgen: %w", err)
		}
		g.namespace = ns
		return nil
	}
}

// WithStrictTypes controls whether scalar types outside the catalog are
// rejected (true, the default) or written through as given.
func WithStrictTypes(strict bool) Option {
	return func(g *Generator) error {
		g.strict = strict
		return nil
	}
}

// WithWriter sets the ClassWriter used to persist classes.
func WithWriter(w secondary.ClassWriter) Option {
	return func(g *Generator) error {
		if w == nil {
			return errors.New("docgen: writer cannot be nil")
		}
		g.writer = w
		return nil
	}
}

// WithLogger sets the logger for generation steps.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Generator) error {
		if l == nil {
			return errors.New("docgen: logger cannot be nil")
		}
		g.log = l
		return nil
	}
}
