// Package wire provides dependency injection for the docmaker application.
package wire

import (
	"github.com/sirupsen/logrus"

	"github.com/example/docmaker/internal/adapters/filesystem"
	"github.com/example/docmaker/internal/config"
	"github.com/example/docmaker/internal/docgen"
)

// Generator builds a document class generator from cfg, writing through the
// filesystem adapter. When cfg.OutputDir is empty classes are written next
// to the executable.
func Generator(cfg *config.Config, log logrus.FieldLogger) (*docgen.Generator, error) {
	opts := []docgen.Option{
		docgen.WithWriter(filesystem.NewClassWriter()),
		docgen.WithNamespace(cfg.Namespace),
		docgen.WithStrictTypes(cfg.StrictTypes),
		docgen.WithLogger(log),
	}
	if cfg.OutputDir != "" {
		opts = append(opts, docgen.WithBaseDir(cfg.OutputDir))
	}
	return docgen.NewGenerator(opts...)
}
