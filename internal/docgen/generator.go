package docgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/sirupsen/logrus"

	"github.com/example/docmaker/internal/core/document"
	"github.com/example/docmaker/internal/core/naming"
	"github.com/example/docmaker/internal/logging/logfields"
	"github.com/example/docmaker/internal/models"
	"github.com/example/docmaker/internal/ports/secondary"
	docgentmpl "github.com/example/docmaker/internal/templates/docgen"
)

const classTemplate = "document.php"

// Generator renders document classes and writes them under a base directory.
type Generator struct {
	baseDir   string
	namespace string
	strict    bool
	writer    secondary.ClassWriter
	log       logrus.FieldLogger
	tmpl      *template.Template
}

// NewGenerator creates a Generator. A writer is required; the base directory
// defaults to DefaultBaseDir.
func NewGenerator(opts ...Option) (*Generator, error) {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	g := &Generator{
		namespace: DefaultNamespace,
		strict:    true,
		log:       discard,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	if g.writer == nil {
		return nil, errors.New("docgen: a class writer is required")
	}
	if g.baseDir == "" {
		dir, err := DefaultBaseDir()
		if err != nil {
			return nil, err
		}
		g.baseDir = dir
	}

	content, err := docgentmpl.GetClassTemplate(classTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s template: %w", classTemplate, err)
	}
	g.tmpl, err = template.New(classTemplate).Funcs(docgentmpl.TemplateFuncs()).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", classTemplate, err)
	}

	return g, nil
}

// DefaultBaseDir returns the directory holding the running executable.
func DefaultBaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// BaseDir returns the directory classes are written to.
func (g *Generator) BaseDir() string {
	return g.baseDir
}

// ClassName returns the PHP class name for a collection.
func ClassName(c models.Collection) string {
	return naming.ToPascalCase(c.Name)
}

// OutputPath returns where the class for c is written.
func (g *Generator) OutputPath(c models.Collection) string {
	return filepath.Join(g.baseDir, ClassName(c)+Extension)
}

// Generate renders the class for c and fields, writes it to OutputPath,
// overwriting any existing file, and returns its absolute path.
func (g *Generator) Generate(ctx context.Context, c models.Collection, fields *models.FieldList) (string, error) {
	content, err := g.Render(c, fields)
	if err != nil {
		return "", err
	}

	path := g.OutputPath(c)
	log := g.log.WithFields(logrus.Fields{
		logfields.Collection: c.Name,
		logfields.Class:      ClassName(c),
		logfields.Path:       path,
	})
	log.Debug("Writing document class")

	abs, err := g.writer.WriteClass(ctx, path, content)
	if err != nil {
		kind := ErrWriteFailed
		if errors.Is(err, secondary.ErrPathUnresolved) {
			kind = ErrPathResolutionFailed
		}
		log.WithError(err).Debug("Document class generation failed")
		return "", &GenerationError{Kind: kind, Path: path, Err: err}
	}

	log.WithField(logfields.AbsolutePath, abs).Debug("Document class written")
	return abs, nil
}

// Render returns the class source for c and fields without writing it.
// Every field is validated first; outside strict mode scalar types are not
// checked against the catalog.
func (g *Generator) Render(c models.Collection, fields *models.FieldList) ([]byte, error) {
	list := fields.Fields()
	if err := validate(c, list, g.strict); err != nil {
		return nil, err
	}

	annotation := "Document"
	if c.Embedded {
		annotation = "EmbeddedDocument"
	}

	data := classData{
		Namespace:          g.namespace,
		Collection:         c.Name,
		DocumentAnnotation: annotation,
		ClassName:          ClassName(c),
		Properties:         propertyPass(list),
		HasConstructor:     fields.HasEmbedMany(),
		Collections:        constructorPass(list),
		Accessors:          accessorPass(list),
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return nil, &GenerationError{Kind: ErrRenderFailed, Err: err}
	}

	g.log.WithFields(logrus.Fields{
		logfields.Collection: c.Name,
		logfields.Fields:     len(list),
		logfields.Bytes:      buf.Len(),
	}).Debug("Rendered document class")

	return buf.Bytes(), nil
}

func validate(c models.Collection, fields []models.Field, strict bool) error {
	if err := document.CanUseCollectionName(c.Name).Error(); err != nil {
		return err
	}
	for _, f := range fields {
		var r document.GuardResult
		switch f := f.(type) {
		case models.ScalarField:
			r = document.CanAddScalarFieldMode(f.Name, f.Type, strict)
		case models.EmbedOneField:
			r = document.CanAddEmbedField(f.Name, document.EmbedOne, f.Target)
		case models.EmbedManyField:
			r = document.CanAddEmbedField(f.Name, document.EmbedMany, f.Target)
		}
		if err := r.Error(); err != nil {
			return err
		}
	}
	return nil
}
