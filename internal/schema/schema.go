// Package schema loads collection descriptions from YAML files, as a
// non-interactive alternative to the generate prompts.
//
// Example:
//
//	collection: user
//	embedded: false
//	fields:
//	  - name: firstname
//	    type: string
//	  - name: address
//	    embed_one: address
//	  - name: tags
//	    embed_many: tag
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/docmaker/internal/core/document"
	"github.com/example/docmaker/internal/models"
)

// File is the on-disk form of a collection description.
type File struct {
	Collection string  `yaml:"collection"`
	Embedded   bool    `yaml:"embedded"`
	Fields     []Field `yaml:"fields"`
}

// Field is one entry of File.Fields. Exactly one of Type, EmbedOne and
// EmbedMany must be set.
type Field struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type,omitempty"`
	EmbedOne  string `yaml:"embed_one,omitempty"`
	EmbedMany string `yaml:"embed_many,omitempty"`
}

// Load reads and parses the schema file at path.
func Load(path string, strict bool) (models.Collection, *models.FieldList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Collection{}, nil, fmt.Errorf("failed to read schema: %w", err)
	}
	return Parse(data, strict)
}

// Parse decodes a schema document and validates every entry. Entries that
// repeat a field name replace the earlier entry in place. Unless strict,
// scalar types are not checked against the catalog.
func Parse(data []byte, strict bool) (models.Collection, *models.FieldList, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return models.Collection{}, nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	if err := document.CanUseCollectionName(f.Collection).Error(); err != nil {
		return models.Collection{}, nil, err
	}

	fields := models.NewFieldList()
	for i, entry := range f.Fields {
		field, err := entry.toModel(strict)
		if err != nil {
			return models.Collection{}, nil, fmt.Errorf("fields[%d]: %w", i, err)
		}
		fields.Set(field)
	}

	return models.Collection{Name: f.Collection, Embedded: f.Embedded}, fields, nil
}

func (f Field) toModel(strict bool) (models.Field, error) {
	set := 0
	for _, v := range []string{f.Type, f.EmbedOne, f.EmbedMany} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return nil, &document.ValidationError{
			Field:  f.Name,
			Reason: "exactly one of type, embed_one or embed_many must be set",
		}
	}

	switch {
	case f.EmbedOne != "":
		if err := document.CanAddEmbedField(f.Name, document.EmbedOne, f.EmbedOne).Error(); err != nil {
			return nil, err
		}
		return models.EmbedOneField{Name: f.Name, Target: f.EmbedOne}, nil
	case f.EmbedMany != "":
		if err := document.CanAddEmbedField(f.Name, document.EmbedMany, f.EmbedMany).Error(); err != nil {
			return nil, err
		}
		return models.EmbedManyField{Name: f.Name, Target: f.EmbedMany}, nil
	default:
		if err := document.CanAddScalarFieldMode(f.Name, f.Type, strict).Error(); err != nil {
			return nil, err
		}
		return models.ScalarField{Name: f.Name, Type: f.Type}, nil
	}
}
