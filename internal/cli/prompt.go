package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/docmaker/internal/core/document"
	"github.com/example/docmaker/internal/models"
)

// Field kinds accepted by the kind question.
const (
	kindField     = "field"
	kindEmbedOne  = "embed_one"
	kindEmbedMany = "embed_many"
)

// Prompter collects a collection description by asking questions on out and
// reading one answer per line from in.
type Prompter struct {
	in      *bufio.Scanner
	out     io.Writer
	info    *color.Color
	comment *color.Color
	strict  bool
}

// NewPrompter creates a Prompter. Unless strict, scalar types are not checked
// against the catalog.
func NewPrompter(in io.Reader, out io.Writer, strict bool) *Prompter {
	return &Prompter{
		in:      bufio.NewScanner(in),
		out:     out,
		info:    color.New(color.FgGreen),
		comment: color.New(color.FgYellow),
		strict:  strict,
	}
}

// ask prints a question and returns the trimmed answer. End of input reads
// as an empty answer.
func (p *Prompter) ask(question, hint string) string {
	p.info.Fprint(p.out, "> "+question)
	if hint != "" {
		fmt.Fprint(p.out, " ")
		p.comment.Fprint(p.out, hint)
	}
	fmt.Fprintln(p.out)

	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// Collect asks for the collection name, the embedding flag and then fields
// until an empty field name is entered. Fields repeating an earlier name
// replace it.
func (p *Prompter) Collect() (models.Collection, *models.FieldList, error) {
	name := p.ask("Enter the name of the MongoDB collection.", "(e.g. user)")
	if err := document.CanUseCollectionName(name).Error(); err != nil {
		return models.Collection{}, nil, &ExitError{Code: ExitNoCollection, Err: err}
	}

	embedded := p.askYesNo("Is it an embedded document?")

	fields := models.NewFieldList()
	for {
		fieldName := p.ask(
			"Enter the name of a new MongoDB field.",
			"(e.g. firstname) or press enter if you want to stop adding fields.",
		)
		if fieldName == "" {
			break
		}

		if _, ok := fields.Get(fieldName); ok {
			p.comment.Fprintf(p.out, "Field %q already exists and will be replaced in place.\n", fieldName)
		}
		field, err := p.askField(fieldName)
		if err != nil {
			return models.Collection{}, nil, &ExitError{Code: ExitInvalidField, Err: err}
		}
		fields.Set(field)
	}

	return models.Collection{Name: name, Embedded: embedded}, fields, nil
}

func (p *Prompter) askYesNo(question string) bool {
	answer := strings.ToLower(p.ask(question, "[y/N]"))
	return answer == "y" || answer == "yes"
}

func (p *Prompter) askField(name string) (models.Field, error) {
	kind := p.ask(
		fmt.Sprintf("Enter the kind of the %q MongoDB field.", name),
		fmt.Sprintf("(%s, %s, %s) [%s]", kindField, kindEmbedOne, kindEmbedMany, kindField),
	)

	switch kind {
	case "", kindField:
		fieldType := p.ask(
			fmt.Sprintf("Enter the type of the %q MongoDB field.", name),
			"(e.g. boolean, collection, date, int, string)",
		)
		if err := document.CanAddScalarFieldMode(name, fieldType, p.strict).Error(); err != nil {
			return nil, err
		}
		return models.ScalarField{Name: name, Type: fieldType}, nil

	case kindEmbedOne, kindEmbedMany:
		target := p.ask(
			fmt.Sprintf("Enter the target collection of the %q embedded field.", name),
			"(e.g. address)",
		)
		if kind == kindEmbedOne {
			if err := document.CanAddEmbedField(name, document.EmbedOne, target).Error(); err != nil {
				return nil, err
			}
			return models.EmbedOneField{Name: name, Target: target}, nil
		}
		if err := document.CanAddEmbedField(name, document.EmbedMany, target).Error(); err != nil {
			return nil, err
		}
		return models.EmbedManyField{Name: name, Target: target}, nil

	default:
		return nil, &document.ValidationError{
			Field:  name,
			Reason: fmt.Sprintf("invalid field kind %q: expected %s, %s or %s", kind, kindField, kindEmbedOne, kindEmbedMany),
		}
	}
}
