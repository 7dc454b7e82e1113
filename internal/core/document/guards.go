// Package document contains the validation rules applied to a collection
// description before a class is generated.
// Guards are pure functions that evaluate preconditions without side effects.
package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/example/docmaker/internal/core/fieldtype"
	"github.com/example/docmaker/internal/core/naming"
)

// MappingTypesURL documents the field types accepted by CanAddScalarField.
const MappingTypesURL = "https://www.doctrine-project.org/projects/doctrine-mongodb-odm/en/current/reference/basic-mapping.html#doctrine-mapping-types"

// Embed kinds accepted by CanAddEmbedField.
const (
	EmbedOne  = "one"
	EmbedMany = "many"
)

var (
	identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	// PHP allows any non-ASCII letter in class names.
	classNameRe = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*$`)
	namespaceRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\\[A-Za-z_][A-Za-z0-9_]*)*$`)
)

// Subject tells which part of a collection description a guard evaluated.
type Subject int

const (
	SubjectField Subject = iota
	SubjectCollection
	SubjectNamespace
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Field   string // input the rule was evaluated against
	Subject Subject
}

// Error converts the guard result to a *ValidationError if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return &ValidationError{Field: r.Field, Reason: r.Reason, Subject: r.Subject}
}

// ValidationError reports input that cannot be turned into a document class.
type ValidationError struct {
	Field   string
	Reason  string
	Subject Subject
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// CanUseCollectionName evaluates whether name can name a collection.
// Rules:
// - Name must not be empty
// - Name must not contain a double quote or a line break
// - Its PascalCase form must be a valid PHP class name
func CanUseCollectionName(name string) GuardResult {
	if name == "" {
		return GuardResult{Field: "collection", Subject: SubjectCollection, Reason: "you entered no collection name"}
	}
	if reason := checkCollectionToken(name); reason != "" {
		return GuardResult{
			Field:   "collection",
			Subject: SubjectCollection,
			Reason:  fmt.Sprintf("invalid collection name %q: %s", name, reason),
		}
	}
	return GuardResult{Allowed: true}
}

// CanUseNamespace evaluates whether ns is a PHP namespace such as
// App\Document.
func CanUseNamespace(ns string) GuardResult {
	if !namespaceRe.MatchString(ns) {
		return GuardResult{
			Field:   "namespace",
			Subject: SubjectNamespace,
			Reason:  fmt.Sprintf("invalid namespace %q: use identifiers separated by backslashes", ns),
		}
	}
	return GuardResult{Allowed: true}
}

// checkCollectionToken returns why name cannot be written into a collection
// annotation and turned into a class name, or "".
func checkCollectionToken(name string) string {
	if strings.ContainsAny(name, "\"\r\n") {
		return "double quotes and line breaks are not allowed"
	}
	if class := naming.ToPascalCase(name); !classNameRe.MatchString(class) {
		return fmt.Sprintf("%q is not a valid class name", class)
	}
	return ""
}

// CanAddScalarField evaluates whether a scalar field can be declared.
// Rules:
// - Name must be a valid PHP property name
// - Type must be a supported Doctrine mapping type
func CanAddScalarField(name, fieldType string) GuardResult {
	if r := checkFieldName(name); !r.Allowed {
		return r
	}
	if !fieldtype.IsSupported(fieldType) {
		return GuardResult{
			Field:  name,
			Reason: fmt.Sprintf("invalid field type %q. See: %s", fieldType, MappingTypesURL),
		}
	}
	return GuardResult{Allowed: true}
}

// CanAddCustomScalarField evaluates a scalar field whose type is taken
// literally instead of being checked against the catalog.
// Rules:
// - Name must be a valid PHP property name
// - Type must be non-empty and must not contain a double quote
func CanAddCustomScalarField(name, fieldType string) GuardResult {
	if r := checkFieldName(name); !r.Allowed {
		return r
	}
	if fieldType == "" {
		return GuardResult{Field: name, Reason: "you entered no field type"}
	}
	if strings.ContainsAny(fieldType, "\"\n") {
		return GuardResult{Field: name, Reason: fmt.Sprintf("invalid field type %q", fieldType)}
	}
	return GuardResult{Allowed: true}
}

// CanAddScalarFieldMode picks CanAddScalarField or CanAddCustomScalarField.
func CanAddScalarFieldMode(name, fieldType string, strict bool) GuardResult {
	if strict {
		return CanAddScalarField(name, fieldType)
	}
	return CanAddCustomScalarField(name, fieldType)
}

// CanAddEmbedField evaluates whether an embedded relation can be declared.
// Rules:
// - Name must be a valid PHP property name
// - Kind must be "one" or "many"
// - Target collection must be usable as a collection name
func CanAddEmbedField(name, kind, target string) GuardResult {
	if r := checkFieldName(name); !r.Allowed {
		return r
	}
	if kind != EmbedOne && kind != EmbedMany {
		return GuardResult{
			Field:  name,
			Reason: fmt.Sprintf("invalid embed kind %q: expected %q or %q", kind, EmbedOne, EmbedMany),
		}
	}
	if target == "" {
		return GuardResult{Field: name, Reason: "you entered no target collection"}
	}
	if reason := checkCollectionToken(target); reason != "" {
		return GuardResult{
			Field:  name,
			Reason: fmt.Sprintf("invalid target collection %q: %s", target, reason),
		}
	}
	return GuardResult{Allowed: true}
}

func checkFieldName(name string) GuardResult {
	if name == "" {
		return GuardResult{Field: "field", Reason: "you entered no field name"}
	}
	if name == "id" {
		return GuardResult{Field: name, Reason: "field name \"id\" is reserved for the document identifier"}
	}
	if !identifierRe.MatchString(name) {
		return GuardResult{
			Field:  name,
			Reason: fmt.Sprintf("invalid field name %q: use letters, digits and underscores", name),
		}
	}
	return GuardResult{Allowed: true}
}
