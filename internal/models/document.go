package models

// Collection describes the MongoDB collection a document class maps to.
type Collection struct {
	Name     string
	Embedded bool // EmbeddedDocument instead of a top-level Document
}

// Field is one mapped property of a document. The set of implementations is
// closed: ScalarField, EmbedOneField and EmbedManyField.
type Field interface {
	FieldName() string
	isField()
}

// ScalarField is a property mapped with @MongoDB\Field.
type ScalarField struct {
	Name string
	Type string // Doctrine mapping type, e.g. "string", "boolean"
}

// EmbedOneField holds a single embedded document.
type EmbedOneField struct {
	Name   string
	Target string // collection name of the embedded document
}

// EmbedManyField holds a collection of embedded documents.
type EmbedManyField struct {
	Name   string
	Target string
}

func (f ScalarField) FieldName() string    { return f.Name }
func (f EmbedOneField) FieldName() string  { return f.Name }
func (f EmbedManyField) FieldName() string { return f.Name }

func (ScalarField) isField()    {}
func (EmbedOneField) isField()  {}
func (EmbedManyField) isField() {}

// FieldList is an ordered set of fields keyed by name.
// Setting a name that is already present replaces its metadata in place.
type FieldList struct {
	fields []Field
	index  map[string]int
}

// NewFieldList builds a list from fields in order.
func NewFieldList(fields ...Field) *FieldList {
	l := &FieldList{}
	for _, f := range fields {
		l.Set(f)
	}
	return l
}

// Set adds f at the end of the list, or replaces the field with the same
// name without moving it.
func (l *FieldList) Set(f Field) {
	if l.index == nil {
		l.index = make(map[string]int)
	}
	if i, ok := l.index[f.FieldName()]; ok {
		l.fields[i] = f
		return
	}
	l.index[f.FieldName()] = len(l.fields)
	l.fields = append(l.fields, f)
}

// Get returns the field named name.
func (l *FieldList) Get(name string) (Field, bool) {
	if l == nil {
		return nil, false
	}
	i, ok := l.index[name]
	if !ok {
		return nil, false
	}
	return l.fields[i], true
}

// Len returns the number of fields.
func (l *FieldList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.fields)
}

// Fields returns a copy of the fields in insertion order.
func (l *FieldList) Fields() []Field {
	if l == nil {
		return nil
	}
	out := make([]Field, len(l.fields))
	copy(out, l.fields)
	return out
}

// HasEmbedMany reports whether any field is an EmbedManyField.
func (l *FieldList) HasEmbedMany() bool {
	if l == nil {
		return false
	}
	for _, f := range l.fields {
		if _, ok := f.(EmbedManyField); ok {
			return true
		}
	}
	return false
}
