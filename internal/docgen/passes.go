package docgen

import (
	"fmt"

	"github.com/example/docmaker/internal/core/fieldtype"
	"github.com/example/docmaker/internal/core/naming"
	"github.com/example/docmaker/internal/models"
)

const idProperty = "id"

// propertyPass declares the identifier followed by every field in order.
func propertyPass(fields []models.Field) []property {
	props := make([]property, 0, len(fields)+1)
	props = append(props, property{Name: idProperty, Annotation: `@MongoDB\Id`})

	for _, f := range fields {
		var annotation string
		switch f := f.(type) {
		case models.ScalarField:
			annotation = fmt.Sprintf(`@MongoDB\Field(type="%s")`, f.Type)
		case models.EmbedOneField:
			annotation = fmt.Sprintf(`@MongoDB\EmbedOne(targetDocument=%s::class)`, naming.ToPascalCase(f.Target))
		case models.EmbedManyField:
			annotation = fmt.Sprintf(`@MongoDB\EmbedMany(targetDocument=%s::class)`, naming.ToPascalCase(f.Target))
		}
		props = append(props, property{Name: f.FieldName(), Annotation: annotation})
	}

	return props
}

// constructorPass returns the embed-many properties in order.
func constructorPass(fields []models.Field) []string {
	var names []string
	for _, f := range fields {
		if f, ok := f.(models.EmbedManyField); ok {
			names = append(names, f.Name)
		}
	}
	return names
}

// accessorPass names the getter and fluent setter of the identifier and of
// every field in order.
func accessorPass(fields []models.Field) []accessor {
	accessors := make([]accessor, 0, len(fields)+1)
	accessors = append(accessors, newAccessor(idProperty, "get"))

	for _, f := range fields {
		prefix := "get"
		if s, ok := f.(models.ScalarField); ok && s.Type == fieldtype.Boolean {
			prefix = "is"
		}
		accessors = append(accessors, newAccessor(f.FieldName(), prefix))
	}

	return accessors
}

func newAccessor(name, getterPrefix string) accessor {
	suffix := naming.ToPascalCase(name)
	return accessor{
		Property: name,
		Getter:   getterPrefix + suffix,
		Setter:   "set" + suffix,
	}
}
