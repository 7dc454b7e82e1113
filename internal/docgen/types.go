// Package docgen generates Doctrine MongoDB ODM document classes.
package docgen

// classData is the template input for one document class.
type classData struct {
	Namespace          string
	Collection         string // collection name as entered
	DocumentAnnotation string // "Document" or "EmbeddedDocument"
	ClassName          string
	Properties         []property
	HasConstructor     bool     // true when an embed-many field needs an ArrayCollection
	Collections        []string // embed-many properties initialised in the constructor
	Accessors          []accessor
}

type property struct {
	Name       string
	Annotation string
}

type accessor struct {
	Property string
	Getter   string
	Setter   string
}
