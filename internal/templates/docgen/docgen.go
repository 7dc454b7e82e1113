// Package docgen provides the templates used to render document classes.
package docgen

import (
	"embed"
	"strings"
	"text/template"
)

// Indent is one level of indentation in generated PHP.
const Indent = "    "

//go:embed class/*.tmpl
var classTemplates embed.FS

// GetClassTemplate returns the content of a class template.
func GetClassTemplate(name string) (string, error) {
	content, err := classTemplates.ReadFile("class/" + name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// TemplateFuncs returns the template function map for class templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"indent": func(level int) string { return strings.Repeat(Indent, level) },
	}
}
