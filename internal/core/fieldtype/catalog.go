// Package fieldtype holds the mapping types supported by Doctrine MongoDB ODM.
//
// See https://www.doctrine-project.org/projects/doctrine-mongodb-odm/en/current/reference/basic-mapping.html#doctrine-mapping-types
package fieldtype

import "sort"

// Boolean is the type whose getter is named is<Field> instead of get<Field>.
const Boolean = "boolean"

var supported = map[string]struct{}{
	"bin":            {},
	"bin_bytearray":  {},
	"bin_custom":     {},
	"bin_func":       {},
	"bin_md5":        {},
	"bin_uuid":       {},
	Boolean:          {},
	"collection":     {},
	"custom_id":      {},
	"date":           {},
	"date_immutable": {},
	"decimal128":     {},
	"file":           {},
	"float":          {},
	"hash":           {},
	"id":             {},
	"int":            {},
	"key":            {},
	"object_id":      {},
	"raw":            {},
	"string":         {},
	"timestamp":      {},
}

// IsSupported reports whether tag is a known mapping type.
func IsSupported(tag string) bool {
	_, ok := supported[tag]
	return ok
}

// All returns every supported type, sorted.
func All() []string {
	out := make([]string, 0, len(supported))
	for t := range supported {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
