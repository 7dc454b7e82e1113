// Package logfields defines common logging fields which are used across packages
package logfields

const (
	// Collection is the MongoDB collection name as entered
	Collection = "collection"

	// Class is the generated PHP class name
	Class = "class"

	// Path is a filesystem path
	Path = "path"

	// AbsolutePath is the resolved path of a written file
	AbsolutePath = "absolutePath"

	// Fields is a number of document fields
	Fields = "fields"

	// Bytes is a size in bytes
	Bytes = "bytes"

	// ConfigFile is the config file in use
	ConfigFile = "configFile"

	// Schema is a schema file path
	Schema = "schema"
)
