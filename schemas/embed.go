// Package schemas holds the declarative JSON Schema documents shared by validation and prompt contracts.
package schemas

import "embed"

// File names of the embedded schema documents
const (
	ResumeSchemaFile     = "resume.schema.json"
	GenerationSchemaFile = "generation.schema.json"
)

// Version of the canonical resume schema
const Version = "1.0"

//go:embed *.schema.json
var files embed.FS

// Read returns the raw contents of an embedded schema document
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}

// Names lists the embedded schema documents
func Names() []string {
	return []string{ResumeSchemaFile, GenerationSchemaFile}
}
