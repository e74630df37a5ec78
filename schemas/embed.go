// Package schemas embeds the JSON Schemas for the documents resume-ats emits.
package schemas

import (
	"embed"
	"fmt"
	"io/fs"
)

// Schema file names.
const (
	StructuredResume = "structured_resume.schema.json"
	MatchReport      = "match_report.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Names lists the embedded schema files in lexical order.
func Names() []string {
	names, _ := fs.Glob(files, "*.schema.json")
	return names
}

// Load returns the content of an embedded schema.
func Load(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("embedded schema %s: %w", name, err)
	}
	return data, nil
}
