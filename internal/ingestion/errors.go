package ingestion

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrHTTPRequestFailed is returned when a job posting cannot be fetched
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrEmptyContent is returned when a source yields no text after cleaning
	ErrEmptyContent = errors.New("no text content found")
)

// UnsupportedFormatError is returned for files whose extension is not a
// supported document type.
type UnsupportedFormatError struct {
	Filename  string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	ext := e.Extension
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Sprintf("unsupported file type %s for %q (supported: %s)",
		ext, e.Filename, strings.Join(SupportedExtensions(), ", "))
}

// ExtractionError is returned when a document of a supported type cannot be read.
type ExtractionError struct {
	Filename string
	Format   Format
	Cause    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s text from %q: %v", e.Format, e.Filename, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
