// Package ingestion turns uploaded documents and job posting URLs into the
// cleaned plain text consumed by the resume parser and the match engine.
package ingestion

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format identifies the kind of source a text was extracted from.
type Format string

const (
	// FormatPDF is a PDF document
	FormatPDF Format = "pdf"
	// FormatDOCX is a Word (OOXML) document
	FormatDOCX Format = "docx"
	// FormatText is plain UTF-8 text or Markdown
	FormatText Format = "text"
	// FormatHTML is a fetched web page
	FormatHTML Format = "html"
)

var extensionFormats = map[string]Format{
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".txt":  FormatText,
	".text": FormatText,
	".md":   FormatText,
}

// SupportedExtensions lists the file extensions ExtractText accepts.
func SupportedExtensions() []string {
	return []string{".pdf", ".docx", ".txt", ".md"}
}

// DetectFormat maps a file name to its document format by extension.
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if format, ok := extensionFormats[ext]; ok {
		return format, nil
	}
	return "", &UnsupportedFormatError{Filename: filename, Extension: ext}
}

// ExtractText returns the raw text of a document. The format is chosen from
// the file name; the content itself is never sniffed.
func ExtractText(filename string, data []byte) (string, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	default:
		text = strings.ToValidUTF8(string(data), "")
	}
	if err != nil {
		return "", &ExtractionError{Filename: filename, Format: format, Cause: err}
	}
	return text, nil
}

func extractPDF(data []byte) (text string, err error) {
	// The PDF reader panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return documentXMLText(doc.Editable().GetContent())
}

// documentXMLText flattens WordprocessingML into text, one paragraph per line.
func documentXMLText(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var sb strings.Builder
	inText := false
	tabStops := 0
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to decode document xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tabs":
				tabStops++
			case "tab":
				if tabStops == 0 {
					sb.WriteString("\t")
				}
			case "br", "cr":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "tabs":
				tabStops--
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
