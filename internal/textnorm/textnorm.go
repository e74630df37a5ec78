// Package textnorm provides the line and token normalization shared by the resume parser and the ATS match engine.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Line is a normalized, non-empty line of source text.
type Line struct {
	Text string
	// BreakBefore is true when one or more blank lines preceded this line.
	BreakBefore bool
}

// SplitLines normalizes line endings, collapses whitespace runs inside each line
// and drops whitespace-only lines. Order and casing are preserved.
func SplitLines(raw string) []Line {
	if raw == "" {
		return nil
	}

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	parts := strings.Split(raw, "\n")
	lines := make([]Line, 0, len(parts))
	pendingBreak := false
	for _, part := range parts {
		text := CollapseWhitespace(part)
		if text == "" {
			pendingBreak = len(lines) > 0
			continue
		}
		lines = append(lines, Line{Text: text, BreakBefore: pendingBreak})
		pendingBreak = false
	}
	return lines
}

// Lines returns the plain text of SplitLines.
func Lines(raw string) []string {
	split := SplitLines(raw)
	out := make([]string, len(split))
	for i, l := range split {
		out[i] = l.Text
	}
	return out
}

// FromStrings builds normalized lines from a pre-split sequence, dropping blanks.
func FromStrings(lines []string) []Line {
	out := make([]Line, 0, len(lines))
	pendingBreak := false
	for _, s := range lines {
		text := CollapseWhitespace(s)
		if text == "" {
			pendingBreak = len(out) > 0
			continue
		}
		out = append(out, Line{Text: text, BreakBefore: pendingBreak})
		pendingBreak = false
	}
	return out
}

// CollapseWhitespace trims s and replaces every whitespace run with a single space.
// Invalid UTF-8 sequences are replaced with U+FFFD.
func CollapseWhitespace(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "�")
	}
	return strings.Join(strings.Fields(s), " ")
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// HasDigit reports whether s contains a decimal digit.
func HasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// HasLetter reports whether s contains a letter.
func HasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
