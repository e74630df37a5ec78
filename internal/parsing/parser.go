// Package parsing converts raw resume text into a StructuredResume using
// line classification, section detection and pattern matching.
//
// Parsing is total: any input, including empty or malformed text, yields a
// StructuredResume. Fields that cannot be detected are left empty.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/textnorm"
	"github.com/jonathan/resume-ats/internal/types"
)

// Default parser settings.
const (
	DefaultContactWindow  = 15
	DefaultMaxHeaderWords = 4
	DefaultMaxSkillWords  = 4
)

// Options configures a Parser. Zero values fall back to the defaults.
type Options struct {
	// ContactWindow is how many leading lines are scanned for contact details.
	ContactWindow int
	// MaxHeaderWords is the longest line, in words, still treated as a section header.
	MaxHeaderWords int
	// MaxSkillWords is the longest undelimited line, in words, accepted as a skill.
	MaxSkillWords int
}

// DefaultOptions returns the default parser settings.
func DefaultOptions() Options {
	return Options{
		ContactWindow:  DefaultContactWindow,
		MaxHeaderWords: DefaultMaxHeaderWords,
		MaxSkillWords:  DefaultMaxSkillWords,
	}
}

// Parser is a configured heuristic resume parser. It holds no mutable state
// and is safe for concurrent use.
type Parser struct {
	opts Options
}

// New creates a Parser with the given options.
func New(opts Options) *Parser {
	defaults := DefaultOptions()
	if opts.ContactWindow <= 0 {
		opts.ContactWindow = defaults.ContactWindow
	}
	if opts.MaxHeaderWords <= 0 {
		opts.MaxHeaderWords = defaults.MaxHeaderWords
	}
	if opts.MaxSkillWords <= 0 {
		opts.MaxSkillWords = defaults.MaxSkillWords
	}
	return &Parser{opts: opts}
}

// Options returns the effective options of the parser.
func (p *Parser) Options() Options {
	return p.opts
}

var defaultParser = New(DefaultOptions())

// Parse parses raw resume text with the default options.
func Parse(raw string) *types.StructuredResume {
	return defaultParser.Parse(raw)
}

// ParseLines parses a pre-split line sequence with the default options.
func ParseLines(text types.ResumeText) *types.StructuredResume {
	return defaultParser.ParseLines(text)
}

// Parse parses raw resume text.
func (p *Parser) Parse(raw string) *types.StructuredResume {
	return p.parse(textnorm.SplitLines(raw))
}

// ParseLines parses a pre-split line sequence. Blank entries mark paragraph breaks.
func (p *Parser) ParseLines(text types.ResumeText) *types.StructuredResume {
	return p.parse(textnorm.FromStrings(text))
}

// ParseWithConfidence parses raw text and scores the result.
func (p *Parser) ParseWithConfidence(raw string) types.ParsedResume {
	resume := p.Parse(raw)
	return types.ParsedResume{Resume: resume, Confidence: Confidence(resume)}
}

func (p *Parser) parse(lines []textnorm.Line) *types.StructuredResume {
	resume := types.NewStructuredResume()
	if len(lines) == 0 {
		return resume
	}

	blocks, firstHeader := p.segment(lines)
	resume.Personal = p.extractContact(lines, firstHeader)

	var summary []string
	for _, b := range blocks {
		switch b.kind {
		case sectionSummary:
			for _, l := range b.lines {
				summary = append(summary, l.Text)
			}
		case sectionEducation:
			resume.Education = append(resume.Education, parseEducation(b.lines)...)
		case sectionExperience:
			resume.Experience = append(resume.Experience, parseExperience(b.lines)...)
		case sectionProjects:
			resume.Projects = append(resume.Projects, parseProjects(b.lines)...)
		case sectionSkills:
			resume.Skills = mergeSkills(resume.Skills, parseSkills(b.lines, p.opts.MaxSkillWords))
		}
	}
	resume.Summary = strings.Join(summary, " ")

	return resume
}

// block is a run of lines attributed to one section.
type block struct {
	kind  section
	lines []textnorm.Line
}

// segment walks the lines with the section state machine. A recognized header
// switches the state; every other line is appended to the current state's
// block. It returns the blocks in document order and the index of the first
// header line (len(lines) when there is none).
func (p *Parser) segment(lines []textnorm.Line) ([]block, int) {
	var blocks []block
	firstHeader := len(lines)
	current := block{kind: sectionNone}

	for i, line := range lines {
		kind, rest, ok := p.classifyHeader(line.Text)
		if !ok {
			current.lines = append(current.lines, line)
			continue
		}

		if firstHeader == len(lines) {
			firstHeader = i
		}
		blocks = append(blocks, current)
		current = block{kind: kind}
		if rest != "" {
			current.lines = append(current.lines, textnorm.Line{Text: rest})
		}
	}
	blocks = append(blocks, current)

	return blocks, firstHeader
}

// classifyHeader reports whether text is a section header and which section it
// opens. For the inline "Education: B.S. Physics, MIT" form it also returns the
// content after the colon.
func (p *Parser) classifyHeader(text string) (section, string, bool) {
	if isBullet(text) {
		return sectionNone, "", false
	}

	if kind, rest, ok := inlineHeader(text); ok && (kind == sectionSkills || !isLinkLike(rest)) {
		return kind, rest, true
	}

	key := normalizeHeader(text)
	if key == "" || textnorm.WordCount(key) > p.opts.MaxHeaderWords {
		return sectionNone, "", false
	}
	if kind, ok := headerVocabulary[key]; ok {
		return kind, "", true
	}

	// Compound headers ("Skills & Interests") resolve by their first part.
	for _, sep := range []string{" & ", " and ", "/"} {
		if i := strings.Index(key, sep); i > 0 {
			if kind, ok := headerVocabulary[strings.TrimSpace(key[:i])]; ok {
				return kind, "", true
			}
		}
	}
	return sectionNone, "", false
}

// inlineHeader splits a "Label: content" line whose label is a known header.
func inlineHeader(text string) (section, string, bool) {
	label, rest, found := strings.Cut(text, ":")
	rest = strings.TrimSpace(rest)
	if !found || rest == "" {
		return sectionNone, "", false
	}
	kind, ok := headerVocabulary[normalizeHeader(label)]
	return kind, rest, ok
}

// isLinkLike reports whether s is contact information or a bare domain, as in
// "Portfolio: janedoe.dev", rather than section content.
func isLinkLike(s string) bool {
	return hasContactToken(s) || (!strings.Contains(s, " ") && strings.Contains(strings.TrimRight(s, "."), "."))
}

// normalizeHeader lower-cases a candidate header and strips markdown and
// punctuation decoration around it.
func normalizeHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "#=*_~ ")
	s = strings.TrimRight(s, ":=*_~-– ")
	return strings.ToLower(textnorm.CollapseWhitespace(s))
}

// isBullet reports whether line opens with a bullet glyph.
func isBullet(line string) bool {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// stripBullet removes a leading bullet glyph.
func stripBullet(line string) string {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return line
}

// endsSentence reports whether line reads like prose rather than a heading.
func endsSentence(line string) bool {
	return strings.HasSuffix(line, ".") || strings.HasSuffix(line, "!") || strings.HasSuffix(line, "?")
}

// hasKeyword reports whether any word of s, lower-cased and stripped of
// surrounding punctuation, is present in table.
func hasKeyword(s string, table map[string]bool) bool {
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.Trim(word, ",;:()[]|")
		if table[word] || table[strings.TrimRight(word, ".")] {
			return true
		}
	}
	return false
}

// hasPrefixFold is a case-insensitive strings.HasPrefix for ASCII prefixes.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// hasSuffixFold is a case-insensitive strings.HasSuffix for ASCII suffixes.
func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
