package parsing

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/textnorm"
)

const maxSkillLength = 50

// listDelimiters separate items on a skills or tech-stack line. A slash is
// not one of them, so "CI/CD" survives.
const listDelimiters = ",|;•·"

// parseSkills flattens skills lines into a deduplicated list. A line is either
// delimited ("Python, React | SQL") or a single short skill without verbs.
// A leading "Languages:" style label is dropped.
func parseSkills(lines []textnorm.Line, maxWords int) []string {
	skills := []string{}
	for _, line := range lines {
		text := stripSkillLabel(stripBullet(line.Text))
		if text == "" {
			continue
		}

		if strings.ContainsAny(text, listDelimiters) {
			skills = appendUnique(skills, splitList(text)...)
			continue
		}

		if textnorm.WordCount(text) <= maxWords && !hasKeyword(text, skillVerbStoplist) && !endsSentence(text) {
			skills = appendUnique(skills, cleanSkill(text))
		}
	}
	return skills
}

// mergeSkills appends skills from a later block, keeping first-seen casing.
func mergeSkills(existing, more []string) []string {
	return appendUnique(existing, more...)
}

// splitList splits a delimited list into cleaned, non-empty items.
func splitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(listDelimiters, r)
	})
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := cleanSkill(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// cleanSkill trims bullets, a leading conjunction and trailing punctuation.
// Items longer than maxSkillLength are rejected.
func cleanSkill(s string) string {
	s = strings.TrimSpace(stripBullet(strings.TrimSpace(s)))
	for _, conj := range []string{"and ", "& "} {
		if hasPrefixFold(s, conj) {
			s = strings.TrimSpace(s[len(conj):])
			break
		}
	}
	s = strings.TrimRight(s, ".;: ")
	if len(s) > maxSkillLength || !textnorm.HasLetter(s) {
		return ""
	}
	return s
}

// stripSkillLabel removes a short "Label:" prefix such as "Languages:". A line
// labelled with another section's header ("Portfolio: janedoe.dev") is not a
// skill and yields "".
func stripSkillLabel(s string) string {
	if kind, _, ok := inlineHeader(s); ok && kind != sectionSkills {
		return ""
	}
	label, rest, found := strings.Cut(s, ":")
	if !found || textnorm.WordCount(label) > 3 || strings.ContainsAny(label, listDelimiters) {
		return s
	}
	return strings.TrimSpace(rest)
}
