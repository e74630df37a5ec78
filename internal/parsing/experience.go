package parsing

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/textnorm"
	"github.com/jonathan/resume-ats/internal/types"
)

// maxHeaderLineWords bounds an experience or project heading line.
const maxHeaderLineWords = 10

// roleFirstSeparators put the role on the left by default ("Engineer at Acme").
var roleFirstSeparators = []string{" at ", " At ", " AT ", " @ "}

// companyFirstSeparators put the company on the left by default ("Acme — Engineer").
var companyFirstSeparators = []string{" — ", " – ", " - ", " | ", ", "}

// experienceEntry accumulates the lines of one experience entry.
type experienceEntry struct {
	header   []string
	desc     []string
	dates    dateSpan
	hasDates bool
}

func (e *experienceEntry) empty() bool {
	return len(e.header) == 0 && len(e.desc) == 0 && !e.hasDates
}

// acceptsHeading reports whether line can still extend the entry heading.
func (e *experienceEntry) acceptsHeading(line string) bool {
	if len(e.header) >= 2 || !isShortHeading(line) || hasKeyword(line, skillVerbStoplist) {
		return false
	}
	if len(e.header) == 1 && e.hasDates {
		_, _, split := splitRoleCompany(e.header[0])
		return !split
	}
	return true
}

func (e *experienceEntry) build() types.Experience {
	exp := types.Experience{Start: e.dates.Start, End: e.dates.End}
	desc := e.desc

	switch {
	case len(e.header) == 0:
	case len(e.header) == 1:
		if role, company, ok := splitRoleCompany(e.header[0]); ok {
			exp.Role, exp.Company = role, company
		} else if hasKeyword(e.header[0], roleKeywords) {
			exp.Role = e.header[0]
		} else {
			exp.Company = e.header[0]
		}
	default:
		if role, company, ok := splitRoleCompany(e.header[0]); ok {
			exp.Role, exp.Company = role, company
			// A second heading line is usually a location or team.
			desc = append(append([]string{}, e.header[1:]...), desc...)
		} else if hasKeyword(e.header[0], roleKeywords) && !hasKeyword(e.header[1], roleKeywords) {
			exp.Role, exp.Company = e.header[0], e.header[1]
			desc = append(append([]string{}, e.header[2:]...), desc...)
		} else {
			exp.Company, exp.Role = e.header[0], e.header[1]
			desc = append(append([]string{}, e.header[2:]...), desc...)
		}
	}

	exp.Description = strings.Join(desc, "\n")
	return exp
}

// parseExperience groups experience lines into entries. Heading lines carry
// the role and company, a date range opens or dates the entry, and the
// remaining lines form the description with line breaks preserved.
func parseExperience(lines []textnorm.Line) []types.Experience {
	var entries []types.Experience
	current := &experienceEntry{}

	flush := func() {
		if !current.empty() {
			entries = append(entries, current.build())
		}
		current = &experienceEntry{}
	}

	for _, line := range lines {
		if isBullet(line.Text) {
			current.desc = append(current.desc, line.Text)
			continue
		}

		if line.BreakBefore && !current.empty() {
			flush()
		}

		if span, rest, ok := findDateRange(line.Text); ok {
			if current.hasDates || len(current.desc) > 0 {
				flush()
			}
			current.dates, current.hasDates = span, true
			if rest != "" {
				current.header = append(current.header, rest)
			}
			continue
		}

		heading := isExperienceHeading(line.Text)
		switch {
		case heading && len(current.desc) > 0:
			flush()
			current.header = append(current.header, line.Text)
		case heading && current.hasDates && len(current.header) >= 2:
			flush()
			current.header = append(current.header, line.Text)
		case len(current.desc) == 0 && current.acceptsHeading(line.Text):
			current.header = append(current.header, line.Text)
		default:
			current.desc = append(current.desc, line.Text)
		}
	}
	flush()

	return entries
}

// isShortHeading reports whether line could be part of an entry heading.
func isShortHeading(line string) bool {
	return textnorm.WordCount(line) <= maxHeaderLineWords && !endsSentence(line)
}

// isExperienceHeading reports whether line looks like "Role at Company" or
// "Company — Role".
func isExperienceHeading(line string) bool {
	if !isShortHeading(line) {
		return false
	}
	_, _, ok := splitRoleCompany(line)
	return ok
}

// splitRoleCompany splits a heading line into role and company. Both orders
// are tried; role keywords decide when the separator default is wrong.
func splitRoleCompany(line string) (string, string, bool) {
	for _, sep := range roleFirstSeparators {
		if left, right, ok := cutTrimmed(line, sep); ok {
			if hasKeyword(right, roleKeywords) && !hasKeyword(left, roleKeywords) {
				return right, left, true
			}
			return left, right, true
		}
	}
	for _, sep := range companyFirstSeparators {
		if left, right, ok := cutTrimmed(line, sep); ok {
			if hasKeyword(left, roleKeywords) && !hasKeyword(right, roleKeywords) {
				return left, right, true
			}
			return right, left, true
		}
	}
	return "", "", false
}

// cutTrimmed splits s around the first sep and requires both halves to be non-empty.
func cutTrimmed(s, sep string) (string, string, bool) {
	before, after, found := strings.Cut(s, sep)
	if !found {
		return "", "", false
	}
	before, after = trimPart(before), trimPart(after)
	if before == "" || after == "" {
		return "", "", false
	}
	return before, after, true
}
