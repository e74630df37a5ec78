package parsing

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/textnorm"
	"github.com/jonathan/resume-ats/internal/types"
)

// graduationPrefixes are dropped from the text around a single graduation date.
var graduationPrefixes = []string{"expected", "graduated", "graduating", "class of", "graduation"}

// educationEntry accumulates the lines of one education entry.
type educationEntry struct {
	text     []string
	dates    dateSpan
	hasDates bool
}

func (e *educationEntry) empty() bool {
	return len(e.text) == 0 && !e.hasDates
}

// complete reports whether the entry already has everything an entry can
// carry, so a further line must belong to the next one.
func (e *educationEntry) complete() bool {
	if !e.hasDates || len(e.text) == 0 {
		return false
	}
	if len(e.text) >= 2 {
		return true
	}
	_, _, split := splitSchoolDegree(e.text[0])
	return split
}

// needsDegree reports whether the entry is still waiting for a degree line.
func (e *educationEntry) needsDegree() bool {
	if len(e.text) != 1 {
		return false
	}
	_, _, split := splitSchoolDegree(e.text[0])
	return !split
}

func (e *educationEntry) build() types.Education {
	edu := types.Education{Start: e.dates.Start, End: e.dates.End}

	switch {
	case len(e.text) == 0:
	case len(e.text) == 1:
		if school, degree, ok := splitSchoolDegree(e.text[0]); ok {
			edu.School, edu.Degree = school, degree
		} else if hasKeyword(e.text[0], degreeKeywords) {
			edu.Degree = e.text[0]
		} else {
			edu.School = e.text[0]
		}
	default:
		if school, degree, ok := splitSchoolDegree(e.text[0]); ok {
			edu.School, edu.Degree = school, degree
		} else if hasKeyword(e.text[0], degreeKeywords) && !hasKeyword(e.text[1], degreeKeywords) {
			edu.Degree, edu.School = e.text[0], e.text[1]
		} else {
			edu.School, edu.Degree = e.text[0], e.text[1]
		}
	}
	return edu
}

// parseEducation groups education lines into entries. Date ranges fill
// start/end; the remaining text is split between school and degree.
func parseEducation(lines []textnorm.Line) []types.Education {
	var entries []types.Education
	current := &educationEntry{}

	flush := func() {
		if !current.empty() {
			entries = append(entries, current.build())
		}
		current = &educationEntry{}
	}

	for _, line := range lines {
		bullet := isBullet(line.Text)
		text := stripBullet(line.Text)

		if line.BreakBefore && !current.empty() {
			flush()
		}

		if span, rest, ok := findDateRange(text); ok {
			if current.hasDates || (rest != "" && current.complete()) {
				flush()
			}
			current.dates, current.hasDates = span, true
			if rest != "" {
				current.text = append(current.text, rest)
			}
			continue
		}

		if !current.hasDates {
			if date, rest, ok := findSingleDate(text); ok {
				rest = trimGraduationPrefix(rest)
				if rest != "" && current.complete() {
					flush()
				}
				current.dates, current.hasDates = dateSpan{End: date}, true
				if rest != "" {
					current.text = append(current.text, rest)
				}
				continue
			}
		}

		// Bullets under an entry (GPA, honors, coursework) carry no school or degree.
		if bullet && len(current.text) > 0 {
			continue
		}

		if current.complete() || (current.hasDates && !current.needsDegree() && len(current.text) > 0) {
			flush()
		} else if len(current.text) >= 2 {
			flush()
		}
		current.text = append(current.text, text)
	}
	flush()

	return entries
}

// splitSchoolDegree splits a line holding both the school and the degree.
// Comma splits prefer a part carrying a degree keyword, then a field of study
// outside the school name, so that "University of California, Berkeley" stays
// a single school while "Stanford University, Computer Science" splits.
func splitSchoolDegree(line string) (string, string, bool) {
	if parts := strings.Split(line, ","); len(parts) > 1 {
		if school, degree, ok := splitOnDegreePart(line, parts, func(part string) bool {
			return hasKeyword(part, degreeKeywords)
		}); ok {
			return school, degree, true
		}
		if school, degree, ok := splitOnDegreePart(line, parts, func(part string) bool {
			return hasKeyword(part, fieldKeywords) && !hasKeyword(part, schoolKeywords)
		}); ok {
			return school, degree, true
		}
	}

	for _, sep := range []string{" | ", " — ", " – ", " - "} {
		idx := strings.Index(line, sep)
		if idx <= 0 {
			continue
		}
		left, right := trimPart(line[:idx]), trimPart(line[idx+len(sep):])
		if left == "" || right == "" {
			continue
		}
		if hasKeyword(left, degreeKeywords) && !hasKeyword(right, degreeKeywords) {
			return right, left, true
		}
		return left, right, true
	}
	return "", "", false
}

// splitOnDegreePart splits line at the first comma-separated part accepted by
// isDegree. A leading degree part is followed by the school, any other by
// everything after it.
func splitOnDegreePart(line string, parts []string, isDegree func(string) bool) (string, string, bool) {
	for i, part := range parts {
		if !isDegree(part) {
			continue
		}
		if i == 0 {
			return trimPart(strings.Join(parts[1:], ",")), trimPart(part), true
		}
		prefix := strings.Join(parts[:i], ",")
		return trimPart(prefix), trimPart(line[len(prefix)+1:]), true
	}
	return "", "", false
}

func trimPart(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), ",|-–—"))
}

func trimGraduationPrefix(s string) string {
	for _, prefix := range graduationPrefixes {
		if hasSuffixFold(s, prefix) {
			return cleanRemainder(s[:len(s)-len(prefix)])
		}
		if hasPrefixFold(s, prefix) {
			return cleanRemainder(s[len(prefix):])
		}
	}
	return s
}
