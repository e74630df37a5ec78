package parsing

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-ats/internal/textnorm"
	"github.com/jonathan/resume-ats/internal/types"
)

const maxNameLength = 50

// extractContact scans the contact window for personal details. Email and
// profile links missing from the window are looked up in the whole document.
// The name is only taken from lines above the first section header.
func (p *Parser) extractContact(lines []textnorm.Line, firstHeader int) types.Personal {
	window := lines
	if len(window) > p.opts.ContactWindow {
		window = window[:p.opts.ContactWindow]
	}

	var personal types.Personal
	for _, l := range window {
		if personal.Email == "" {
			personal.Email = emailRe.FindString(l.Text)
		}
		if personal.Phone == "" {
			personal.Phone = findPhone(l.Text)
		}
		if personal.GitHub == "" {
			personal.GitHub = findGitHub(l.Text)
		}
		if personal.LinkedIn == "" {
			personal.LinkedIn = linkedinRe.FindString(l.Text)
		}
	}

	for _, l := range lines[len(window):] {
		if personal.Email != "" && personal.GitHub != "" && personal.LinkedIn != "" {
			break
		}
		if personal.Email == "" {
			personal.Email = emailRe.FindString(l.Text)
		}
		if personal.GitHub == "" {
			personal.GitHub = findGitHub(l.Text)
		}
		if personal.LinkedIn == "" {
			personal.LinkedIn = linkedinRe.FindString(l.Text)
		}
	}

	for i, l := range window {
		if i >= firstHeader {
			break
		}
		if name := nameCandidate(l.Text); name != "" {
			personal.FullName = name
			break
		}
	}

	return personal
}

// nameCandidate returns the part of line that looks like a person's name, or
// "" when it does not. A line such as "Jane Doe | jane@example.com" yields
// its leading segment.
func nameCandidate(line string) string {
	candidate := line
	if hasContactToken(candidate) {
		idx := strings.IndexAny(candidate, "|•·")
		if idx <= 0 {
			return ""
		}
		candidate = strings.TrimSpace(candidate[:idx])
		if hasContactToken(candidate) {
			return ""
		}
	}
	if looksLikeName(candidate) {
		return candidate
	}
	return ""
}

func hasContactToken(s string) bool {
	if emailRe.MatchString(s) || findPhone(s) != "" || urlRe.MatchString(s) || linkedinRe.MatchString(s) {
		return true
	}
	lower := strings.ToLower(s)
	return strings.Contains(lower, "github") || strings.Contains(lower, "linkedin")
}

// looksLikeName accepts two to four capitalized words made of letters and the
// punctuation found in names, with no digits and a bounded length.
func looksLikeName(s string) bool {
	if s == "" || len(s) > maxNameLength || textnorm.HasDigit(s) {
		return false
	}

	words := strings.Fields(s)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	lower := strings.ToLower(s)
	if _, isHeader := headerVocabulary[lower]; isHeader {
		return false
	}
	for _, title := range documentTitles {
		if lower == title || strings.HasPrefix(lower, title+" ") {
			return false
		}
	}
	if hasKeyword(s, roleKeywords) {
		return false
	}

	for _, w := range words {
		first := []rune(w)[0]
		if !unicode.IsUpper(first) {
			return false
		}
		for _, r := range w {
			if !unicode.IsLetter(r) && r != '.' && r != '\'' && r != '-' && r != '’' {
				return false
			}
		}
	}
	return true
}
