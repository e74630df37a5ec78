package parsing

import (
	"regexp"
	"strings"
)

// All patterns are RE2 (linear-time); none of them can backtrack catastrophically.

const (
	monthPattern = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?`
	// datePoint is "Jan 2020", "01/2020" or a bare 19xx/20xx year.
	datePoint = `(?:` + monthPattern + `\s+\d{4}|\d{1,2}/\d{4}|(?:19|20)\d{2})`
	dateEnd   = `(?:` + datePoint + `|present|current|now|today)`
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// phoneRe is any run of digit groups joined by spaces, dots, dashes or
	// parentheses; findPhone bounds the digit count.
	phoneRe = regexp.MustCompile(`\+?\(?\d[\d\s.\-()]{7,}\d`)

	githubURLRe     = regexp.MustCompile(`(?i)github\.com/([A-Za-z0-9][A-Za-z0-9\-]{0,38})`)
	githubKeywordRe = regexp.MustCompile(`(?i)\bgithub\b\s*(?::\s*@?|@)([A-Za-z0-9][A-Za-z0-9\-]{0,38})`)

	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/in/[A-Za-z0-9_%\-]+`)

	urlRe = regexp.MustCompile(`(?i)\bhttps?://[^\s()<>]+|\b(?:www\.)?(?:github\.com|gitlab\.com|bitbucket\.org)/[^\s()<>]+`)

	dateRangeRe  = regexp.MustCompile(`(?i)\b(` + datePoint + `)\s*(?:-|–|—|to|until)\s*(` + dateEnd + `)\b`)
	singleDateRe = regexp.MustCompile(`(?i)\b(` + datePoint + `)\b`)
)

// Phone matches must carry between minPhoneDigits and maxPhoneDigits digits
// (E.164 allows at most 15).
const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// dateSpan is a start/end pair found in a line.
type dateSpan struct {
	Start string
	End   string
}

// findDateRange locates a date range in line and returns it together with the
// line text that remains once the range is removed.
func findDateRange(line string) (dateSpan, string, bool) {
	loc := dateRangeRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return dateSpan{}, line, false
	}
	span := dateSpan{
		Start: line[loc[2]:loc[3]],
		End:   normalizeOpenEnd(line[loc[4]:loc[5]]),
	}
	rest := cleanRemainder(line[:loc[0]] + " " + line[loc[1]:])
	return span, rest, true
}

// findSingleDate locates a lone date ("May 2024", "2024") in line.
func findSingleDate(line string) (string, string, bool) {
	loc := singleDateRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", line, false
	}
	date := line[loc[2]:loc[3]]
	rest := cleanRemainder(line[:loc[0]] + " " + line[loc[1]:])
	return date, rest, true
}

// normalizeOpenEnd maps the open-ended spellings to "Present".
func normalizeOpenEnd(end string) string {
	switch strings.ToLower(end) {
	case "present", "current", "now", "today":
		return "Present"
	}
	return end
}

// cleanRemainder trims separators left behind once a date or URL is cut out of a line.
func cleanRemainder(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimSpace(strings.Trim(s, " ,|-–—()[]:;"))
	s = strings.TrimSuffix(s, " (")
	s = strings.ReplaceAll(s, "()", "")
	return strings.Join(strings.Fields(s), " ")
}

// findPhone returns the first phone-like token whose digit count falls in
// [minPhoneDigits, maxPhoneDigits].
func findPhone(line string) string {
	for _, candidate := range phoneRe.FindAllString(line, -1) {
		if n := countDigits(candidate); n >= minPhoneDigits && n <= maxPhoneDigits {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// findGitHub returns the GitHub handle referenced in line, if any.
func findGitHub(line string) string {
	if m := githubURLRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := githubKeywordRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// findURL returns the first URL in line with trailing punctuation removed.
func findURL(line string) string {
	u := urlRe.FindString(line)
	return strings.TrimRight(u, ".,;:")
}
