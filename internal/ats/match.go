// Package ats scores how well a resume covers the keywords of a job
// description, the way an applicant tracking system screens candidates.
package ats

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/resume-ats/internal/types"
)

// DefaultMaxSuggestions caps the suggestion list.
const DefaultMaxSuggestions = 5

// NoKeywordsSuggestion is returned when the job description has no extractable keywords.
const NoKeywordsSuggestion = "No keywords found in the job description. Paste the full posting to analyze the match."

const suggestionTemplate = "Consider adding experience or skills related to: %s."

// Options configures a Matcher. Zero values fall back to the defaults.
type Options struct {
	// MaxSuggestions is how many missing keywords are turned into suggestions.
	MaxSuggestions int
	// Concurrency bounds MatchAll; zero means DefaultConcurrency.
	Concurrency int
}

// Matcher compares resumes against job descriptions. It holds no mutable
// state and is safe for concurrent use.
type Matcher struct {
	opts Options
}

// NewMatcher creates a Matcher with the given options.
func NewMatcher(opts Options) *Matcher {
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = DefaultMaxSuggestions
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	return &Matcher{opts: opts}
}

var defaultMatcher = NewMatcher(Options{})

// CalculateMatch scores a structured resume against a job description with
// the default options.
func CalculateMatch(resume *types.StructuredResume, jobDescription string) types.MatchReport {
	return defaultMatcher.CalculateMatch(resume, jobDescription)
}

// CalculateMatchFromText scores raw resume text against a job description
// with the default options.
func CalculateMatchFromText(resumeText, jobDescription string) types.MatchReport {
	return defaultMatcher.CalculateMatchFromText(resumeText, jobDescription)
}

// CalculateMatch scores a structured resume against a job description.
// Contact details are not part of the comparison.
func (m *Matcher) CalculateMatch(resume *types.StructuredResume, jobDescription string) types.MatchReport {
	return m.match(newResumeIndex(flatten(resume)...), jobDescription)
}

// CalculateMatchFromText scores raw resume text against a job description.
func (m *Matcher) CalculateMatchFromText(resumeText, jobDescription string) types.MatchReport {
	return m.match(newResumeIndex(resumeText), jobDescription)
}

// flatten returns the text fields of a resume that take part in matching.
func flatten(resume *types.StructuredResume) []string {
	if resume == nil {
		return nil
	}

	fields := []string{resume.Summary}
	for _, e := range resume.Education {
		fields = append(fields, e.School, e.Degree)
	}
	for _, e := range resume.Experience {
		fields = append(fields, e.Role, e.Company, e.Description)
	}
	for _, p := range resume.Projects {
		fields = append(fields, p.Title, p.Description)
		fields = append(fields, p.TechStack...)
	}
	fields = append(fields, resume.Skills...)
	return fields
}

func (m *Matcher) match(idx *resumeIndex, jobDescription string) types.MatchReport {
	keywords := extractKeywords(jobDescription)

	report := types.MatchReport{
		Matched:       []string{},
		Missing:       []string{},
		Suggestions:   []string{},
		TotalKeywords: len(keywords),
	}

	var missing []keyword
	for _, kw := range keywords {
		if idx.contains(kw.term) {
			report.Matched = append(report.Matched, kw.display)
		} else {
			report.Missing = append(report.Missing, kw.display)
			missing = append(missing, kw)
		}
	}

	if len(keywords) == 0 {
		report.Suggestions = append(report.Suggestions, NoKeywordsSuggestion)
	} else {
		report.Score = computeScore(len(report.Matched), len(keywords))
		report.Suggestions = m.suggestions(missing)
	}
	report.Label = ScoreLabel(report.Score)
	report.Color = ScoreColor(report.Score)

	return report
}

// computeScore is round(100*matched/total), clamped to [0, 100]. A zero total scores 0.
func computeScore(matched, total int) int {
	if total <= 0 {
		return 0
	}
	score := int(math.Round(100 * float64(matched) / float64(total)))
	return clampScore(score)
}

// suggestions turns the most frequent missing keywords into suggestion text.
// Ties keep job-description order.
func (m *Matcher) suggestions(missing []keyword) []string {
	ranked := make([]keyword, len(missing))
	copy(ranked, missing)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	if len(ranked) > m.opts.MaxSuggestions {
		ranked = ranked[:m.opts.MaxSuggestions]
	}

	out := make([]string, 0, len(ranked))
	for _, kw := range ranked {
		out = append(out, fmt.Sprintf(suggestionTemplate, kw.display))
	}
	return out
}
