// Package observability provides logging, metrics and formatted output
// utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-ats/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends up to limit items as bullets, with a "more" line for the rest.
func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

func dateRange(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case end != "":
		return end
	default:
		return start
	}
}

// PrintResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResume(resume *types.StructuredResume, confidence int) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", resume.Personal.FullName))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", resume.Personal.Email))
	if resume.Personal.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:      %s\n", resume.Personal.Phone))
	}
	if resume.Personal.GitHub != "" {
		sb.WriteString(fmt.Sprintf("GitHub:     %s\n", resume.Personal.GitHub))
	}
	if resume.Personal.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn:   %s\n", resume.Personal.LinkedIn))
	}
	sb.WriteString(fmt.Sprintf("Confidence: %d%%\n", confidence))
	sb.WriteString("\n")

	if len(resume.Education) > 0 {
		sb.WriteString("Education:\n")
		items := make([]string, 0, len(resume.Education))
		for _, edu := range resume.Education {
			item := edu.School
			if edu.Degree != "" {
				item += ", " + edu.Degree
			}
			if dates := dateRange(edu.Start, edu.End); dates != "" {
				item += " (" + dates + ")"
			}
			items = append(items, item)
		}
		writeList(&sb, items, maxItemsToShow)
		sb.WriteString("\n")
	}

	if len(resume.Experience) > 0 {
		sb.WriteString("Experience:\n")
		items := make([]string, 0, len(resume.Experience))
		for _, exp := range resume.Experience {
			item := exp.Role
			if exp.Company != "" {
				if item != "" {
					item += " @ "
				}
				item += exp.Company
			}
			if dates := dateRange(exp.Start, exp.End); dates != "" {
				item += " (" + dates + ")"
			}
			items = append(items, item)
		}
		writeList(&sb, items, maxItemsToShow)
		sb.WriteString("\n")
	}

	if len(resume.Projects) > 0 {
		sb.WriteString("Projects:\n")
		items := make([]string, 0, len(resume.Projects))
		for _, proj := range resume.Projects {
			item := proj.Title
			if len(proj.TechStack) > 0 {
				item += " [" + strings.Join(proj.TechStack, ", ") + "]"
			}
			items = append(items, item)
		}
		writeList(&sb, items, 3)
		sb.WriteString("\n")
	}

	if len(resume.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(resume.Skills)))
		sb.WriteString("  " + truncate(strings.Join(resume.Skills, ", "), boxWidth-6) + "\n")
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchReport outputs the score, keyword coverage and suggestions of a match.
func (p *Printer) PrintMatchReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100 (%s)\n", report.Score, report.Label))
	sb.WriteString(fmt.Sprintf("Keywords: %d matched of %d\n", len(report.Matched), report.TotalKeywords))
	sb.WriteString("\n")

	if len(report.Matched) > 0 {
		sb.WriteString("Matched:\n")
		writeList(&sb, report.Matched, maxItemsToShow)
		sb.WriteString("\n")
	}

	if len(report.Missing) > 0 {
		sb.WriteString("Missing:\n")
		writeList(&sb, report.Missing, maxItemsToShow)
		sb.WriteString("\n")
	}

	if len(report.Suggestions) > 0 {
		sb.WriteString("Suggestions:\n")
		for _, s := range report.Suggestions {
			sb.WriteString(fmt.Sprintf("  → %s\n", s))
		}
	}

	p.printBox("ATS MATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs one line per job description with its score.
func (p *Printer) PrintBatchSummary(names []string, reports []types.MatchReport) {
	if len(reports) == 0 {
		return
	}

	var sb strings.Builder
	best := 0
	for i, report := range reports {
		name := fmt.Sprintf("#%d", i+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		sb.WriteString(fmt.Sprintf("%3d  %-12s %s\n", report.Score, report.Label, truncate(name, 30)))
		if report.Score > reports[best].Score {
			best = i
		}
	}
	sb.WriteString(fmt.Sprintf("\nBest match: #%d (%d)", best+1, reports[best].Score))

	p.printBox("BATCH MATCH SUMMARY", sb.String())
}
