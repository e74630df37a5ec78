package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-ats/internal/types"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := types.NewStructuredResume()
	resume.Personal = types.Personal{FullName: "Jane Doe", Email: "jane@example.com", GitHub: "janedoe"}
	resume.Education = append(resume.Education, types.Education{School: "MIT", Degree: "B.S. Computer Science", Start: "2020", End: "2024"})
	resume.Experience = append(resume.Experience, types.Experience{Company: "Acme", Role: "Software Engineer", Start: "Jan 2022", End: "Present"})
	resume.Projects = append(resume.Projects, types.Project{Title: "Resume Parser", TechStack: []string{"Go", "Regex"}})
	resume.Skills = []string{"Python", "React", "SQL"}

	p.PrintResume(resume, 100)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "janedoe")
	assert.Contains(t, output, "Confidence: 100%")
	assert.Contains(t, output, "MIT, B.S. Computer Science (2020 - 2024)")
	assert.Contains(t, output, "Software Engineer @ Acme (Jan 2022 - Present)")
	assert.Contains(t, output, "Resume Parser [Go, Regex]")
	assert.Contains(t, output, "Python, React, SQL")
	assert.NotContains(t, output, "Phone:")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume(nil, 0)
	assert.Empty(t, buf.String())
}

func TestPrintResume_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	resume := types.NewStructuredResume()
	for i := 0; i < 7; i++ {
		resume.Experience = append(resume.Experience, types.Experience{Company: "Acme"})
	}

	NewPrinter(&buf).PrintResume(resume, 25)
	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintMatchReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.MatchReport{
		Score:         33,
		Label:         "Needs Work",
		Color:         "red",
		Matched:       []string{"Python"},
		Missing:       []string{"React", "Docker"},
		Suggestions:   []string{"Consider adding experience or skills related to: React."},
		TotalKeywords: 3,
	}

	p.PrintMatchReport(report)
	output := buf.String()

	assert.Contains(t, output, "ATS MATCH REPORT")
	assert.Contains(t, output, "Score:    33/100 (Needs Work)")
	assert.Contains(t, output, "Keywords: 1 matched of 3")
	assert.Contains(t, output, "• Docker")
	assert.Contains(t, output, "→ Consider adding")
}

func TestPrintMatchReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	reports := []types.MatchReport{
		{Score: 40, Label: "Fair Match"},
		{Score: 95, Label: "Excellent Match"},
	}

	NewPrinter(&buf).PrintBatchSummary([]string{"backend.txt"}, reports)
	output := buf.String()

	assert.Contains(t, output, "backend.txt")
	assert.Contains(t, output, "#2")
	assert.Contains(t, output, "Best match: #2 (95)")
}

func TestPrintBox_LineWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), "line %q", line)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééééééé...", truncate(strings.Repeat("é", 20), 10))
}
