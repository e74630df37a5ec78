package parsing

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-ats/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_JaneDoe(t *testing.T) {
	raw := "Jane Doe\njane@example.com\n555-123-4567\nEDUCATION\nMIT, B.S. Computer Science\n2020 - 2024\nSKILLS\nPython, React, SQL"

	resume := Parse(raw)
	require.NotNil(t, resume)

	assert.Equal(t, "Jane Doe", resume.Personal.FullName)
	assert.Equal(t, "jane@example.com", resume.Personal.Email)
	assert.Equal(t, "555-123-4567", resume.Personal.Phone)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, types.Education{
		School: "MIT",
		Degree: "B.S. Computer Science",
		Start:  "2020",
		End:    "2024",
	}, resume.Education[0])

	assert.Equal(t, []string{"Python", "React", "SQL"}, resume.Skills)
	assert.Empty(t, resume.Experience)
	assert.Empty(t, resume.Projects)
	assert.Equal(t, 100, Confidence(resume))
}

func TestParse_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\n\t\n"} {
		resume := Parse(raw)
		require.NotNil(t, resume)
		assert.NotNil(t, resume.Education)
		assert.NotNil(t, resume.Experience)
		assert.NotNil(t, resume.Projects)
		assert.NotNil(t, resume.Skills)
		assert.Equal(t, types.Personal{}, resume.Personal)
		assert.Equal(t, 0, Confidence(resume))
	}
}

func TestParse_TotalOnArbitraryInput(t *testing.T) {
	inputs := []string{
		"\x00\xff\xfe garbage \x80",
		"SKILLS\nEDUCATION\nEXPERIENCE\nPROJECTS",
		strings.Repeat("a", 100000),
		strings.Repeat("2020 - 2021 ", 2000),
		strings.Repeat("@", 5000) + "." + strings.Repeat("a", 5000),
		"EXPERIENCE\n - \n|\n,\nat\n@ @ @",
		"PROJECTS\n()\n(|)\nTech:\nhttps://",
		"EDUCATION\n, , ,\nB.S.\n- \n2020",
		"Skills: ,,,;;;|||",
		"İİİ Tech: stack:",
	}

	for _, raw := range inputs {
		resume := Parse(raw)
		require.NotNil(t, resume)
		assert.NotNil(t, resume.Education)
		assert.NotNil(t, resume.Experience)
		assert.NotNil(t, resume.Projects)
		assert.NotNil(t, resume.Skills)
		for _, p := range resume.Projects {
			assert.NotNil(t, p.TechStack)
		}
		score := Confidence(resume)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestParse_Deterministic(t *testing.T) {
	raw := "Jane Doe\njane@example.com\nEXPERIENCE\nEngineer at Acme\n2020 - 2022\n- Shipped it\nSKILLS\nGo, SQL"
	assert.Equal(t, Parse(raw), Parse(raw))
}

func TestParse_EmailExact(t *testing.T) {
	raw := "Jane Doe\nContact: jane.doe+jobs@mail.example.co.uk."
	assert.Equal(t, "jane.doe+jobs@mail.example.co.uk", Parse(raw).Personal.Email)
}

func TestParse_ContactDetails(t *testing.T) {
	raw := strings.Join([]string{
		"Jane Q. Doe",
		"Email: jane@example.com | Phone: (555) 123-4567",
		"github.com/janedoe | linkedin.com/in/jane-doe/",
	}, "\n")

	personal := Parse(raw).Personal
	assert.Equal(t, types.Personal{
		FullName: "Jane Q. Doe",
		Email:    "jane@example.com",
		Phone:    "(555) 123-4567",
		GitHub:   "janedoe",
		LinkedIn: "linkedin.com/in/jane-doe",
	}, personal)
}

func TestParse_GitHubKeywordHandle(t *testing.T) {
	raw := "Jane Doe\nGitHub: @octocat"
	assert.Equal(t, "octocat", Parse(raw).Personal.GitHub)
}

func TestParse_NameFromSeparatedContactLine(t *testing.T) {
	raw := "Jane Doe | jane@example.com | 555-123-4567"
	personal := Parse(raw).Personal
	assert.Equal(t, "Jane Doe", personal.FullName)
	assert.Equal(t, "jane@example.com", personal.Email)
}

func TestParse_NameSkipsRoleLine(t *testing.T) {
	raw := "Senior Software Engineer\nJane Doe\njane@example.com"
	assert.Equal(t, "Jane Doe", Parse(raw).Personal.FullName)
}

func TestParse_NameSkipsDocumentTitle(t *testing.T) {
	tests := map[string]string{
		"Curriculum Vitae\nJane Doe\njane@example.com": "Jane Doe",
		"Resume Of Jane Doe\nJane Doe":                  "Jane Doe",
		"CURRICULUM VITAE":                               "",
	}
	for raw, want := range tests {
		assert.Equal(t, want, Parse(raw).Personal.FullName, raw)
	}
}

func TestParse_NameNotTakenBelowFirstHeader(t *testing.T) {
	raw := "jane@example.com\nSKILLS\nJohn Smith"
	resume := Parse(raw)
	assert.Empty(t, resume.Personal.FullName)
	assert.Equal(t, []string{"John Smith"}, resume.Skills)
}

func TestParse_ContactWindow(t *testing.T) {
	p := New(Options{ContactWindow: 2})
	lines := types.ResumeText{
		"Jane Doe",
		"Portland, OR",
		"SKILLS",
		"Go",
		"Reach me at jane@example.com or 555-123-4567",
	}

	personal := p.ParseLines(lines).Personal
	assert.Equal(t, "Jane Doe", personal.FullName)
	assert.Equal(t, "jane@example.com", personal.Email, "email falls back to a document scan")
	assert.Empty(t, personal.Phone, "phone is only read from the contact window")
}

func TestParse_SegmentationExclusivity(t *testing.T) {
	raw := strings.Join([]string{
		"John Smith",
		"SKILLS",
		"Python, Go",
		"EXPERIENCE",
		"Backend Engineer at Initech",
		"2019 - 2021",
		"- Built billing in Go",
	}, "\n")

	resume := Parse(raw)
	assert.Equal(t, []string{"Python", "Go"}, resume.Skills)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, types.Experience{
		Company:     "Initech",
		Role:        "Backend Engineer",
		Description: "- Built billing in Go",
		Start:       "2019",
		End:         "2021",
	}, resume.Experience[0])
	assert.Empty(t, resume.Education)
	assert.Empty(t, resume.Projects)
}

func TestParse_UnrecognizedBlocksDiscarded(t *testing.T) {
	raw := strings.Join([]string{
		"Jane Doe",
		"Some intro line that is not a header",
		"AWARDS",
		"Dean's List 2020",
		"SKILLS",
		"Go",
	}, "\n")

	resume := Parse(raw)
	assert.Equal(t, []string{"Go"}, resume.Skills)
	assert.Empty(t, resume.Education)
	assert.Empty(t, resume.Experience)
	assert.Empty(t, resume.Projects)
	assert.Empty(t, resume.Summary)
}

func TestParse_Summary(t *testing.T) {
	raw := "Jane Doe\nSUMMARY\nBackend engineer with 5 years\nof Go experience.\nSKILLS\nGo"
	resume := Parse(raw)
	assert.Equal(t, "Backend engineer with 5 years of Go experience.", resume.Summary)
	assert.Equal(t, []string{"Go"}, resume.Skills)
}

func TestParse_Experience(t *testing.T) {
	raw := strings.Join([]string{
		"EXPERIENCE",
		"Software Engineer at Acme Corp",
		"Jan 2020 - Present",
		"- Built APIs in Go",
		"- Led migration",
		"Data Analyst, Globex | 2018 - 2019",
		"- Wrote SQL",
	}, "\n")

	resume := Parse(raw)
	require.Len(t, resume.Experience, 2)
	assert.Equal(t, types.Experience{
		Company:     "Acme Corp",
		Role:        "Software Engineer",
		Description: "- Built APIs in Go\n- Led migration",
		Start:       "Jan 2020",
		End:         "Present",
	}, resume.Experience[0])
	assert.Equal(t, types.Experience{
		Company:     "Globex",
		Role:        "Data Analyst",
		Description: "- Wrote SQL",
		Start:       "2018",
		End:         "2019",
	}, resume.Experience[1])
}

func TestParse_ExperienceTwoLineHeading(t *testing.T) {
	raw := "EXPERIENCE\nAcme Corp\nJan 2020 - Present\nSoftware Engineer\n- Shipped things"

	resume := Parse(raw)
	require.Len(t, resume.Experience, 1)
	exp := resume.Experience[0]
	assert.Equal(t, "Acme Corp", exp.Company)
	assert.Equal(t, "Software Engineer", exp.Role)
	assert.Equal(t, "- Shipped things", exp.Description)
	assert.Equal(t, "Jan 2020", exp.Start)
	assert.Equal(t, "Present", exp.End)
}

func TestParse_Education(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []types.Education
	}{
		{
			name: "school then degree lines",
			raw:  "EDUCATION\nStanford University\nM.S. Computer Science\n2018 - 2020\nMIT\nB.S. Mathematics\n2014 - 2018",
			expected: []types.Education{
				{School: "Stanford University", Degree: "M.S. Computer Science", Start: "2018", End: "2020"},
				{School: "MIT", Degree: "B.S. Mathematics", Start: "2014", End: "2018"},
			},
		},
		{
			name: "degree first with graduation date",
			raw:  "EDUCATION\nB.S. Computer Science, May 2024\nUniversity of Oregon",
			expected: []types.Education{
				{School: "University of Oregon", Degree: "B.S. Computer Science", End: "May 2024"},
			},
		},
		{
			name: "pipe separated",
			raw:  "EDUCATION\nUniversity of Washington | Bachelor of Science\nSep 2016 - Jun 2020",
			expected: []types.Education{
				{School: "University of Washington", Degree: "Bachelor of Science", Start: "Sep 2016", End: "Jun 2020"},
			},
		},
		{
			name: "comma inside school name is kept",
			raw:  "EDUCATION\nUniversity of California, Berkeley\nBachelor of Arts\n2015 - 2019",
			expected: []types.Education{
				{School: "University of California, Berkeley", Degree: "Bachelor of Arts", Start: "2015", End: "2019"},
			},
		},
		{
			name: "field of study after comma",
			raw:  "EDUCATION\nStanford University, Computer Science\n2016 - 2020",
			expected: []types.Education{
				{School: "Stanford University", Degree: "Computer Science", Start: "2016", End: "2020"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.raw).Education)
		})
	}
}

func TestParse_Projects(t *testing.T) {
	raw := strings.Join([]string{
		"PROJECTS",
		"ATS Scanner (Go, React)",
		"Keyword matcher for resumes.",
		"https://github.com/jane/ats",
		"",
		"Portfolio Site | Next.js, Tailwind",
		"Personal website.",
	}, "\n")

	resume := Parse(raw)
	require.Len(t, resume.Projects, 2)
	assert.Equal(t, types.Project{
		Title:       "ATS Scanner",
		Description: "Keyword matcher for resumes.",
		TechStack:   []string{"Go", "React"},
		Link:        "https://github.com/jane/ats",
	}, resume.Projects[0])
	assert.Equal(t, types.Project{
		Title:       "Portfolio Site",
		Description: "Personal website.",
		TechStack:   []string{"Next.js", "Tailwind"},
	}, resume.Projects[1])
}

func TestParse_ProjectTechLine(t *testing.T) {
	raw := "PROJECTS\nChat App\n- Realtime messaging\nTech: Go, WebSockets, Redis\nLink: https://chat.example.dev"

	resume := Parse(raw)
	require.Len(t, resume.Projects, 1)
	project := resume.Projects[0]
	assert.Equal(t, "Chat App", project.Title)
	assert.Equal(t, "- Realtime messaging", project.Description)
	assert.Equal(t, []string{"Go", "WebSockets", "Redis"}, project.TechStack)
	assert.Equal(t, "https://chat.example.dev", project.Link)
}

func TestParse_Skills(t *testing.T) {
	raw := strings.Join([]string{
		"SKILLS",
		"Languages: Go, Python, go",
		"• Docker",
		"Kubernetes",
		"Built many services using Go",
		"CI/CD | Terraform, and AWS",
	}, "\n")

	assert.Equal(t, []string{"Go", "Python", "Docker", "Kubernetes", "CI/CD", "Terraform", "AWS"}, Parse(raw).Skills)
}

func TestParse_InlineSkillsHeader(t *testing.T) {
	resume := Parse("Jane Doe\nSkills: Go, SQL")
	assert.Equal(t, []string{"Go", "SQL"}, resume.Skills)
	assert.Equal(t, "Jane Doe", resume.Personal.FullName)
}

func TestParse_InlineHeaderInsideSkills(t *testing.T) {
	resume := Parse("Jane Doe\njane@example.com\nSKILLS\nGo, SQL\nEducation: B.S. Computer Science, MIT 2018 - 2022")

	assert.Equal(t, []string{"Go", "SQL"}, resume.Skills)
	assert.Equal(t, []types.Education{
		{School: "MIT", Degree: "B.S. Computer Science", Start: "2018", End: "2022"},
	}, resume.Education)
}

func TestParse_InlineLinkLabelIsNotASection(t *testing.T) {
	resume := Parse("Jane Doe\nPortfolio: janedoe.dev\nSKILLS\nGo\nPortfolio: github.com/janedoe")

	assert.Equal(t, "Jane Doe", resume.Personal.FullName)
	assert.Equal(t, []string{"Go"}, resume.Skills)
	assert.Empty(t, resume.Projects)
}

func TestParse_RepeatedSectionsMerge(t *testing.T) {
	raw := "SKILLS\nGo, SQL\nEXPERIENCE\nEngineer at Acme\n2020 - 2021\nTECHNICAL SKILLS\nsql, Rust"
	assert.Equal(t, []string{"Go", "SQL", "Rust"}, Parse(raw).Skills)
}

func TestClassifyHeader(t *testing.T) {
	p := New(DefaultOptions())

	tests := []struct {
		line     string
		expected section
		isHeader bool
	}{
		{"EDUCATION", sectionEducation, true},
		{"Academic", sectionEducation, true},
		{"## Work Experience", sectionExperience, true},
		{"Employment", sectionExperience, true},
		{"Technical Skills:", sectionSkills, true},
		{"Skills & Interests", sectionSkills, true},
		{"PORTFOLIO", sectionProjects, true},
		{"Summary", sectionSummary, true},
		{"Certifications", sectionIgnored, true},
		{"Education: B.S. Physics, MIT", sectionEducation, true},
		{"Summary: Backend engineer", sectionSummary, true},
		{"Portfolio: janedoe.dev", sectionNone, false},
		{"Education at MIT was a formative time", sectionNone, false},
		{"- Projects", sectionNone, false},
		{"Jane Doe", sectionNone, false},
		{"CI/CD", sectionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			kind, _, ok := p.classifyHeader(tt.line)
			assert.Equal(t, tt.isHeader, ok)
			assert.Equal(t, tt.expected, kind, "got %s", kind)
		})
	}
}

func TestNew_DefaultsZeroOptions(t *testing.T) {
	assert.Equal(t, DefaultOptions(), New(Options{}).Options())
	assert.Equal(t, 3, New(Options{MaxHeaderWords: 3}).Options().MaxHeaderWords)
}

func TestParseWithConfidence(t *testing.T) {
	parsed := New(DefaultOptions()).ParseWithConfidence("Jane Doe\njane@example.com")
	require.NotNil(t, parsed.Resume)
	assert.Equal(t, 50, parsed.Confidence)
}
