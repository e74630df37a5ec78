// Package types provides type definitions for structured data used throughout the resume-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Personal holds the contact block found at the top of a resume.
// Every field defaults to the empty string when nothing was detected.
type Personal struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// Education represents a single school entry
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// Experience represents a single position entry
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// Project represents a single project entry
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	Link        string   `json:"link"`
}

// StructuredResume is the structured form of a resume produced by the parser.
// List order follows the order entries appear in the source document.
type StructuredResume struct {
	Personal   Personal     `json:"personal"`
	Summary    string       `json:"summary"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Projects   []Project    `json:"projects"`
	Skills     []string     `json:"skills"`
}

// ResumeText is the ordered sequence of non-empty, trimmed lines of a source document.
type ResumeText []string

// NewStructuredResume returns an empty resume whose lists are non-nil, so the
// JSON form always carries arrays rather than null.
func NewStructuredResume() *StructuredResume {
	return &StructuredResume{
		Education:  []Education{},
		Experience: []Experience{},
		Projects:   []Project{},
		Skills:     []string{},
	}
}

// HasEntries reports whether at least one education, experience or project entry exists.
func (r *StructuredResume) HasEntries() bool {
	return len(r.Education) > 0 || len(r.Experience) > 0 || len(r.Projects) > 0
}
