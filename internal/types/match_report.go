package types

// MatchReport is the result of comparing a resume against a job description.
// Matched and Missing follow first-occurrence order in the job description.
type MatchReport struct {
	Score         int      `json:"score"`
	Label         string   `json:"label"`
	Color         string   `json:"color"`
	Matched       []string `json:"matched"`
	Missing       []string `json:"missing"`
	Suggestions   []string `json:"suggestions"`
	TotalKeywords int      `json:"total_keywords"`
}

// ParsedResume pairs a parsed resume with its confidence score (0-100)
type ParsedResume struct {
	Resume     *StructuredResume `json:"resume"`
	Confidence int               `json:"confidence"`
}
