package parsing

import "github.com/jonathan/resume-ats/internal/types"

// Confidence weights. They sum to 100.
const (
	weightName    = 25
	weightEmail   = 25
	weightEntries = 25
	weightSkills  = 25
)

// Confidence estimates how reliable a parse was from the expected fields it
// populated: name, email, at least one education, experience or project
// entry, and at least one skill. The result is in [0, 100].
func Confidence(resume *types.StructuredResume) int {
	if resume == nil {
		return 0
	}

	score := 0
	if resume.Personal.FullName != "" {
		score += weightName
	}
	if resume.Personal.Email != "" {
		score += weightEmail
	}
	if resume.HasEntries() {
		score += weightEntries
	}
	if len(resume.Skills) > 0 {
		score += weightSkills
	}
	return score
}
