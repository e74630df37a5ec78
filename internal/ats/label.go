package ats

// scoreBand maps scores at or above min to a label and a presentation color.
type scoreBand struct {
	min   int
	label string
	color string
}

// scoreBands is ordered from the highest threshold down.
var scoreBands = []scoreBand{
	{min: 90, label: "Excellent Match", color: "green"},
	{min: 70, label: "Good Match", color: "blue"},
	{min: 40, label: "Fair Match", color: "yellow"},
	{min: 0, label: "Needs Work", color: "red"},
}

func bandFor(score int) scoreBand {
	score = clampScore(score)
	for _, b := range scoreBands {
		if score >= b.min {
			return b
		}
	}
	return scoreBands[len(scoreBands)-1]
}

// ScoreLabel returns the qualitative label for a score. Scores outside
// [0, 100] are clamped first.
func ScoreLabel(score int) string {
	return bandFor(score).label
}

// ScoreColor returns the presentation hint for a score.
func ScoreColor(score int) string {
	return bandFor(score).color
}

func clampScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
