package entities

import "math"

// Badge is the tier awarded for a finished quiz.
type Badge string

const (
	BadgePerfect Badge = "🌟" // exactly 100%
	BadgeGreat   Badge = "🎉" // 80% and above
	BadgeGood    Badge = "👍" // 60% and above
	BadgeKeepOn  Badge = "😐" // everything below
)

// QuizResult summarizes a finished quiz session.
type QuizResult struct {
	Score      int
	Total      int
	Percentage int
	Badge      Badge
}

// NewQuizResult derives the rounded percentage and badge tier from a raw
// score. A zero-question quiz scores 0%.
func NewQuizResult(score, total int) QuizResult {
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(score) / float64(total) * 100))
	}

	result := QuizResult{Score: score, Total: total, Percentage: pct}
	switch {
	case pct == 100:
		result.Badge = BadgePerfect
	case pct >= 80:
		result.Badge = BadgeGreat
	case pct >= 60:
		result.Badge = BadgeGood
	default:
		result.Badge = BadgeKeepOn
	}

	return result
}
