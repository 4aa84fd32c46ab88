package verdict

import (
	"cerberus/internal/models"
)

// Risk levels as displayed. Unknown is a display-only bucket for
// unrecognized or missing backend levels; it never appears on the wire.
const (
	LevelLow     = "Low"
	LevelMedium  = "Medium"
	LevelHigh    = "High"
	LevelUnknown = "Unknown"
)

// Recommendations derived from the backend risk level.
const (
	RecommendPost      = "Post"
	RecommendReview    = "Review"
	RecommendDoNotPost = "Do Not Post"
)

// IssueThreshold is the category score above which a non-normal
// category counts as an issue.
const IssueThreshold = 0.3

// RiskVerdict is derived fresh per response and never cached across
// submissions.
type RiskVerdict struct {
	Level          string
	Score          float64
	IssueCount     int
	Recommendation string
}

// IssueCount counts the non-normal categories whose score is present
// and above IssueThreshold. Absent keys are no data, not zero.
func IssueCount(scores models.CategoryScores) int {
	count := 0
	for cat, score := range scores {
		if cat == "normal" {
			continue
		}
		if score > IssueThreshold {
			count++
		}
	}
	return count
}

// Recommend maps a backend risk level to a posting recommendation.
// Anything other than High or Medium, including an absent or
// unrecognized level, recommends Post.
func Recommend(level string) string {
	switch level {
	case LevelHigh:
		return RecommendDoNotPost
	case LevelMedium:
		return RecommendReview
	default:
		return RecommendPost
	}
}

// DisplayLevel normalizes a backend level to one of the four display
// buckets. Unrecognized and missing levels become Unknown; they still
// recommend Post, but must not render with Low styling.
func DisplayLevel(level string) string {
	switch level {
	case LevelLow, LevelMedium, LevelHigh:
		return level
	default:
		return LevelUnknown
	}
}

// Interpret derives the verdict for one response. It trusts the
// backend's risk_score and only computes issue count and
// recommendation locally.
func Interpret(resp *models.ModerationResponse) RiskVerdict {
	level := ""
	score := 0.0
	if resp.RiskScore != nil {
		level = resp.RiskScore.Level
		score = resp.RiskScore.Score
	}
	return RiskVerdict{
		Level:          DisplayLevel(level),
		Score:          score,
		IssueCount:     IssueCount(resp.Classification),
		Recommendation: Recommend(level),
	}
}
