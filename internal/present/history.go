package present

import (
	"fmt"

	"cerberus/internal/models"
)

// NoHistoryPlaceholder is shown when the backend found no similar
// cases, regardless of any decisions it also returned.
const NoHistoryPlaceholder = "No similar content found"

// excerptLimit is the maximum excerpt length before truncation.
const excerptLimit = 80

// HistoryEntry is one prior decision prepared for display.
type HistoryEntry struct {
	Excerpt   string  `json:"excerpt"`
	RiskScore float64 `json:"risk_score"`
	Action    string  `json:"action"`
}

// HistoryView is the rendered historical-context section.
type HistoryView struct {
	Headline    string         `json:"headline,omitempty"`
	Entries     []HistoryEntry `json:"entries,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
}

// BuildHistory formats prior similar-case records. The headline always
// uses similar_cases_found, not the length of the decisions list; a
// count of zero wins even when decisions are present.
func BuildHistory(hc *models.HistoricalContext) HistoryView {
	if hc == nil || hc.SimilarCasesFound == 0 {
		return HistoryView{Placeholder: NoHistoryPlaceholder}
	}

	noun := "cases"
	if hc.SimilarCasesFound == 1 {
		noun = "case"
	}
	view := HistoryView{
		Headline: fmt.Sprintf("Found %d similar %s", hc.SimilarCasesFound, noun),
	}
	for _, dec := range hc.PreviousDecisions {
		action := "Reviewed"
		if len(dec.PreviousActions) > 0 {
			action = dec.PreviousActions[0]
		}
		view.Entries = append(view.Entries, HistoryEntry{
			Excerpt:   truncateExcerpt(dec.Content, excerptLimit),
			RiskScore: dec.RiskScore,
			Action:    action,
		})
	}
	return view
}

// truncateExcerpt cuts s to max runes and appends an ellipsis marker
// when anything was removed.
func truncateExcerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
