package present

import (
	"cerberus/internal/models"
	"cerberus/internal/verdict"
)

// Presentation is the complete UI state for one moderation response.
// It is rebuilt from scratch per response; nothing is carried over
// between submissions.
type Presentation struct {
	Verdict  verdict.RiskVerdict `json:"verdict"`
	Banner   verdict.Banner      `json:"banner"`
	Actions  []string            `json:"actions,omitempty"`
	Insights InsightView         `json:"insights"`
	History  HistoryView         `json:"history"`
	AuditID  string              `json:"audit_id,omitempty"`
	Summary  string              `json:"summary,omitempty"`
}

// Compose runs the four renderers in their fixed order against one
// backend response: verdict, banner, insights, history. The response
// is read-only; each step fills a disjoint region of the result.
func Compose(resp *models.ModerationResponse) *Presentation {
	p := &Presentation{}

	p.Verdict = verdict.Interpret(resp)

	var override *string
	if resp.Action != nil {
		override = resp.Action.BannerMessage
		p.Actions = resp.Action.Actions
	}
	p.Banner = verdict.SelectBanner(p.Verdict.Level, override)

	p.Insights = BuildInsights(resp.NlpAnalysis)
	p.History = BuildHistory(resp.HistoricalContext)

	p.AuditID = resp.AuditID
	return p
}
