// Package summary optionally enriches a moderation decision with a
// short LLM-written summary. Providers are selected by config; the
// noop provider keeps the feature off by default. Summary failures are
// absorbed by callers, never surfaced as submission errors.
package summary

import (
	"context"
	"encoding/json"
	"fmt"

	"cerberus/internal/models"
	"cerberus/internal/verdict"
)

const summaryInstruction = "Summarize this moderation decision in 2-3 sentences. " +
	"Highlight the risk level, top categories, and actions taken. Respond in plain text."

// Decision is the payload handed to a provider.
type Decision struct {
	RiskLevel      string                `json:"risk_level"`
	RiskScore      float64               `json:"risk_score"`
	Recommendation string                `json:"recommendation"`
	IssueCount     int                   `json:"issue_count"`
	Actions        []string              `json:"actions,omitempty"`
	Classification models.CategoryScores `json:"classification,omitempty"`
}

// NewDecision captures the summarizable facts of one verdict.
func NewDecision(v verdict.RiskVerdict, actions []string, scores models.CategoryScores) *Decision {
	return &Decision{
		RiskLevel:      v.Level,
		RiskScore:      v.Score,
		Recommendation: v.Recommendation,
		IssueCount:     v.IssueCount,
		Actions:        actions,
		Classification: scores,
	}
}

func (d *Decision) prompt() (string, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("encode decision payload: %w", err)
	}
	return string(raw), nil
}

// Summarizer produces a plain-text summary of one decision.
type Summarizer interface {
	Summarize(ctx context.Context, decision *Decision) (string, error)
}

// NoopSummarizer disables decision summaries.
type NoopSummarizer struct{}

func NewNoopSummarizer() *NoopSummarizer { return &NoopSummarizer{} }

func (n *NoopSummarizer) Summarize(ctx context.Context, decision *Decision) (string, error) {
	return "", nil
}
