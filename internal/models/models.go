package models

import (
	"strings"
	"time"
)

// HarmCategories is the closed set of category names a classification
// response may carry besides "normal".
var HarmCategories = []string{
	"violence",
	"hate_speech",
	"profanity",
	"sexual",
	"spam",
	"threat",
}

// ModerationRequest is the outbound submission payload. At least one of
// Content or Image must be non-empty; Validate enforces this before any
// network call is made.
type ModerationRequest struct {
	Content   string
	UserID    string
	Image     []byte
	ImageName string
}

func (r *ModerationRequest) HasImage() bool {
	return len(r.Image) > 0
}

// Validate returns ErrValidation when neither trimmed text nor an image
// is present.
func (r *ModerationRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" && !r.HasImage() {
		return ErrValidation
	}
	return nil
}

// CategoryScores maps category names to scores in [0,1]. Keys may be
// absent; an absent key means "no data", not zero, so callers must use
// the two-value lookup rather than indexing.
type CategoryScores map[string]float64

// RiskScore is the backend's verdict. Level is one of Low/Medium/High;
// any other value is treated as unrecognized downstream.
type RiskScore struct {
	Level   string   `json:"level"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

// ActionPlan carries the backend's recommended actions. BannerMessage,
// when present, overrides the default banner message (title and action
// label stay fixed).
type ActionPlan struct {
	Actions       []string `json:"actions"`
	BannerMessage *string  `json:"banner_message,omitempty"`
	Policies      []string `json:"policies,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// EntityGroups holds extracted entity mentions grouped by kind. Any
// group may be nil or empty.
type EntityGroups struct {
	Persons       []string `json:"persons,omitempty"`
	Organizations []string `json:"organizations,omitempty"`
	Locations     []string `json:"locations,omitempty"`
	Other         []string `json:"other,omitempty"`
}

// Empty reports whether no group has any entries.
func (g *EntityGroups) Empty() bool {
	if g == nil {
		return true
	}
	return len(g.Persons) == 0 && len(g.Organizations) == 0 &&
		len(g.Locations) == 0 && len(g.Other) == 0
}

// Sentiment is the optional keyword-based sentiment block.
type Sentiment struct {
	Sentiment     string  `json:"sentiment"`
	PositiveWords int     `json:"positive_words"`
	NegativeWords int     `json:"negative_words"`
	Score         float64 `json:"score"`
}

// NlpAnalysis is the optional NLP annotation of a response.
type NlpAnalysis struct {
	Entities  *EntityGroups `json:"entities,omitempty"`
	Summary   string        `json:"summary,omitempty"`
	Sentiment *Sentiment    `json:"sentiment,omitempty"`
}

// HistoricalCase is one previously moderated item judged similar to the
// current submission.
type HistoricalCase struct {
	Content         string   `json:"content"`
	RiskScore       float64  `json:"risk_score"`
	PreviousActions []string `json:"previous_actions,omitempty"`
	Timestamp       string   `json:"timestamp,omitempty"`
}

// HistoricalContext groups prior similar cases. SimilarCasesFound is
// authoritative for the headline count and may exceed
// len(PreviousDecisions).
type HistoricalContext struct {
	SimilarCasesFound int              `json:"similar_cases_found"`
	PreviousDecisions []HistoricalCase `json:"previous_decisions,omitempty"`
}

// ModerationResponse is the decoded /moderate body. Every field except
// Error is optional; pointer fields distinguish absent from zero.
type ModerationResponse struct {
	Error             string             `json:"error,omitempty"`
	Classification    CategoryScores     `json:"classification,omitempty"`
	RiskScore         *RiskScore         `json:"risk_score,omitempty"`
	Action            *ActionPlan        `json:"action,omitempty"`
	AuditID           string             `json:"audit_id,omitempty"`
	NlpAnalysis       *NlpAnalysis       `json:"nlp_analysis,omitempty"`
	HistoricalContext *HistoricalContext `json:"historical_context,omitempty"`
}

// AuditRecord mirrors the local audit_log table schema.
type AuditRecord struct {
	ID             int64     `db:"id"`
	AuditID        string    `db:"audit_id"`
	UserID         string    `db:"user_id"`
	ContentPreview string    `db:"content_preview"`
	ContentType    string    `db:"content_type"`
	RiskScore      float64   `db:"risk_score"`
	RiskLevel      string    `db:"risk_level"`
	Recommendation string    `db:"recommendation"`
	Actions        []string  `db:"-"`
	Summary        *string   `db:"summary"`
	CreatedAt      time.Time `db:"created_at"`
}
