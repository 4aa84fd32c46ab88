package present

import (
	"cerberus/internal/models"
)

// NoInsightsPlaceholder is shown when the response carries no entity
// groups at all.
const NoInsightsPlaceholder = "No content insights available"

// InsightGroup is one labeled cluster of extracted entities.
type InsightGroup struct {
	Label    string   `json:"label"`
	Entities []string `json:"entities"`
}

// InsightView is the rendered entity section. Exactly one of Groups or
// Placeholder is populated; an empty container is never produced.
type InsightView struct {
	Groups      []InsightGroup `json:"groups,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
}

// BuildInsights groups entities from an optional NLP annotation in a
// fixed order (persons, organizations, locations, other). Groups that
// are present but empty are omitted entirely.
func BuildInsights(analysis *models.NlpAnalysis) InsightView {
	var entities *models.EntityGroups
	if analysis != nil {
		entities = analysis.Entities
	}
	if entities.Empty() {
		return InsightView{Placeholder: NoInsightsPlaceholder}
	}

	var groups []InsightGroup
	add := func(label string, values []string) {
		if len(values) == 0 {
			return
		}
		groups = append(groups, InsightGroup{Label: label, Entities: values})
	}
	add("Persons", entities.Persons)
	add("Organizations", entities.Organizations)
	add("Locations", entities.Locations)
	add("Other", entities.Other)

	return InsightView{Groups: groups}
}
