package present

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cerberus/internal/models"
)

func TestBuildInsights_AbsentAnnotation(t *testing.T) {
	view := BuildInsights(nil)
	assert.Equal(t, NoInsightsPlaceholder, view.Placeholder)
	assert.Empty(t, view.Groups)

	view = BuildInsights(&models.NlpAnalysis{})
	assert.Equal(t, NoInsightsPlaceholder, view.Placeholder)
}

func TestBuildInsights_AllGroupsEmpty(t *testing.T) {
	view := BuildInsights(&models.NlpAnalysis{Entities: &models.EntityGroups{}})
	assert.Equal(t, NoInsightsPlaceholder, view.Placeholder)
	assert.Empty(t, view.Groups)
}

func TestBuildInsights_FixedOrderAndOmittedEmpties(t *testing.T) {
	view := BuildInsights(&models.NlpAnalysis{
		Entities: &models.EntityGroups{
			Other:   []string{"Email: a@b.com"},
			Persons: []string{"Jane Doe"},
			// Organizations and Locations present but empty
			Organizations: []string{},
		},
	})

	assert.Empty(t, view.Placeholder)
	if assert.Len(t, view.Groups, 2) {
		assert.Equal(t, "Persons", view.Groups[0].Label)
		assert.Equal(t, []string{"Jane Doe"}, view.Groups[0].Entities)
		assert.Equal(t, "Other", view.Groups[1].Label)
	}
}

func TestBuildInsights_AllGroups(t *testing.T) {
	view := BuildInsights(&models.NlpAnalysis{
		Entities: &models.EntityGroups{
			Persons:       []string{"Jane Doe"},
			Organizations: []string{"Acme Corp"},
			Locations:     []string{"New York"},
			Other:         []string{"URL: https://example.com"},
		},
	})

	labels := make([]string, 0, len(view.Groups))
	for _, g := range view.Groups {
		labels = append(labels, g.Label)
	}
	assert.Equal(t, []string{"Persons", "Organizations", "Locations", "Other"}, labels)
}
