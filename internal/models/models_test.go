package models

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModerationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ModerationRequest
		wantErr bool
	}{
		{"text only", ModerationRequest{Content: "hello"}, false},
		{"image only", ModerationRequest{Image: []byte{0x1}}, false},
		{"text and image", ModerationRequest{Content: "hi", Image: []byte{0x1}}, false},
		{"empty", ModerationRequest{}, true},
		{"whitespace only", ModerationRequest{Content: "   \t\n"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHTTPError_MapsUnauthorized(t *testing.T) {
	err := error(&HTTPError{StatusCode: http.StatusUnauthorized})
	assert.ErrorIs(t, err, ErrAuthRequired)

	err = error(&HTTPError{StatusCode: http.StatusForbidden})
	assert.False(t, errors.Is(err, ErrAuthRequired))
}

func TestEntityGroups_Empty(t *testing.T) {
	var nilGroups *EntityGroups
	assert.True(t, nilGroups.Empty())
	assert.True(t, (&EntityGroups{}).Empty())
	assert.False(t, (&EntityGroups{Other: []string{"URL: x"}}).Empty())
}

func TestModerationResponse_Decode(t *testing.T) {
	raw := `{
		"classification": {"violence": 0.8, "normal": 0.1},
		"risk_score": {"level": "High", "score": 0.82, "reasons": ["violent language"]},
		"action": {"actions": ["Remove Content"], "banner_message": "flagged for violence"},
		"audit_id": "a1",
		"historical_context": {"similar_cases_found": 2}
	}`

	var resp ModerationResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	score, ok := resp.Classification["violence"]
	require.True(t, ok)
	assert.Equal(t, 0.8, score)
	require.NotNil(t, resp.RiskScore)
	assert.Equal(t, "High", resp.RiskScore.Level)
	require.NotNil(t, resp.Action.BannerMessage)
	assert.Equal(t, "flagged for violence", *resp.Action.BannerMessage)
	assert.Equal(t, 2, resp.HistoricalContext.SimilarCasesFound)
	assert.Nil(t, resp.NlpAnalysis)
}

func TestModerationResponse_MinimalBody(t *testing.T) {
	var resp ModerationResponse
	require.NoError(t, json.Unmarshal([]byte(`{}`), &resp))

	assert.Nil(t, resp.RiskScore)
	assert.Nil(t, resp.Action)
	assert.Nil(t, resp.HistoricalContext)
	_, ok := resp.Classification["normal"]
	assert.False(t, ok)
}
