package verdict

// Banner is the top-level call-to-action summary for a risk level.
type Banner struct {
	Title           string
	Message         string
	SuggestedAction string
	StyleClass      string
}

var bannerTable = map[string]Banner{
	LevelHigh: {
		Title:           "High Risk Content",
		Message:         "This content violates safety guidelines and should not be posted.",
		SuggestedAction: "Do Not Post",
		StyleClass:      "banner-high",
	},
	LevelMedium: {
		Title:           "Potentially Sensitive Content",
		Message:         "This content may need review before posting.",
		SuggestedAction: "Review Before Posting",
		StyleClass:      "banner-medium",
	},
	LevelLow: {
		Title:           "Content Looks Safe",
		Message:         "No significant safety issues were detected.",
		SuggestedAction: "Post Content",
		StyleClass:      "banner-low",
	},
}

// defaultBanner covers any level outside the fixed table, including
// the Unknown display bucket.
var defaultBanner = Banner{
	Title:           "Analysis Incomplete",
	Message:         "The risk level could not be determined. Review before posting.",
	SuggestedAction: "Review Before Posting",
	StyleClass:      "banner-unknown",
}

// SelectBanner maps a display level to its banner. A backend-supplied
// message overrides the table's default message but never the title or
// the suggested action label.
func SelectBanner(level string, override *string) Banner {
	b, ok := bannerTable[level]
	if !ok {
		b = defaultBanner
	}
	if override != nil && *override != "" {
		b.Message = *override
	}
	return b
}
