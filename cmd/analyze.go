package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cerberus/internal/nlp"
	"cerberus/internal/present"
)

// analyzeCmd previews the local NLP extraction without contacting the
// moderation backend.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [content...]",
	Short: "Run local NLP analysis on text without submitting it",
	Long: `Extracts entities, sentiment and a short summary from the given text
using local rule-based analysis. Nothing is sent to the backend.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		analysis := nlp.Analyze(text)
		insights := present.BuildInsights(analysis)

		fmt.Println("Entities:")
		if insights.Placeholder != "" {
			fmt.Printf("  %s\n", insights.Placeholder)
		}
		for _, group := range insights.Groups {
			fmt.Printf("  %s: %s\n", group.Label, strings.Join(group.Entities, ", "))
		}

		fmt.Printf("Sentiment: %s (+%d/-%d words)\n",
			analysis.Sentiment.Sentiment,
			analysis.Sentiment.PositiveWords,
			analysis.Sentiment.NegativeWords)
		fmt.Printf("Summary: %s\n", analysis.Summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
