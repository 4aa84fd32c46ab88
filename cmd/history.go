package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
)

// historyCmd lists decisions recorded in the local audit log.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View past moderation decisions",
	Long:  `Displays moderation decisions recorded locally by this client.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		records, err := appInstance.AuditStore.Recent(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("error listing decisions: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No moderation history found.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Audit ID", "Content", "Level", "Score", "Recommendation", "Decided At"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, rec := range records {
			table.Append([]string{
				rec.AuditID,
				strings.ReplaceAll(rec.ContentPreview, "\n", " "),
				rec.RiskLevel,
				fmt.Sprintf("%.2f", rec.RiskScore),
				rec.Recommendation,
				rec.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of decisions to show")

	rootCmd.AddCommand(historyCmd)
}
