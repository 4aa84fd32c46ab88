package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cerberus/internal/models"
	"cerberus/internal/submit"
)

var (
	moderateImage string
	moderateUser  string
	moderateJSON  bool
)

var moderateCmd = &cobra.Command{
	Use:   "moderate [content...]",
	Short: "Submit text and/or an image for moderation analysis",
	Long: `Submits content to the moderation backend and renders the analysis:
category scores, risk verdict, recommended action, extracted entities
and similar prior cases. Provide text as arguments, an image via
--image, or both.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		req := &models.ModerationRequest{
			Content: strings.Join(args, " "),
			UserID:  moderateUser,
		}
		if moderateImage != "" {
			data, err := os.ReadFile(moderateImage)
			if err != nil {
				return fmt.Errorf("failed to read image '%s': %w", moderateImage, err)
			}
			req.Image = data
			req.ImageName = filepath.Base(moderateImage)
		}

		res, err := appInstance.Moderate(cmd.Context(), req, printStatus)
		if err != nil {
			// The status line already carries the user-facing message;
			// validation is not a command failure.
			if errors.Is(err, models.ErrValidation) {
				return nil
			}
			return err
		}

		if moderateJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res.Presentation)
		}

		fmt.Println()
		res.Presentation.Render(os.Stdout, res.Response.Classification)
		return nil
	},
}

// printStatus renders one status-line update per state transition.
func printStatus(severity submit.Severity, message string) {
	switch severity {
	case submit.SeverityError:
		fmt.Printf("%s %s\n", color.RedString("ERROR"), message)
	case submit.SeveritySuccess:
		fmt.Printf("%s %s\n", color.GreenString("OK"), message)
	case submit.SeverityLoading:
		fmt.Printf("%s %s\n", color.CyanString("..."), message)
	default:
		fmt.Println(message)
	}
}

func init() {
	rootCmd.AddCommand(moderateCmd)

	moderateCmd.Flags().StringVarP(&moderateImage, "image", "i", "", "Path to an image file to moderate")
	moderateCmd.Flags().StringVarP(&moderateUser, "user", "u", "anonymous", "User ID to attribute the submission to")
	moderateCmd.Flags().BoolVar(&moderateJSON, "json", false, "Print the composed presentation as JSON")
}
