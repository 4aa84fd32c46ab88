package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"cerberus/internal/app"
	"cerberus/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "cerberus",
	Short: "Cerberus CLI App",
	Long: `Cerberus is a CLI client for a content-moderation service. It submits
text and images for analysis and renders the verdict, recommended
actions, extracted entities and historical precedent.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the backend skip initialization.
		switch cmd.Name() {
		case "help", "version", "analyze":
			return nil
		}

		// API keys and backend overrides may live in a .env file.
		godotenv.Load()

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appInstance, err := app.NewApp(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store the app instance in the command's context
		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// Helper function to retrieve the app instance from context
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		// This should not happen if PersistentPreRunE ran successfully
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check local audit storage and session diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		fmt.Println("Checking audit database connectivity...")
		if err := appInstance.AuditStore.Ping(ctx); err != nil {
			return fmt.Errorf("audit database ping failed: %w", err)
		}
		fmt.Println("Audit database connection successful.")

		if appInstance.Session.Authenticated() {
			fmt.Println("Session: authenticated.")
		} else {
			fmt.Println("Session: unauthenticated (submissions proceed without a token).")
		}
		return nil
	},
}
