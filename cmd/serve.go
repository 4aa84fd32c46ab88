package cmd

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cerberus/internal/apihandlers"
)

var (
	serveAddr string // Listen address
	servePort string // Listen port
)

// serveCmd exposes the moderation pipeline over HTTP, mirroring the
// browser form the backend's own UI offers.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run cerberus as an HTTP API facade",
	Long: `Starts an HTTP server that accepts moderation submissions and returns
the composed presentation as JSON. Useful for embedding the client in
other tools or UIs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		router := gin.Default() // Includes logger and recovery middleware

		apiHandler := apihandlers.NewAPIHandler(appInstance)

		v1 := router.Group("/api/v1")
		{
			v1.POST("/moderate", apiHandler.ModerateHandler)
			v1.GET("/history", apiHandler.HistoryHandler)
		}

		// Simple health check endpoint
		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":        "ok",
				"authenticated": appInstance.Session.Authenticated(),
			})
		})

		listenAddr := fmt.Sprintf("%s:%s", serveAddr, servePort)
		log.Infof("Starting cerberus API server on http://%s", listenAddr)

		// router.Run blocks unless an error occurs
		if err := router.Run(listenAddr); err != nil {
			log.Errorf("Failed to run API server: %v", err)
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost", "Address to listen on (e.g., '0.0.0.0' for all interfaces)")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")
}
