package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/langcode/langcode/internal/api"
	"github.com/langcode/langcode/internal/config"
	"github.com/spf13/cobra"
)

var (
	servePort   int
	serveHost   string
	serveAPIKey string
)

// serveCmd starts the API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lookup API server",
	Long: `Start the langcode HTTP API server.

The server provides REST endpoints for:
  - Resolving tags, codes, and language names
  - Browsing and managing the lookup history

Example:
  langcode serve --port 8080
  langcode serve --host 0.0.0.0 --port 3000 --api-key secret`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
	serveCmd.Flags().StringVarP(&serveHost, "host", "H", "127.0.0.1", "host to bind to")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "API key for authentication (optional)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		exitError("failed to load config: %v", err)
	}

	apiKey := serveAPIKey
	if apiKey == "" {
		apiKey = cfg.Server.APIKey
	}

	// Create server
	addr := fmt.Sprintf("%s:%d", serveHost, servePort)
	serverCfg := &api.Config{
		Addr:   addr,
		APIKey: apiKey,
	}

	server, err := api.New(serverCfg, cfg)
	if err != nil {
		exitError("failed to create server: %v", err)
	}

	// Handle graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-stop
		fmt.Println("\nShutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		}
	}()

	// Print startup message
	fmt.Printf("langcode API server starting on http://%s\n", addr)
	fmt.Println()
	fmt.Println("Endpoints:")
	fmt.Println("  GET  /health              - Health check")
	fmt.Println("  GET  /v1/lookup?q=QUERY   - Resolve a tag, code, or name")
	fmt.Println("  GET  /v1/history          - List past lookups")
	fmt.Println("  GET  /v1/history/{id}     - Get a history entry")
	fmt.Println("  DELETE /v1/history/{id}   - Delete a history entry")
	fmt.Println("  DELETE /v1/history        - Clear the history")
	fmt.Println()
	if apiKey != "" {
		fmt.Println("Authentication: Required (use Authorization: Bearer <key> or X-API-Key header)")
	} else {
		fmt.Println("Authentication: Disabled (use --api-key to enable)")
	}
	fmt.Println()
	fmt.Println("Press Ctrl+C to stop")

	// Start server
	if err := server.Start(); err != nil && err.Error() != "http: Server closed" {
		exitError("server error: %v", err)
	}
}
