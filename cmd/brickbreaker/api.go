package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/api"
)

var flagAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve scores over HTTP",
	Long: `Start a read-only HTTP API over the scores database.

Endpoints:
  GET /api/v1/health
  GET /api/v1/scores?limit=N
  GET /api/v1/scores/best
  GET /api/v1/stats

Set GIN_MODE=release to silence gin's debug output.

Examples:
  brickbreaker api
  brickbreaker api --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	Run:  runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runAPI(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("brickbreaker-api", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := mustOpenStore()
	defer store.Close()

	router := api.NewRouter(store, logger)

	logger.Info("starting leaderboard API", "addr", flagAddr, "db", flagDBPath)
	if err := router.Run(flagAddr); err != nil {
		logger.Error("server stopped", "error", err)
		store.Close()
		closeLog()
		os.Exit(1)
	}
}
