package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/api"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve run statistics over HTTP",
	Long: `Serve a read-only JSON API over the database.

Endpoints:
  GET /health
  GET /api/v1/modes
  GET /api/v1/modes/{mode}/scores?limit=N
  GET /api/v1/modes/{mode}/stats
  GET /api/v1/modes/{mode}/profile[?player=NAME]
  GET /api/v1/runs/{id}

Examples:
  skyhop api
  skyhop api --addr 127.0.0.1:9000 --db ./skyhop.db`,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address")
}

func runAPI(_ *cobra.Command, _ []string) error {
	logger, closer := newLogger(false)
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	return api.NewServer(store, logger).ListenAndServe(flagAPIAddr)
}
