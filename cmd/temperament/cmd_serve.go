package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"temperament/internal/httpapi"
	"temperament/internal/logging"

	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog and scoring over HTTP",
	Long: `Starts a stateless JSON API:

  GET  /health
  GET  /v1/catalog[?page=N]
  GET  /v1/categories
  POST /v1/score   {"selected": [1, 5, 9]}

The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if cmd.Flags().Changed("addr") {
		addr = serveAddr
	}

	apiLogger := logging.For(logger, logging.CategoryAPI)
	router := httpapi.NewRouter(&httpapi.Container{
		Catalog:  cat,
		PageSize: cfg.Questionnaire.PageSize,
		Logger:   apiLogger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpapi.Serve(ctx, nil, router, httpapi.ServerOptions{
		Addr:            addr,
		ReadTimeout:     cfg.GetReadTimeout(),
		ShutdownTimeout: cfg.GetShutdownTimeout(),
	}, apiLogger)
}
