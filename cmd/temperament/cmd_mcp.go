package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"temperament/internal/logging"
	"temperament/internal/mcpserver"

	"github.com/spf13/cobra"
)

// mcpCmd serves the questionnaire as MCP tools over stdio
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server on stdio",
	Long: `Exposes two MCP tools over stdin/stdout:

  temperament_catalog   list statements, optionally one page
  temperament_score     score a list of statement ids

Logs go to stderr so they never mix with protocol messages.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	mcpLogger := logging.For(logger, logging.CategoryMCP)
	s := mcpserver.New(cat, mcpserver.Options{
		Name:     cfg.Name,
		Version:  Version,
		PageSize: cfg.Questionnaire.PageSize,
		Logger:   mcpLogger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mcpLogger.Info("mcp server starting")
	return mcpserver.Serve(ctx, s, os.Stdin, os.Stdout)
}
