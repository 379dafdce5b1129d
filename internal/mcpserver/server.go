// Package mcpserver exposes the questionnaire as MCP tools so an assistant
// can list statements and score a selection on a user's behalf.
package mcpserver

import (
	"context"
	"fmt"
	"io"

	"temperament/internal/catalog"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Options configures New.
type Options struct {
	Name     string
	Version  string
	PageSize int
	Logger   *zap.Logger
}

// New creates the MCP server with both tools registered.
func New(cat *catalog.Catalog, opts Options) *server.MCPServer {
	name := opts.Name
	if name == "" {
		name = "temperament"
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}

	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	catalogTool := NewCatalogTool(cat, opts.PageSize)
	s.AddTool(catalogTool.Definition(), catalogTool.Handle)

	scoreTool := NewScoreTool(cat, opts.Logger)
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	return s
}

// Serve runs s over the given streams until ctx is cancelled or stdin closes.
func Serve(ctx context.Context, s *server.MCPServer, stdin io.Reader, stdout io.Writer) error {
	if err := server.NewStdioServer(s).Listen(ctx, stdin, stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp server failed: %w", err)
	}
	return nil
}

const instructions = `Temperament questionnaire.

1. Call temperament_catalog to list the statements and their ids.
2. Ask the user which statements describe them.
3. Call temperament_score with the chosen ids.

Selecting nothing is valid and yields no dominant temperament.`
