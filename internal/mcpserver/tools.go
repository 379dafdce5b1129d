package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"temperament/internal/catalog"
	"temperament/internal/scoring"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// CatalogTool handles the temperament_catalog MCP tool.
type CatalogTool struct {
	catalog  *catalog.Catalog
	pageSize int
}

// NewCatalogTool creates a CatalogTool over cat.
func NewCatalogTool(cat *catalog.Catalog, pageSize int) *CatalogTool {
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}
	return &CatalogTool{catalog: cat, pageSize: pageSize}
}

// Definition returns the MCP tool definition for registration.
func (t *CatalogTool) Definition() mcp.Tool {
	return mcp.NewTool("temperament_catalog",
		mcp.WithDescription(
			"List the trait statements of the temperament questionnaire. "+
				"Each line shows the statement id used by temperament_score. "+
				"Without 'page' the whole catalog is returned.",
		),
		mcp.WithNumber("page",
			mcp.Description("0-based page index. Omit to list every statement."),
		),
	)
}

// Handle processes the temperament_catalog tool call.
func (t *CatalogTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	total := t.catalog.TotalPages(t.pageSize)

	statements := t.catalog.Statements()
	heading := fmt.Sprintf("# Temperament statements (%d)\n\n", len(statements))

	if _, ok := req.GetArguments()["page"]; ok {
		page, err := intArg(req, "page", -1)
		if err != nil {
			return mcp.NewToolResultError("invalid page: " + err.Error()), nil
		}
		if page < 0 || page >= total {
			return mcp.NewToolResultError(fmt.Sprintf(
				"invalid page %d: must be between 0 and %d", page, total-1,
			)), nil
		}
		statements = t.catalog.Page(page, t.pageSize)
		heading = fmt.Sprintf("# Temperament statements, page %d of %d\n\n", page+1, total)
	}

	var sb strings.Builder
	sb.WriteString(heading)
	for _, s := range statements {
		fmt.Fprintf(&sb, "- [%d] %s\n", s.ID, s.Text)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// ScoreTool handles the temperament_score MCP tool.
type ScoreTool struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewScoreTool creates a ScoreTool over cat.
func NewScoreTool(cat *catalog.Catalog, logger *zap.Logger) *ScoreTool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreTool{catalog: cat, logger: logger}
}

// Definition returns the MCP tool definition for registration.
func (t *ScoreTool) Definition() mcp.Tool {
	return mcp.NewTool("temperament_score",
		mcp.WithDescription(
			"Score a set of selected statements and report the dominant temperament "+
				"with the percentage for each of the four categories.",
		),
		mcp.WithArray("selected",
			mcp.Required(),
			mcp.Description("Ids of the statements that describe the person, as listed by temperament_catalog."),
			mcp.Items(map[string]any{"type": "integer"}),
		),
	)
}

// Handle processes the temperament_score tool call.
func (t *ScoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	selected, err := intSliceArg(req, "selected")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := scoring.Compute(t.catalog, selected)
	if errors.Is(err, catalog.ErrUnknownStatement) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("scoring selection: %w", err)
	}

	t.logger.Debug("scored selection",
		zap.Int("selected", result.Total),
		zap.String("dominant", string(result.Dominant)),
	)
	return mcp.NewToolResultText(result.Markdown()), nil
}
