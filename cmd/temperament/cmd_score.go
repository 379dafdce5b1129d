package main

import (
	"encoding/json"
	"fmt"

	"temperament/internal/logging"
	"temperament/internal/scoring"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	scoreSelected []int
	scoreFormat   string
)

// scoreCmd scores a selection without the interactive form
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a set of selected statement ids",
	Long: `Scores the given statement ids and prints the dominant temperament
with the percentage for every category.

Formats: text (default), json, yaml, markdown

Example:
  temperament score --select 1,5,9,2
  temperament score --select 3,7 --format json`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().IntSliceVarP(&scoreSelected, "select", "s", nil, "Comma-separated statement ids")
	scoreCmd.Flags().StringVarP(&scoreFormat, "format", "f", "text", "Output format: text, json, yaml, markdown")
}

func runScore(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	result, err := scoring.Compute(cat, scoreSelected)
	if err != nil {
		return err
	}
	logging.For(logger, logging.CategoryScoring).Debug("scored selection",
		zap.Ints("selected", scoreSelected),
		zap.String("dominant", string(result.Dominant)),
	)

	out, err := formatResult(result, scoreFormat)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func formatResult(result *scoring.Result, format string) (string, error) {
	switch format {
	case "", "text":
		return result.Text(), nil
	case "markdown", "md":
		return result.Markdown(), nil
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode result: %w", err)
		}
		return string(data) + "\n", nil
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return "", fmt.Errorf("failed to encode result: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown format %q: use text, json, yaml or markdown", format)
	}
}
