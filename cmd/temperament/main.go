package main

import (
	"fmt"
	"os"

	"temperament/internal/catalog"
	"temperament/internal/config"
	"temperament/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	// Global flags
	verbose     bool
	configPath  string
	catalogPath string
	pageSize    int

	// Logger
	logger *zap.Logger

	// Loaded in PersistentPreRunE
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "temperament",
	Short: "Temperament questionnaire",
	Long: `temperament is a self-assessment questionnaire.

Pick the statements that describe you, page by page. When you are done the
selections are scored against the four classic temperaments (choleric,
sanguine, melancholic and phlegmatic) and the dominant one is reported with
a percentage breakdown.

Run without arguments to start the interactive questionnaire.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		// The interactive form owns the terminal, so it only logs to a file
		quiet := cmd == cmd.Root()
		logger, err = logging.New(logging.Options{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			File:    cfg.Logging.File,
			Verbose: verbose,
			Quiet:   quiet,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Config file")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML statement catalog (default: built-in)")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", 0, "Statements per page (default from config)")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		c.Questionnaire.CatalogPath = catalogPath
	}
	if flags.Changed("page-size") {
		c.Questionnaire.PageSize = pageSize
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

// openCatalog loads the statement catalog named by the active config.
func openCatalog() (*catalog.Catalog, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cat, err := catalog.Open(cfg.Questionnaire.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logging.For(logger, logging.CategoryBoot).Debug("catalog loaded",
		zap.String("path", cfg.Questionnaire.CatalogPath),
		zap.Int("statements", cat.Len()),
	)
	return cat, nil
}
