package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the CLI looks for configuration when --config is
// not given. It is relative to the working directory.
var DefaultConfigPath = filepath.Join(".temperament", "config.yaml")

// Config holds all temperament configuration.
type Config struct {
	// Core settings
	Name string `yaml:"name"`

	// Questionnaire content and paging
	Questionnaire QuestionnaireConfig `yaml:"questionnaire"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`

	// HTTP API (serve command)
	Server ServerConfig `yaml:"server"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// QuestionnaireConfig configures the statement catalog and pagination.
type QuestionnaireConfig struct {
	// CatalogPath points at a YAML catalog. Empty uses the embedded catalog.
	CatalogPath string `yaml:"catalog_path"`
	PageSize    int    `yaml:"page_size"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "temperament",

		Questionnaire: QuestionnaireConfig{
			CatalogPath: "",
			PageSize:    10,
		},

		UI: *DefaultUIConfig(),

		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "10s",
			ShutdownTimeout: "5s",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Defaults, still subject to env overrides
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("TEMPERAMENT_CATALOG"); path != "" {
		c.Questionnaire.CatalogPath = path
	}
	if v := os.Getenv("TEMPERAMENT_PAGE_SIZE"); v != "" {
		// non-numeric values are ignored
		if n, err := strconv.Atoi(v); err == nil {
			c.Questionnaire.PageSize = n
		}
	}
	if theme := os.Getenv("TEMPERAMENT_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if addr := os.Getenv("TEMPERAMENT_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if level := os.Getenv("TEMPERAMENT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// GetReadTimeout returns the HTTP read timeout as a duration.
func (c *Config) GetReadTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ReadTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GetShutdownTimeout returns the graceful shutdown window as a duration.
func (c *Config) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Questionnaire.PageSize <= 0 {
		return fmt.Errorf("questionnaire.page_size must be positive, got %d", c.Questionnaire.PageSize)
	}
	if !contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid ui.theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}
	if !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging.level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if !contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging.format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
