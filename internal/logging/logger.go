// Package logging builds the zap loggers used across temperament.
// Each subsystem logs through a named child logger for its Category, so log
// lines can be filtered by the "logger" field.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config and catalog loading
	CategorySession Category = "session" // Questionnaire state transitions
	CategoryScoring Category = "scoring" // Result computation
	CategoryAPI     Category = "api"     // HTTP API requests
	CategoryMCP     Category = "mcp"     // MCP tool calls
	CategoryUI      Category = "ui"      // Terminal UI events
)

// Options mirrors the relevant parts of config.LoggingConfig
// to avoid circular imports
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console, json
	File   string // empty = stderr

	// Verbose forces debug level regardless of Level.
	Verbose bool

	// Quiet discards everything unless File is set. The TUI uses this so
	// log output never lands on the screen it is drawing.
	Quiet bool
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	if opts.Quiet && opts.File == "" {
		return zap.NewNop(), nil
	}

	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	var cfg zap.Config
	if opts.Format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if opts.File != "" {
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		cfg.OutputPaths = []string{opts.File}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func parseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// For returns the child logger for a category. A nil parent yields a no-op logger.
func For(parent *zap.Logger, category Category) *zap.Logger {
	if parent == nil {
		return zap.NewNop()
	}
	return parent.Named(string(category))
}

// WithSession tags a logger with a fresh questionnaire session id and
// returns both.
func WithSession(parent *zap.Logger) (*zap.Logger, string) {
	id := uuid.NewString()
	return For(parent, CategorySession).With(zap.String("session_id", id)), id
}
