package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TEMPERAMENT_CATALOG",
		"TEMPERAMENT_PAGE_SIZE",
		"TEMPERAMENT_THEME",
		"TEMPERAMENT_ADDR",
		"TEMPERAMENT_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "temperament" {
		t.Errorf("expected Name=temperament, got %s", cfg.Name)
	}
	if cfg.Questionnaire.PageSize != 10 {
		t.Errorf("expected PageSize=10, got %d", cfg.Questionnaire.PageSize)
	}
	if cfg.UI.Theme != ThemeAuto {
		t.Errorf("expected Theme=auto, got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Questionnaire.PageSize = 5
	cfg.Questionnaire.CatalogPath = "/tmp/catalog.yaml"
	cfg.UI.Theme = ThemeDark

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Questionnaire.PageSize != 5 {
		t.Errorf("expected PageSize=5, got %d", loaded.Questionnaire.PageSize)
	}
	if loaded.Questionnaire.CatalogPath != "/tmp/catalog.yaml" {
		t.Errorf("expected CatalogPath=/tmp/catalog.yaml, got %s", loaded.Questionnaire.CatalogPath)
	}
	if loaded.UI.Theme != ThemeDark {
		t.Errorf("expected Theme=dark, got %s", loaded.UI.Theme)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Questionnaire.PageSize != 10 {
		t.Errorf("expected default PageSize, got %d", cfg.Questionnaire.PageSize)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("questionnaire:\n  page_size: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Questionnaire.PageSize != 7 {
		t.Errorf("expected PageSize=7, got %d", cfg.Questionnaire.PageSize)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr to survive, got %s", cfg.Server.Addr)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("questionnaire: [:"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero page size", func(c *Config) { c.Questionnaire.PageSize = 0 }},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfig_Timeouts(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.GetReadTimeout() != 10*time.Second {
		t.Errorf("expected 10s read timeout, got %v", cfg.GetReadTimeout())
	}

	cfg.Server.ShutdownTimeout = "garbage"
	if cfg.GetShutdownTimeout() != 5*time.Second {
		t.Errorf("expected fallback shutdown timeout, got %v", cfg.GetShutdownTimeout())
	}
}
