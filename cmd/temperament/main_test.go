package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"temperament/internal/catalog"
	"temperament/internal/config"
	"temperament/internal/scoring"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const testCatalogYAML = `statements:
  - {id: 1, text: "Takes charge", category: choleric}
  - {id: 2, text: "Loves parties", category: sanguine}
  - {id: 3, text: "Plans ahead", category: melancholic}
  - {id: 4, text: "Stays calm", category: phlegmatic}
  - {id: 5, text: "Sets goals", category: choleric}
`

// setupCLI resets package state to a default config over a small catalog.
func setupCLI(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(testCatalogYAML), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	cfg = config.DefaultConfig()
	cfg.Questionnaire.CatalogPath = path
	cfg.Questionnaire.PageSize = 2

	catalogPage = -1
	scoreSelected = nil
	scoreFormat = "text"
}

func TestListCatalog(t *testing.T) {
	setupCLI(t)

	output := captureOutput(t, func() {
		if err := listCatalog(&cobra.Command{}, nil); err != nil {
			t.Fatalf("listCatalog returned error: %v", err)
		}
	})

	for _, want := range []string{"Takes charge", "Stays calm", "Sets goals", "Choleric"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestListCatalog_Page(t *testing.T) {
	setupCLI(t)
	catalogPage = 2

	output := captureOutput(t, func() {
		if err := listCatalog(&cobra.Command{}, nil); err != nil {
			t.Fatalf("listCatalog returned error: %v", err)
		}
	})

	if !strings.Contains(output, "Page 3 of 3") || !strings.Contains(output, "Sets goals") {
		t.Fatalf("unexpected page output: %s", output)
	}
	if strings.Contains(output, "Takes charge") {
		t.Fatalf("page 3 should not list statement 1: %s", output)
	}

	catalogPage = 3
	if err := listCatalog(&cobra.Command{}, nil); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestRunScore_Text(t *testing.T) {
	setupCLI(t)
	scoreSelected = []int{1, 5, 2, 3}

	output := captureOutput(t, func() {
		if err := runScore(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runScore returned error: %v", err)
		}
	})

	if !strings.Contains(output, "Your dominant temperament is: Choleric") {
		t.Fatalf("expected choleric headline, got: %s", output)
	}
	if !strings.Contains(output, "50%") || !strings.Contains(output, "25%") {
		t.Fatalf("expected percentages, got: %s", output)
	}
}

func TestRunScore_JSON(t *testing.T) {
	setupCLI(t)
	scoreSelected = []int{4}
	scoreFormat = "json"

	output := captureOutput(t, func() {
		if err := runScore(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runScore returned error: %v", err)
		}
	})

	var res scoring.Result
	if err := json.Unmarshal([]byte(output), &res); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if res.Dominant != catalog.Phlegmatic || res.Percentages[catalog.Phlegmatic] != 100 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestRunScore_UnknownID(t *testing.T) {
	setupCLI(t)
	scoreSelected = []int{1, 42}

	err := runScore(&cobra.Command{}, nil)
	if err == nil || !strings.Contains(err.Error(), "42") {
		t.Fatalf("expected unknown id error, got %v", err)
	}
}

func TestFormatResult(t *testing.T) {
	setupCLI(t)
	cat, err := openCatalog()
	if err != nil {
		t.Fatalf("openCatalog: %v", err)
	}
	res, err := scoring.Compute(cat, []int{1, 2})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	md, err := formatResult(res, "markdown")
	if err != nil || !strings.Contains(md, "| Choleric | 1 | 50% |") {
		t.Fatalf("markdown: %v\n%s", err, md)
	}

	y, err := formatResult(res, "yaml")
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var decoded map[string]interface{}
	if err := yaml.Unmarshal([]byte(y), &decoded); err != nil {
		t.Fatalf("yaml output does not parse: %v", err)
	}
	if decoded["dominant"] != "choleric" {
		t.Fatalf("unexpected yaml dominant: %v", decoded["dominant"])
	}

	if _, err := formatResult(res, "xml"); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	dir := t.TempDir()
	configPath = filepath.Join(dir, "missing.yaml")
	t.Setenv("TEMPERAMENT_PAGE_SIZE", "")
	t.Setenv("TEMPERAMENT_CATALOG", "")

	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "")
	if err := cmd.Flags().Parse([]string{"--page-size", "4", "--catalog", "custom.yaml"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	c, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if c.Questionnaire.PageSize != 4 || c.Questionnaire.CatalogPath != "custom.yaml" {
		t.Fatalf("flags not applied: %+v", c.Questionnaire)
	}

	if err := cmd.Flags().Parse([]string{"--page-size", "0"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, err := loadConfig(cmd); err == nil {
		t.Fatalf("expected validation error for page size 0")
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	if !strings.Contains(buf.String(), "temperament "+Version) {
		t.Fatalf("unexpected version output: %q", buf.String())
	}
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	origErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		_, _ = io.Copy(&buf, rErr)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = origOut
	os.Stderr = origErr
	return <-done
}
