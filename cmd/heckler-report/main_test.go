package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/crmarques/heckler-report/config"
)

func TestBootstrapBuildsRuntime(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "report.yaml")
	if err := os.WriteFile(configPath, []byte("report-dir: "+root+"\nlogging:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	runtime, err := bootstrap(context.Background(), config.Selection{Path: configPath}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("bootstrap returned error: %v", err)
	}
	if runtime.Processor == nil || runtime.Store == nil || runtime.Flush == nil {
		t.Fatalf("expected a fully wired runtime, got %+v", runtime)
	}
	if runtime.Config.ReportDir != root || runtime.Config.Logging.Level != "warn" {
		t.Fatalf("unexpected config %+v", runtime.Config)
	}
}

func TestBootstrapReportsConfigErrors(t *testing.T) {
	t.Parallel()

	_, err := bootstrap(context.Background(), config.Selection{Path: filepath.Join(t.TempDir(), "missing.yaml")}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected missing config error")
	}
}
