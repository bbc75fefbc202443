package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.Report.DataPath != nil || cfg.Report.OutputPath != nil || cfg.Report.Year != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[report]\ndata = \"meter.csv\"\noutput = \"out.txt\"\nyear = 2025\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Report.DataPath == nil || *cfg.Report.DataPath != "meter.csv" {
		t.Fatalf("unexpected data path: %v", cfg.Report.DataPath)
	}
	if cfg.Report.OutputPath == nil || *cfg.Report.OutputPath != "out.txt" {
		t.Fatalf("unexpected output path: %v", cfg.Report.OutputPath)
	}
	if cfg.Report.Year == nil || *cfg.Report.Year != 2025 {
		t.Fatalf("unexpected year: %v", cfg.Report.Year)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
