package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `server:
  port: 9090
  log_level: debug
data:
  csv_path: /data/records.csv
  category_file: /data/categories.yaml
feed:
  enabled: true
  broker_url: tcp://broker:40899
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.Server.LogLevel)
	}
	if cfg.Data.CSVPath != "/data/records.csv" {
		t.Errorf("CSVPath = %q", cfg.Data.CSVPath)
	}
	if !cfg.Feed.Enabled || cfg.Feed.BrokerURL != "tcp://broker:40899" {
		t.Errorf("Feed = %+v", cfg.Feed)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `data:
  csv_path: /data/records.csv
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want default 8080", cfg.Server.Port)
	}
	if cfg.Server.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.Server.LogLevel)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	path := writeConfig(t, `server:
  log_level: loud
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for bad log level")
	}
}

func TestLoad_FeedRequiresBroker(t *testing.T) {
	path := writeConfig(t, `feed:
  enabled: true
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for enabled feed without broker URL")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
