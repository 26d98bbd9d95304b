package config

import (
	"testing"
	"time"

	"github.com/draftlab/nbadraft/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ANALYZE_DATASET_URL", "")
	t.Setenv("ANALYZE_CACHE_PATH", "")
	t.Setenv("ANALYZE_DB_PATH", "")
	t.Setenv("ANALYZE_HTTP_TIMEOUT", "")
	t.Setenv("ANALYZE_VERIFY", "")
	t.Setenv("ANALYZE_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DatasetURL != defaultDatasetURL {
		t.Fatalf("unexpected dataset url: %q", cfg.DatasetURL)
	}
	if cfg.CachePath != "nba.data" {
		t.Fatalf("unexpected cache path: %q", cfg.CachePath)
	}
	if cfg.DBPath != "nba.db" {
		t.Fatalf("unexpected db path: %q", cfg.DBPath)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("unexpected http timeout: %s", cfg.HTTPTimeout)
	}
	if cfg.Verify {
		t.Fatalf("expected verify disabled by default")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ANALYZE_DATASET_URL", "http://localhost:9999/draft.csv")
	t.Setenv("ANALYZE_CACHE_PATH", "/tmp/draft.data")
	t.Setenv("ANALYZE_DB_PATH", "/tmp/draft.db")
	t.Setenv("ANALYZE_HTTP_TIMEOUT", "5s")
	t.Setenv("ANALYZE_VERIFY", "true")
	t.Setenv("ANALYZE_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DatasetURL != "http://localhost:9999/draft.csv" {
		t.Fatalf("unexpected dataset url: %q", cfg.DatasetURL)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("unexpected http timeout: %s", cfg.HTTPTimeout)
	}
	if !cfg.Verify {
		t.Fatalf("expected verify enabled")
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("ANALYZE_HTTP_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid ANALYZE_HTTP_TIMEOUT")
	}

	t.Setenv("ANALYZE_HTTP_TIMEOUT", "-3s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative ANALYZE_HTTP_TIMEOUT")
	}
}

func TestLoad_InvalidVerify(t *testing.T) {
	t.Setenv("ANALYZE_HTTP_TIMEOUT", "")
	t.Setenv("ANALYZE_VERIFY", "maybe")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid ANALYZE_VERIFY")
	}
}
