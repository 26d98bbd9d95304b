package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/draftlab/nbadraft/internal/platform/logging"
)

// Config stores runtime configuration for one analysis run.
type Config struct {
	DatasetURL  string
	CachePath   string
	DBPath      string
	HTTPTimeout time.Duration
	Verify      bool
	LogLevel    logging.Level
}

const defaultDatasetURL = "https://query.data.world/s/ezwk64ej624qyverrw6x7od7co7ftm"

func Load() (Config, error) {
	datasetURL := strings.TrimSpace(getEnv("ANALYZE_DATASET_URL", defaultDatasetURL))
	if datasetURL == "" {
		return Config{}, fmt.Errorf("ANALYZE_DATASET_URL cannot be empty")
	}

	dbPath := strings.TrimSpace(getEnv("ANALYZE_DB_PATH", "nba.db"))
	if dbPath == "" {
		return Config{}, fmt.Errorf("ANALYZE_DB_PATH cannot be empty")
	}

	httpTimeout, err := time.ParseDuration(getEnv("ANALYZE_HTTP_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ANALYZE_HTTP_TIMEOUT: %w", err)
	}
	if httpTimeout <= 0 {
		return Config{}, fmt.Errorf("ANALYZE_HTTP_TIMEOUT must be > 0")
	}

	verify, err := strconv.ParseBool(getEnv("ANALYZE_VERIFY", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ANALYZE_VERIFY: %w", err)
	}

	return Config{
		DatasetURL:  datasetURL,
		CachePath:   strings.TrimSpace(getEnv("ANALYZE_CACHE_PATH", "nba.data")),
		DBPath:      dbPath,
		HTTPTimeout: httpTimeout,
		Verify:      verify,
		LogLevel:    parseLogLevel(getEnv("ANALYZE_LOG_LEVEL", "info")),
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
