package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	HTTPPort string
	AppMode  string
	LogLevel string

	// Snapshot storage
	DataDir string

	// Okta System Log API
	OktaDomain    string
	OktaAPIToken  string
	LookbackHours int
	LogLimit      int
	APITimeout    time.Duration
	PollInterval  time.Duration

	// Optional ClickHouse raw-event archive
	ClickHouseAddr     string
	ClickHouseDatabase string
	ClickHouseUser     string
	ClickHousePassword string
	ArchiveBufferSize  int
	ArchiveBatchSize   int
	ArchiveFlushEvery  time.Duration
}

// Load reads configuration from environment variables with sane defaults.
// Okta credentials are mandatory unless APP_MODE=offline, which serves
// previously written snapshots without talking to the API.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", ":8080"),
		AppMode:            strings.ToLower(getEnv("APP_MODE", "online")),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		DataDir:            getEnv("DATA_DIR", "./data"),
		LookbackHours:      parseIntEnv("LOOKBACK_HOURS", 24),
		LogLimit:           parseIntEnv("LOG_LIMIT", 1000),
		APITimeout:         parseDurationEnv("API_TIMEOUT", 30*time.Second),
		PollInterval:       parseDurationEnv("POLL_INTERVAL", 0),
		ClickHouseAddr:     os.Getenv("CLICKHOUSE_ADDR"),
		ClickHouseDatabase: getEnv("CLICKHOUSE_DATABASE", "default"),
		ClickHouseUser:     getEnv("CLICKHOUSE_USER", "default"),
		ClickHousePassword: os.Getenv("CLICKHOUSE_PASSWORD"),
		ArchiveBufferSize:  parseIntEnv("ARCHIVE_BUFFER_SIZE", 4096),
		ArchiveBatchSize:   parseIntEnv("ARCHIVE_BATCH_SIZE", 500),
		ArchiveFlushEvery:  parseDurationEnv("ARCHIVE_FLUSH_EVERY", 5*time.Second),
	}

	cfg.OktaDomain = os.Getenv("OKTA_DOMAIN")
	cfg.OktaAPIToken = os.Getenv("OKTA_API_TOKEN")

	if cfg.AppMode != "offline" && (cfg.OktaDomain == "" || cfg.OktaAPIToken == "") {
		return nil, fmt.Errorf("missing Okta credentials: set OKTA_DOMAIN and OKTA_API_TOKEN, or APP_MODE=offline")
	}

	if cfg.LookbackHours < 1 {
		return nil, fmt.Errorf("LOOKBACK_HOURS must be positive")
	}

	return cfg, nil
}

// ArchiveEnabled reports whether the ClickHouse archive should be wired in.
func (c *Config) ArchiveEnabled() bool {
	return c.ClickHouseAddr != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntEnv(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseDurationEnv(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}
