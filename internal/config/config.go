// Package config loads and validates application configuration.
// Values come from an optional YAML file (CONFIG_FILE) overlaid by
// environment variables; env always wins.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for the API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string `yaml:"port"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	CORSOrigins []string `yaml:"cors_origins"`

	// DatabaseURL is the Postgres connection string. Optional: when empty
	// the document is stored in DataFile instead.
	DatabaseURL string `yaml:"database_url"`

	// DataFile is the JSON file holding the document when no database is
	// configured. Defaults to "trip-plan.json".
	DataFile string `yaml:"data_file"`

	// RecommendedURL and RecommendedFile point at the recommendations feed.
	// URL wins when both are set; neither set means the embedded feed.
	RecommendedURL  string `yaml:"recommended_url"`
	RecommendedFile string `yaml:"recommended_file"`

	// ReadOnly puts the whole API in public view mode: every mutating
	// request is rejected with 403.
	ReadOnly bool `yaml:"read_only"`

	// ShareBaseURL is the page URL share links are built on, e.g.
	// "https://trip.example.com/". The token goes in the fragment.
	ShareBaseURL string `yaml:"share_base_url"`
}

// Load reads CONFIG_FILE (when set) and then the environment, and returns
// the effective Config. An unreadable or malformed config file is an error;
// a missing CONFIG_FILE variable just means env-only.
func Load() (Config, error) {
	cfg := Config{
		Port:         "8080",
		LogLevel:     "info",
		CORSOrigins:  []string{"http://localhost:5173"},
		DataFile:     "trip-plan.json",
		ShareBaseURL: "http://localhost:8080/",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config.Load: parse %s: %w", path, err)
		}
	}

	overlayString(&cfg.Port, "PORT")
	overlayString(&cfg.LogLevel, "LOG_LEVEL")
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitCSV(v)
	}
	overlayString(&cfg.DatabaseURL, "DATABASE_URL")
	overlayString(&cfg.DataFile, "DATA_FILE")
	overlayString(&cfg.RecommendedURL, "RECOMMENDED_URL")
	overlayString(&cfg.RecommendedFile, "RECOMMENDED_FILE")
	overlayString(&cfg.ShareBaseURL, "SHARE_BASE_URL")
	if v := os.Getenv("READ_ONLY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config.Load: READ_ONLY: %w", err)
		}
		cfg.ReadOnly = b
	}

	return cfg, nil
}

// overlayString replaces dst when the environment variable is set and non-empty.
func overlayString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
