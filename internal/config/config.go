package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"library-assistant/internal/matcher"
)

// Catalog backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort   string
	LogLevel  slog.Level
	LogFormat string

	Backend      string
	DBPath       string
	SeedDatabase bool

	MatchPreset string
	Thresholds  matcher.Thresholds

	IntentsFile      string
	WatchIntents     bool
	MaxMessageLength int
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:     getEnv("API_PORT", "5000"),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		Backend:     strings.ToLower(getEnv("CATALOG_BACKEND", BackendMemory)),
		DBPath:      getEnv("DB_PATH", "./data/library.db"),
		IntentsFile: getEnv("INTENTS_FILE", ""),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	defaultPreset := matcher.PresetStandalone
	switch cfg.Backend {
	case BackendMemory:
	case BackendSQLite:
		defaultPreset = matcher.PresetDatabase
	default:
		return nil, fmt.Errorf("CATALOG_BACKEND must be memory or sqlite, got %q", cfg.Backend)
	}

	if cfg.SeedDatabase, err = getBool("DB_SEED", true); err != nil {
		return nil, err
	}
	if cfg.WatchIntents, err = getBool("INTENTS_WATCH", true); err != nil {
		return nil, err
	}
	if cfg.MaxMessageLength, err = getInt("MAX_MESSAGE_LENGTH", 500); err != nil {
		return nil, err
	}
	if cfg.MaxMessageLength < 0 {
		return nil, fmt.Errorf("MAX_MESSAGE_LENGTH must not be negative")
	}

	cfg.MatchPreset = strings.ToLower(getEnv("MATCH_PRESET", defaultPreset))
	if cfg.Thresholds, err = matcher.PresetThresholds(cfg.MatchPreset); err != nil {
		return nil, fmt.Errorf("MATCH_PRESET is invalid: %w", err)
	}
	if cfg.Thresholds.Title, err = getInt("TITLE_THRESHOLD", cfg.Thresholds.Title); err != nil {
		return nil, err
	}
	if cfg.Thresholds.Intent, err = getInt("INTENT_THRESHOLD", cfg.Thresholds.Intent); err != nil {
		return nil, err
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return nil, err
	}

	// Create the data directory for the database file
	if cfg.Backend == BackendSQLite {
		dataDir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return v, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return v, nil
}
