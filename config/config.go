package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/lumavid/veogen/veo"
)

// ErrMissingCredential is returned when no API key is configured.
// Detected before any network attempt.
var ErrMissingCredential = errors.New(
	"missing credential: set GOOGLE_API_KEY or GEMINI_API_KEY in the environment or a .env file")

// Config holds all resolved settings for one invocation. It is
// constructed once at entry and passed into components; there is no
// process-wide settings singleton.
type Config struct {
	// APIKey authenticates against the Google GenAI API. May be empty
	// for commands that never reach the network (catalog lookups).
	APIKey string

	// Generation defaults
	DefaultModel       string
	DefaultAspectRatio veo.AspectRatio
	DefaultResolution  veo.Resolution
	DefaultDuration    int

	// OutputDir is where generated videos are written
	OutputDir string

	// Polling behavior
	PollInterval    time.Duration
	MaxPollAttempts int
}

// Load resolves configuration from the environment, reading a .env
// file first if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIKey:             firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY"),
		DefaultModel:       getEnv("VEOGEN_MODEL", veo.DefaultModel),
		DefaultAspectRatio: veo.AspectRatio(getEnv("VEOGEN_ASPECT_RATIO", string(veo.DefaultAspectRatio))),
		DefaultResolution:  veo.Resolution(getEnv("VEOGEN_RESOLUTION", string(veo.DefaultResolution))),
		DefaultDuration:    getEnvInt("VEOGEN_DURATION", veo.DefaultDurationSeconds),
		OutputDir:          getEnv("VEOGEN_OUTPUT_DIR", "output"),
		PollInterval:       time.Duration(getEnvInt("VEOGEN_POLL_INTERVAL", int(veo.DefaultPollInterval/time.Second))) * time.Second,
		MaxPollAttempts:    getEnvInt("VEOGEN_MAX_POLL_ATTEMPTS", veo.DefaultMaxPollAttempts),
	}
}

// RequireAPIKey returns the configured credential, or
// ErrMissingCredential when none is set.
func (c *Config) RequireAPIKey() (string, error) {
	if c.APIKey == "" {
		return "", ErrMissingCredential
	}
	return c.APIKey, nil
}

// DefaultRequest returns a GenerationRequest carrying the configured
// defaults for the given prompt.
func (c *Config) DefaultRequest(prompt string) veo.GenerationRequest {
	return veo.GenerationRequest{
		Prompt:          prompt,
		Model:           c.DefaultModel,
		AspectRatio:     c.DefaultAspectRatio,
		Resolution:      c.DefaultResolution,
		DurationSeconds: c.DefaultDuration,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
