package genclient

import (
	"fmt"
	"os"
	"time"
)

// Config holds remote generation endpoint settings.
type Config struct {
	// BaseURL is the endpoint root, e.g. "https://api.example.com".
	BaseURL string

	// Token is sent as a bearer token on every request.
	Token string

	// Timeout bounds one generation request end to end. A timed-out
	// request is classified as a failure and the batch moves on.
	Timeout time.Duration

	// LessonPath and PracticePath are the per-artifact-kind endpoints.
	LessonPath   string
	PracticePath string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:      45 * time.Second,
		LessonPath:   "/functions/v1/generate-lesson",
		PracticePath: "/functions/v1/generate-practice",
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("BITESMITH_GEN_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("BITESMITH_GEN_TOKEN"); t != "" {
		cfg.Token = t
	}
	if d := os.Getenv("BITESMITH_GEN_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil && parsed > 0 {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

// Validate checks that the config can reach an endpoint.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("generation endpoint URL is required (set BITESMITH_GEN_URL)")
	}
	return nil
}
