package llm

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"anthropic with key", func(c *Config) { c.Anthropic.APIKey = "sk-test" }, false},
		{"anthropic without key", func(c *Config) {}, true},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"gemini with key", func(c *Config) { c.Provider = "gemini"; c.Gemini.APIKey = "k" }, false},
		{"mock needs nothing", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "bard" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("BITESMITH_LLM_PROVIDER", "openai")
	t.Setenv("BITESMITH_OPENAI_API_KEY", "sk-env")
	t.Setenv("BITESMITH_OPENAI_MODEL", "gpt-4o")
	t.Setenv("BITESMITH_LLM_TIMEOUT", "2m")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-env" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("OpenAI config not read from env: %+v", cfg.OpenAI)
	}
	if cfg.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %v, want 2m", cfg.Timeout)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic first", cfg.Provider)
	}
}
