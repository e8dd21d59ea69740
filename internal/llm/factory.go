package llm

import (
	"context"
	"fmt"

	"github.com/mathsinbites/bitesmith/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with
// retry and event-logging middleware: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, events)
	return WithRetry(logged, cfg.Retry), nil
}

// canonicalModel maps a friendly alias to a provider model ID. Raw
// IDs pass through so any model can be named directly.
func canonicalModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
