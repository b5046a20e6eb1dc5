package llm

import (
	"fmt"

	"github.com/satyarth/dappdojo/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging when an event repo is supplied. Requests are never retried
// automatically; a failed request requires an explicit new trigger.
func NewProvider(cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if eventRepo != nil {
		base = WithLogging(base, eventRepo)
	}
	return base, nil
}

// NewProviderFromEnv builds a provider from DAPPDOJO_* env vars, falling
// back to discovery of standard GEMINI/OPENAI/ANTHROPIC_API_KEY vars.
func NewProviderFromEnv(eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(cfg, eventRepo)
}
