package llm

import (
	"fmt"

	configpkg "github.com/minhyannv/mcp-client-go/pkg/config"
)

// New selects the backend named by cfg.Provider. cfg should be normalized.
func New(cfg configpkg.Config, opts ...Option) (Endpoint, error) {
	switch cfg.Provider {
	case configpkg.ProviderOpenAI:
		client := NewOpenAIClient(cfg.BaseURL, cfg.APIKey)
		return NewOpenAIEndpoint(client, cfg.Model, opts...), nil
	case configpkg.ProviderAnthropic:
		client := NewAnthropicClient(cfg.BaseURL, cfg.APIKey)
		return NewAnthropicEndpoint(client, cfg.Model, cfg.MaxTokens, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", configpkg.ErrUnknownProvider, cfg.Provider)
	}
}
