package ai

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/seedstage-inc/seedstage-engine/pkg/config"
)

// NewFromConfig builds the Reviewer and Matcher for the configured provider.
// The same client backs both ports for the network providers; the heuristic
// provider is a single local instance.
func NewFromConfig(cfg config.AIConfig, logger *zap.Logger) (Reviewer, Matcher, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		client, err := NewOpenAIClient(&OpenAIConfig{
			Endpoint: cfg.Endpoint,
			Model:    cfg.Model,
			APIKey:   cfg.APIKey,
		}, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("create openai client: %w", err)
		}
		return client, client, nil

	case config.ProviderAnthropic:
		client, err := NewAnthropicClient(cfg.APIKey, cfg.Model, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("create anthropic client: %w", err)
		}
		return client, client, nil

	case config.ProviderHeuristic:
		h := NewHeuristic()
		return h, h, nil

	default:
		return nil, nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
