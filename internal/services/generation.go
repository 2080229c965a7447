package services

import (
	"context"
	"fmt"
	"log"

	"alfredoptarigan/hiring-portal/internal/config"
)

// DefaultTemperature keeps structured output as repeatable as the provider allows.
const DefaultTemperature float32 = 0.1

// GenerationClient sends one system instruction and one user prompt to a
// language model and returns its free-text reply. Replies are untrusted.
type GenerationClient interface {
	Generate(ctx context.Context, systemInstruction, userPrompt string, temperature float32) (string, error)
}

// NewGenerationClient builds the client for the configured provider. It returns
// a nil client and no error when the provider has no API key, so callers can
// start without generation and report ErrGenerationUnavailable per request.
func NewGenerationClient(ctx context.Context, cfg config.LLMConfig) (GenerationClient, error) {
	switch cfg.Provider {
	case config.ProviderGroq, config.ProviderGemini:
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}

	if cfg.APIKey() == "" {
		log.Printf("⚠️  No API key configured for %s, generation is disabled", cfg.Provider)
		return nil, nil
	}

	if cfg.Provider == config.ProviderGemini {
		client, err := NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.Model, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	return NewGroqClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.Model, cfg.Timeout), nil
}
