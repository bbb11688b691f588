package llm

import (
	"context"
	"fmt"

	"github.com/listingai/listingai-backend/internal/config"
)

// NewTextGenerator creates the generator selected by cfg.Provider
func NewTextGenerator(ctx context.Context, cfg config.LLMConfig) (TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	case config.ProviderGemini:
		return NewGeminiGenerator(ctx, cfg.GeminiAPIKey, "", cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unsupported text generation provider: %s", cfg.Provider)
	}
}

// SupportedProviders returns the provider names accepted by NewTextGenerator
func SupportedProviders() []string {
	return []string{
		config.ProviderOpenAI,
		config.ProviderGemini,
	}
}
