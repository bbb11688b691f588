package config

import (
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// LLMConfig contains text-generation provider configuration
type LLMConfig struct {
	Provider string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	GeminiAPIKey string
	GeminiModel  string
}

// GetLLMConfig returns text-generation configuration from environment variables
func GetLLMConfig() LLMConfig {
	return LLMConfig{
		Provider:      strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}
}

// Model returns the model identifier of the selected provider
func (c LLMConfig) Model() string {
	if c.Provider == ProviderGemini {
		return c.GeminiModel
	}
	return c.OpenAIModel
}

// Validate checks the provider name. Missing keys are reported when the client is built.
func (c LLMConfig) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
		return nil
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER: %s", c.Provider)
	}
}
