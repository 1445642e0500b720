package factory

import (
	"fmt"

	"streaminghub-be/pkg/llm"
	"streaminghub-be/pkg/llm/huggingface"
	"streaminghub-be/pkg/llm/ollama"
	"streaminghub-be/pkg/llm/openai"
)

// Config carries the provider-specific settings the factory needs. Only the
// fields for the selected provider are consulted.
type Config struct {
	Provider       string // "openai", "ollama", "huggingface"
	Model          string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	OllamaBaseURL  string
	HuggingFaceKey string
}

func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model), nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(cfg.HuggingFaceKey, "", cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
