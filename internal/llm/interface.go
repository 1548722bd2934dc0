package llm

import (
	"context"
	"fmt"

	"github.com/newsguard/newsguard/internal/config"
)

// Provider is a chat-completion backend used for analysis prompts
type Provider interface {
	// Complete sends a system instruction and a user prompt and returns the raw completion text
	Complete(ctx context.Context, system, prompt string) (string, error)
	Name() string
	Close() error
}

// NewProvider returns the completion backend selected by configuration
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.LLMProvider {
	case "gemini":
		return NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTemperature)
	case "ollama":
		return NewOllamaProvider(cfg.OllamaHost, cfg.OllamaModel, cfg.LLMTemperature), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
