package analysis

import (
	"github.com/newsguard/newsguard/internal/llm"
)

// Service produces analysis results by prompting the configured language model
// and normalizing its JSON completions into stable response shapes
type Service struct {
	provider llm.Provider
}

// NewService creates a new analysis service
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}
