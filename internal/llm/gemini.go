package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider uses the Google Generative AI SDK as the completion backend
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
}

// Ensure GeminiProvider implements Provider
var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a Gemini completion backend
func NewGeminiProvider(ctx context.Context, apiKey, model string, temperature float64) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		model:       model,
		temperature: float32(temperature),
	}, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Complete sends a single-turn generation request and returns the concatenated text parts
func (p *GeminiProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(p.temperature)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}

	content := strings.TrimSpace(out.String())
	if content == "" {
		return "", fmt.Errorf("gemini returned an empty completion")
	}

	return content, nil
}

func (p *GeminiProvider) Close() error {
	return p.client.Close()
}
