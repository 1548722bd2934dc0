package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// OllamaProvider talks to a local or remote Ollama server via its chat API
type OllamaProvider struct {
	host        string
	model       string
	temperature float64
	client      *resty.Client
}

// Ensure OllamaProvider implements Provider
var _ Provider = (*OllamaProvider)(nil)

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

// NewOllamaProvider creates a new Ollama completion backend
func NewOllamaProvider(host, model string, temperature float64) *OllamaProvider {
	return &OllamaProvider{
		host:        strings.TrimRight(host, "/"),
		model:       model,
		temperature: temperature,
		client:      resty.New().SetTimeout(120 * time.Second),
	}
}

func (p *OllamaProvider) Name() string {
	return "ollama"
}

// Complete sends a non-streaming chat request and returns the assistant message
func (p *OllamaProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	var messages []ollamaMessage
	if system != "" {
		messages = append(messages, ollamaMessage{Role: "system", Content: system})
	}
	messages = append(messages, ollamaMessage{Role: "user", Content: prompt})

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(ollamaChatRequest{
			Model:    p.model,
			Messages: messages,
			Stream:   false,
			Options:  ollamaOptions{Temperature: p.temperature},
		}).
		Post(p.host + "/api/chat")

	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(resp.Body(), &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse ollama response: %w", err)
	}

	content := strings.TrimSpace(chatResp.Message.Content)
	if content == "" {
		return "", fmt.Errorf("ollama returned an empty completion")
	}

	return content, nil
}

func (p *OllamaProvider) Close() error {
	return nil
}
