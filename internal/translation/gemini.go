package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiTranslator translates with a Gemini model
type GeminiTranslator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiTranslator creates a Gemini backed translator. Without an API key
// it still returns a translator, whose calls fail with ErrNoAPIKey.
func NewGeminiTranslator(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiTranslator, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	g := &GeminiTranslator{model: model, timeout: timeout}
	if apiKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	g.client = client
	return g, nil
}

// Translate translates text from one language to another
func (g *GeminiTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("Gemini: %w", ErrNoAPIKey)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	temperature := float32(0.3)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt(text, from, to)), &genai.GenerateContentConfig{
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", ErrEmptyTranslation
	}
	return translation, nil
}
