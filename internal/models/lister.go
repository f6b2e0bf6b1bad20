package models

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// Lister handles listing available chat models
type Lister struct {
	apiKey string
	client *openai.Client
	out    io.Writer
}

// NewLister creates a new OpenAI model lister writing to stdout
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		out:    os.Stdout,
	}
}

// SetOutput redirects the listing
func (l *Lister) SetOutput(w io.Writer) {
	l.out = w
}

// ListAvailableModels prints the OpenAI chat models usable for translation
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .csvlocalizer.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}

	printModels(l.out, "Available OpenAI chat models (for --openai-model):", ChatModels(ids))
	return nil
}

// ChatModels filters model IDs down to chat models and sorts them
func ChatModels(ids []string) []string {
	var chat []string
	for _, id := range ids {
		switch {
		case strings.Contains(id, "tts"), strings.Contains(id, "audio"),
			strings.Contains(id, "realtime"), strings.Contains(id, "transcribe"),
			strings.Contains(id, "dall-e"), strings.Contains(id, "image"),
			strings.Contains(id, "embedding"), strings.Contains(id, "search"):
			continue
		case strings.HasPrefix(id, "gpt"), strings.Contains(id, "chat"),
			strings.HasPrefix(id, "o1"), strings.HasPrefix(id, "o3"), strings.HasPrefix(id, "o4"):
			chat = append(chat, id)
		}
	}
	sort.Strings(chat)
	return chat
}

// ListGeminiModels prints the Gemini models that support content generation
func ListGeminiModels(ctx context.Context, apiKey string, out io.Writer) error {
	if apiKey == "" {
		return fmt.Errorf("Gemini API key not found. Set GEMINI_API_KEY environment variable or configure in .csvlocalizer.yaml")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	var names []string
	for model, err := range client.Models.All(ctx) {
		if err != nil {
			return fmt.Errorf("failed to list models: %w", err)
		}
		if supports(model.SupportedActions, "generateContent") {
			names = append(names, strings.TrimPrefix(model.Name, "models/"))
		}
	}
	sort.Strings(names)

	printModels(out, "Available Gemini models (for --gemini-model):", names)
	return nil
}

func supports(actions []string, action string) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

func printModels(out io.Writer, title string, names []string) {
	fmt.Fprintln(out, title)
	if len(names) == 0 {
		fmt.Fprintln(out, "  No chat models found")
		return
	}
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}
}
