package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

var (
	// ErrNoAPIKey is returned by backends that need a key when none is set
	ErrNoAPIKey = errors.New("API key not found")
	// ErrEmptyTranslation is returned when a backend answers with no text
	ErrEmptyTranslation = errors.New("no translation returned")
	// ErrDisabled is returned by the translator used when remote translation is off
	ErrDisabled = errors.New("remote translation disabled")
)

// Translator translates text between two languages identified by ISO 639-1 codes
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

var languageNames = map[string]string{
	"mr": "Marathi",
	"hi": "Hindi",
	"en": "English",
	"gu": "Gujarati",
	"kn": "Kannada",
	"bg": "Bulgarian",
}

// LanguageName returns the English name of a language code, or the code itself
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

// prompt builds the instruction sent to chat style backends
func prompt(text, from, to string) string {
	return fmt.Sprintf("Translate the following %s text to %s. It is a value from a spreadsheet cell. Respond with only the %s translation, nothing else.\n\n%s",
		LanguageName(from), LanguageName(to), LanguageName(to), text)
}

// OpenAITranslator translates with an OpenAI chat model
type OpenAITranslator struct {
	apiKey  string
	model   string
	timeout time.Duration
	client  *openai.Client
}

// NewOpenAITranslator creates a new translator instance
func NewOpenAITranslator(apiKey, model string, timeout time.Duration) *OpenAITranslator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITranslator{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
		client:  openai.NewClient(apiKey),
	}
}

// Translate translates text from one language to another
func (t *OpenAITranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI: %w", ErrNoAPIKey)
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt(text, from, to),
			},
		},
		MaxTokens:   256,
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyTranslation
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", ErrEmptyTranslation
	}
	return translation, nil
}

// Disabled is the translator used when no remote backend is configured.
// Every call fails, so callers fall back to the original text.
type Disabled struct{}

// Translate always returns ErrDisabled
func (Disabled) Translate(ctx context.Context, text, from, to string) (string, error) {
	return "", ErrDisabled
}
