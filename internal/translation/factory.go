package translation

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Provider names accepted by New
const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

// Config selects and configures a backend
type Config struct {
	Provider    string
	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string
	Endpoint    string // overrides the Google endpoint
	Timeout     time.Duration

	// BreakerFailures opens a circuit breaker after this many consecutive
	// failures. Zero disables the breaker.
	BreakerFailures uint32
	BreakerCooldown time.Duration
	OnBreakerChange func(from, to string)
}

// New builds the configured translator
func New(ctx context.Context, cfg Config) (Translator, error) {
	var t Translator

	switch strings.ToLower(cfg.Provider) {
	case "", ProviderGoogle:
		t = NewGoogleTranslator(cfg.Endpoint, cfg.Timeout)
	case ProviderOpenAI:
		t = NewOpenAITranslator(cfg.OpenAIKey, cfg.OpenAIModel, cfg.Timeout)
	case ProviderGemini:
		g, err := NewGeminiTranslator(ctx, cfg.GeminiKey, cfg.GeminiModel, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		t = g
	case ProviderNone:
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", cfg.Provider)
	}

	if cfg.BreakerFailures > 0 {
		cooldown := cfg.BreakerCooldown
		if cooldown <= 0 {
			cooldown = 30 * time.Second
		}
		t = NewBreakerTranslator(t, cfg.BreakerFailures, cooldown, cfg.OnBreakerChange)
	}

	return t, nil
}
