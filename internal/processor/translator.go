package processor

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"codeberg.org/snonux/csvlocalizer/internal/cli"
	"codeberg.org/snonux/csvlocalizer/internal/translation"
)

// NewTranslator builds the translator selected by flags, reading API keys
// from the environment or config file.
func NewTranslator(ctx context.Context, flags *cli.Flags, logger *slog.Logger) (translation.Translator, error) {
	cfg := translation.Config{
		Provider:        flags.Provider,
		OpenAIKey:       cli.GetOpenAIKey(),
		OpenAIModel:     flags.OpenAIModel,
		GeminiKey:       cli.GetGeminiKey(),
		GeminiModel:     flags.GeminiModel,
		Timeout:         flags.Timeout,
		BreakerFailures: flags.BreakerFailures,
		OnBreakerChange: func(from, to string) {
			logger.Warn("translation breaker changed state", slog.String("from", from), slog.String("to", to))
			if to == "open" {
				fmt.Fprintf(os.Stderr, "Warning: %s failed %d times in a row, keeping original values for a while\n",
					flags.Provider, flags.BreakerFailures)
			}
		},
	}

	switch {
	case flags.Provider == translation.ProviderOpenAI && cfg.OpenAIKey == "":
		fmt.Fprintf(os.Stderr, "Warning: OpenAI API key not found, values will stay untranslated. Set OPENAI_API_KEY or openai_key in .csvlocalizer.yaml\n")
	case flags.Provider == translation.ProviderGemini && cfg.GeminiKey == "":
		fmt.Fprintf(os.Stderr, "Warning: Gemini API key not found, values will stay untranslated. Set GEMINI_API_KEY or gemini_key in .csvlocalizer.yaml\n")
	}

	t, err := translation.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create translator: %w", err)
	}
	return t, nil
}
