package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	BatchFile  string
	Archive    bool
	ListModels bool

	// Translation flags
	Provider        string        `flag:"provider" validate:"oneof=google openai gemini none"`
	SourceLang      string        `flag:"source-lang" validate:"required"`
	TargetLang      string        `flag:"target-lang" validate:"required"`
	OpenAIModel     string        `flag:"openai-model"`
	GeminiModel     string        `flag:"gemini-model"`
	Timeout         time.Duration `flag:"timeout" validate:"gte=0s"`
	BreakerFailures uint32        `flag:"breaker-failures"`

	// Mapping flags
	MappingsFile string
	HeaderMatch  string `flag:"header-match" validate:"oneof=last first"`

	// Output flags
	GlossaryFile string
	SQLiteFile   string
	SQLiteTable  string

	// Google Sheets input
	SheetRange      string
	CredentialsFile string

	// Logging flags
	LogLevel  string `flag:"log-level" validate:"oneof=debug info warn warning error"`
	LogFormat string `flag:"log-format" validate:"oneof=text json"`
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Provider:    "google",
		SourceLang:  "mr",
		TargetLang:  "en",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
		Timeout:     30 * time.Second,
		HeaderMatch: "last",
		SQLiteTable: "responses",
		SheetRange:  "A:ZZ",
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}
