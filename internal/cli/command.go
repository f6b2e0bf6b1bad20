package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/csvlocalizer/internal"
)

// flag name -> viper key
var viperKeys = map[string]string{
	"provider":         "translate.provider",
	"source-lang":      "translate.source_lang",
	"target-lang":      "translate.target_lang",
	"openai-model":     "translate.openai_model",
	"gemini-model":     "translate.gemini_model",
	"timeout":          "translate.timeout",
	"breaker-failures": "translate.breaker_failures",
	"mappings":         "mapping.file",
	"header-match":     "mapping.header_match",
	"glossary":         "output.glossary",
	"sqlite":           "output.sqlite",
	"sqlite-table":     "output.sqlite_table",
	"sheet-range":      "google.sheet_range",
	"credentials":      "google.credentials_file",
	"log-level":        "log.level",
	"log-format":       "log.format",
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csvlocalizer [input] [output]",
		Short: "Marathi to English CSV localizer",
		Long: `csvlocalizer converts survey exports with Marathi column headers and
answers into English.

Headers are renamed through a phrase dictionary. Values in the renamed
columns are looked up in a small answer dictionary and everything else is
sent to a machine translation service. When a translation fails the
original value is kept.

Examples:
  csvlocalizer survey.csv                     # writes survey_en.csv
  csvlocalizer survey.xlsx out.csv            # Excel in, CSV out
  csvlocalizer sheets://<spreadsheet-id> out.csv
  csvlocalizer --provider openai survey.csv   # translate with OpenAI
  csvlocalizer --batch jobs.txt               # process many files`,
		Args:    cobra.MaximumNArgs(2),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.csvlocalizer.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process files listed in a batch file (input or 'input = output' per line)")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move an existing output file to archive/ before writing")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List chat models available for the selected provider")

	// Translation flags
	cmd.Flags().StringVarP(&flags.Provider, "provider", "p", flags.Provider, "Translation provider: google, openai, gemini or none")
	cmd.Flags().StringVar(&flags.SourceLang, "source-lang", flags.SourceLang, "Source language code")
	cmd.Flags().StringVar(&flags.TargetLang, "target-lang", flags.TargetLang, "Target language code")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for translation")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used for translation")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout for a single translation request")
	cmd.Flags().Uint32Var(&flags.BreakerFailures, "breaker-failures", 0, "Stop calling the provider after this many consecutive failures (0 disables)")

	// Mapping flags
	cmd.Flags().StringVarP(&flags.MappingsFile, "mappings", "m", "", "YAML file with extra header and value mappings")
	cmd.Flags().StringVar(&flags.HeaderMatch, "header-match", flags.HeaderMatch, "Header mapping strategy: last (every match applied) or first")

	// Output flags
	cmd.Flags().StringVar(&flags.GlossaryFile, "glossary", "", "Write remotely translated values to this file")
	cmd.Flags().StringVar(&flags.SQLiteFile, "sqlite", "", "Also export the localized table to this SQLite database")
	cmd.Flags().StringVar(&flags.SQLiteTable, "sqlite-table", flags.SQLiteTable, "Table name for --sqlite")

	// Google Sheets flags
	cmd.Flags().StringVar(&flags.SheetRange, "sheet-range", flags.SheetRange, "A1 range read from sheets:// inputs")
	cmd.Flags().StringVar(&flags.CredentialsFile, "credentials", "", "Google service account JSON for sheets:// inputs")

	// Logging flags
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn or error")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	for name, key := range viperKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			viper.BindPFlag(key, f)
		}
	}
}

// ApplyConfig copies values from viper into flags, so settings from the
// config file and CSVLOCALIZER_* environment variables take effect unless
// a flag was given on the command line.
func ApplyConfig(flags *Flags) {
	flags.Provider = viper.GetString("translate.provider")
	flags.SourceLang = viper.GetString("translate.source_lang")
	flags.TargetLang = viper.GetString("translate.target_lang")
	flags.OpenAIModel = viper.GetString("translate.openai_model")
	flags.GeminiModel = viper.GetString("translate.gemini_model")
	flags.Timeout = viper.GetDuration("translate.timeout")
	flags.BreakerFailures = viper.GetUint32("translate.breaker_failures")
	flags.MappingsFile = viper.GetString("mapping.file")
	flags.HeaderMatch = viper.GetString("mapping.header_match")
	flags.GlossaryFile = viper.GetString("output.glossary")
	flags.SQLiteFile = viper.GetString("output.sqlite")
	flags.SQLiteTable = viper.GetString("output.sqlite_table")
	flags.SheetRange = viper.GetString("google.sheet_range")
	flags.CredentialsFile = viper.GetString("google.credentials_file")
	flags.LogLevel = viper.GetString("log.level")
	flags.LogFormat = viper.GetString("log.format")
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A .env file in the working directory may carry API keys
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".csvlocalizer" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".csvlocalizer")
	}

	// Environment variables
	viper.SetEnvPrefix("CSVLOCALIZER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("gemini_key")
}
