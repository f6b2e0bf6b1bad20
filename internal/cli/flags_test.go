package cli

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Provider", flags.Provider, "google"},
		{"SourceLang", flags.SourceLang, "mr"},
		{"TargetLang", flags.TargetLang, "en"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini"},
		{"GeminiModel", flags.GeminiModel, "gemini-2.0-flash"},
		{"Timeout", flags.Timeout, 30 * time.Second},
		{"BreakerFailures", flags.BreakerFailures, uint32(0)},
		{"HeaderMatch", flags.HeaderMatch, "last"},
		{"SQLiteTable", flags.SQLiteTable, "responses"},
		{"SheetRange", flags.SheetRange, "A:ZZ"},
		{"LogLevel", flags.LogLevel, "warn"},
		{"LogFormat", flags.LogFormat, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"Archive", flags.Archive},
		{"ListModels", flags.ListModels},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"BatchFile", flags.BatchFile},
		{"MappingsFile", flags.MappingsFile},
		{"GlossaryFile", flags.GlossaryFile},
		{"SQLiteFile", flags.SQLiteFile},
		{"CredentialsFile", flags.CredentialsFile},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestFlagsValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(f *Flags)
		wantErr string
	}{
		{"defaults", func(f *Flags) {}, ""},
		{"openai provider", func(f *Flags) { f.Provider = "openai" }, ""},
		{"first match", func(f *Flags) { f.HeaderMatch = "first" }, ""},
		{"unknown provider", func(f *Flags) { f.Provider = "deepl" }, "--provider must be one of: google, openai, gemini, none"},
		{"unknown header match", func(f *Flags) { f.HeaderMatch = "longest" }, "--header-match"},
		{"empty source language", func(f *Flags) { f.SourceLang = "" }, "--source-lang must not be empty"},
		{"bad log format", func(f *Flags) { f.LogFormat = "xml" }, "--log-format"},
		{"negative timeout", func(f *Flags) { f.Timeout = -time.Second }, "--timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := NewFlags()
			tt.modify(flags)

			err := flags.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
