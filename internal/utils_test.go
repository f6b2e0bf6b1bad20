package internal

import (
	"path/filepath"
	"testing"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"survey.csv", "survey_en.csv"},
		{filepath.Join("data", "survey.csv"), filepath.Join("data", "survey_en.csv")},
		{"responses.xlsx", "responses_en.csv"},
		{"noext", "noext_en.csv"},
		{"sheets://1AbC-d_9", "1AbC-d_9_en.csv"},
		{"sheets://a/b", "a_b_en.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DefaultOutputPath(tt.input); got != tt.want {
				t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello", "hello"},
		{"hello world", "hello_world"},
		{"गाव/नाव", "गाव_नाव"},
		{"a.b:c", "a_b_c"},
		{"", "output"},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.input); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
