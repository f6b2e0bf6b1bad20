package internal

import (
	"path/filepath"
	"strings"
	"unicode"
)

// OutputSuffix is appended to the input name to form the default output
const OutputSuffix = "_en"

// DefaultOutputPath derives the output file for an input: survey.csv and
// survey.xlsx become survey_en.csv next to the input. A sheets://<id>
// source becomes <id>_en.csv in the working directory.
func DefaultOutputPath(input string) string {
	if id, ok := strings.CutPrefix(input, "sheets://"); ok {
		return SanitizeFilename(id) + OutputSuffix + ".csv"
	}

	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	return base + OutputSuffix + ".csv"
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "output"
	}
	return b.String()
}
