package localize

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"codeberg.org/snonux/csvlocalizer/internal/mapping"
	"codeberg.org/snonux/csvlocalizer/internal/table"
	"codeberg.org/snonux/csvlocalizer/internal/translation"
)

// Source tells which rule produced a Result
type Source int

const (
	SourceMissing Source = iota
	SourceTrivial
	SourceDictionary
	SourceRemote
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceMissing:
		return "missing"
	case SourceTrivial:
		return "trivial"
	case SourceDictionary:
		return "dictionary"
	case SourceRemote:
		return "remote"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Result is the outcome of resolving one cell. For SourceFallback, Text is
// the original value and Err holds the translator error.
type Result struct {
	Text   string
	Source Source
	Err    error
}

// Failed reports whether the remote translation failed
func (r Result) Failed() bool {
	return r.Source == SourceFallback
}

// ValueTranslator resolves cell values: trivial passthrough, then the value
// mapping, then the remote translator.
type ValueTranslator struct {
	values *mapping.ValueMapping
	remote translation.Translator
	from   string
	to     string
}

// NewValueTranslator creates a resolver translating from one language to another
func NewValueTranslator(values *mapping.ValueMapping, remote translation.Translator, from, to string) *ValueTranslator {
	return &ValueTranslator{
		values: values,
		remote: remote,
		from:   from,
		to:     to,
	}
}

// Resolve returns the English text for a cell. Remote failures never
// escape: the result carries the original value and the error.
func (v *ValueTranslator) Resolve(ctx context.Context, cell table.Cell) Result {
	if cell.Missing {
		return Result{Text: "", Source: SourceMissing}
	}

	trimmed := strings.TrimSpace(cell.Value)
	if IsTrivial(trimmed) {
		return Result{Text: trimmed, Source: SourceTrivial}
	}

	if mapped, ok := v.values.Lookup(trimmed); ok {
		return Result{Text: mapped, Source: SourceDictionary}
	}

	translated, err := v.remote.Translate(ctx, trimmed, v.from, v.to)
	if err != nil {
		return Result{Text: cell.Value, Source: SourceFallback, Err: err}
	}
	return Result{Text: translated, Source: SourceRemote}
}

// IsTrivial reports whether trimmed text is exempt from translation: empty,
// a single character, or made only of numeric characters (Devanagari digits
// included).
func IsTrivial(trimmed string) bool {
	if utf8.RuneCountInString(trimmed) <= 1 {
		return true
	}
	for _, r := range trimmed {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
