// Package localize rewrites a Marathi table into English: it renames
// headers through the header mapping and resolves the cells of translation
// target columns through the value mapping and a remote translator.
package localize

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/csvlocalizer/internal/mapping"
)

// HeaderMatch selects how a header that contains several mapping keys is resolved
type HeaderMatch string

const (
	// MatchLast applies every matching entry in mapping order, so the last
	// one wins. Later keys are tested against the already replaced text.
	MatchLast HeaderMatch = "last"
	// MatchFirst stops at the first entry whose key occurs in the header
	MatchFirst HeaderMatch = "first"
)

// ParseHeaderMatch validates a strategy name; empty means MatchLast
func ParseHeaderMatch(s string) (HeaderMatch, error) {
	switch HeaderMatch(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchLast:
		return MatchLast, nil
	case MatchFirst:
		return MatchFirst, nil
	default:
		return "", fmt.Errorf("unknown header match strategy: %s (want last or first)", s)
	}
}

// NormalizeHeaders returns the renamed headers, same length and order as
// headers. Unmatched headers come back with surrounding whitespace trimmed.
func NormalizeHeaders(headers []string, hm *mapping.HeaderMapping, match HeaderMatch) []string {
	entries := hm.Entries()
	out := make([]string, len(headers))

	for i, h := range headers {
		current := strings.TrimSpace(h)
		for _, e := range entries {
			if strings.Contains(mapping.Normalize(current), e.Key) {
				current = e.Value
				if match == MatchFirst {
					break
				}
			}
		}
		out[i] = current
	}

	return out
}
