package translation

import (
	"fmt"
	"os"
	"strings"
)

// GlossaryEntry is one source text and the translation the backend returned
type GlossaryEntry struct {
	Source      string
	Translation string
}

// Glossary records the remote translations made during a run, in the order
// they happened. It is a report only and is never consulted for lookups.
type Glossary struct {
	entries []GlossaryEntry
	seen    map[string]int
}

// NewGlossary creates an empty glossary
func NewGlossary() *Glossary {
	return &Glossary{
		seen: make(map[string]int),
	}
}

// Add records a translation. A repeated source keeps its first position and
// takes the latest translation.
func (g *Glossary) Add(source, translation string) {
	if i, ok := g.seen[source]; ok {
		g.entries[i].Translation = translation
		return
	}
	g.seen[source] = len(g.entries)
	g.entries = append(g.entries, GlossaryEntry{Source: source, Translation: translation})
}

// Get retrieves a recorded translation
func (g *Glossary) Get(source string) (string, bool) {
	i, ok := g.seen[source]
	if !ok {
		return "", false
	}
	return g.entries[i].Translation, true
}

// Len returns the number of distinct sources
func (g *Glossary) Len() int {
	return len(g.entries)
}

// Entries returns a copy of all entries in insertion order
func (g *Glossary) Entries() []GlossaryEntry {
	result := make([]GlossaryEntry, len(g.entries))
	copy(result, g.entries)
	return result
}

// Save writes one "source = translation" line per entry
func (g *Glossary) Save(path string) error {
	var sb strings.Builder
	for _, e := range g.entries {
		fmt.Fprintf(&sb, "%s = %s\n", oneLine(e.Source), oneLine(e.Translation))
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write glossary file: %w", err)
	}
	return nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
