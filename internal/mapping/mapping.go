package mapping

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Entry is a single source phrase and its canonical replacement
type Entry struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// HeaderMapping is an ordered list of header phrases. Order matters: when a
// header contains several keys, the entries are applied in sequence.
type HeaderMapping struct {
	entries []Entry
	targets map[string]struct{}
}

// NewHeaderMapping builds a header mapping from entries, keeping their order.
// Entries with an empty key are dropped.
func NewHeaderMapping(entries []Entry) *HeaderMapping {
	hm := &HeaderMapping{
		entries: make([]Entry, 0, len(entries)),
		targets: make(map[string]struct{}, len(entries)),
	}
	for _, e := range entries {
		key := Normalize(strings.TrimSpace(e.Key))
		if key == "" {
			continue
		}
		hm.entries = append(hm.entries, Entry{Key: key, Value: e.Value})
		hm.targets[e.Value] = struct{}{}
	}
	return hm
}

// Entries returns a copy of the entries in their defined order
func (hm *HeaderMapping) Entries() []Entry {
	out := make([]Entry, len(hm.entries))
	copy(out, hm.entries)
	return out
}

// Len returns the number of entries
func (hm *HeaderMapping) Len() int {
	return len(hm.entries)
}

// IsTarget reports whether name is one of the canonical header names, i.e.
// whether the column's values should be translated.
func (hm *HeaderMapping) IsTarget(name string) bool {
	_, ok := hm.targets[name]
	return ok
}

// Targets returns the set of canonical names
func (hm *HeaderMapping) Targets() map[string]struct{} {
	out := make(map[string]struct{}, len(hm.targets))
	for k := range hm.targets {
		out[k] = struct{}{}
	}
	return out
}

// ValueMapping maps known source tokens straight to English
type ValueMapping struct {
	values map[string]string
}

// NewValueMapping builds a value mapping; later entries override earlier ones
func NewValueMapping(entries []Entry) *ValueMapping {
	vm := &ValueMapping{values: make(map[string]string, len(entries))}
	for _, e := range entries {
		key := Normalize(strings.TrimSpace(e.Key))
		if key == "" {
			continue
		}
		vm.values[key] = e.Value
	}
	return vm
}

// Lookup returns the canonical value for an exact token
func (vm *ValueMapping) Lookup(token string) (string, bool) {
	v, ok := vm.values[Normalize(token)]
	return v, ok
}

// Len returns the number of tokens
func (vm *ValueMapping) Len() int {
	return len(vm.values)
}

// Set bundles the two dictionaries used by a run
type Set struct {
	Headers *HeaderMapping
	Values  *ValueMapping
}

// Normalize returns s in Unicode NFC so that composed and decomposed
// Devanagari compare equal.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
