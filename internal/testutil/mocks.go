package testutil

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// MockTranslator mocks translation service
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	// Err, when set, is returned for every text not listed in Translations
	Err   error
	// OnTranslate runs before each call is answered
	OnTranslate func(text string)
	Calls       []string
}

// Translate mocks translating text
func (m *MockTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	call := fmt.Sprintf("Translate: %s (%s->%s)", text, fromLang, toLang)
	m.Calls = append(m.Calls, call)

	if m.OnTranslate != nil {
		m.OnTranslate(text)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	if m.Err != nil {
		return "", m.Err
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// CallsFor returns how many times text was sent for translation
func (m *MockTranslator) CallsFor(text string) int {
	n := 0
	prefix := fmt.Sprintf("Translate: %s (", text)
	for _, c := range m.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// LogRecord represents a captured log record
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// BufferedSlogHandler captures log records for assertions
type BufferedSlogHandler struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewBufferedSlogHandler creates a new buffered handler
func NewBufferedSlogHandler() *BufferedSlogHandler {
	return &BufferedSlogHandler{}
}

// Enabled implements slog.Handler
func (h *BufferedSlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle implements slog.Handler
func (h *BufferedSlogHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, LogRecord{Level: r.Level, Message: r.Message, Attrs: attrs})
	return nil
}

// WithAttrs implements slog.Handler; attributes are not tracked
func (h *BufferedSlogHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler; groups are not tracked
func (h *BufferedSlogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Records returns a copy of the captured records
func (h *BufferedSlogHandler) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]LogRecord, len(h.records))
	copy(out, h.records)
	return out
}

// RecordsWithMessage returns the records whose message equals msg
func (h *BufferedSlogHandler) RecordsWithMessage(msg string) []LogRecord {
	var out []LogRecord
	for _, r := range h.Records() {
		if r.Message == msg {
			out = append(out, r)
		}
	}
	return out
}

// Logger returns a logger writing into h
func (h *BufferedSlogHandler) Logger() *slog.Logger {
	return slog.New(h)
}
