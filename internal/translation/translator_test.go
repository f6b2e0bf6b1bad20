package translation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/csvlocalizer/internal/testutil"
)

func TestNewOpenAITranslator(t *testing.T) {
	translator := NewOpenAITranslator("test-api-key", "", 0)

	if translator == nil {
		t.Fatal("NewOpenAITranslator returned nil")
	}

	if translator.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", translator.apiKey)
	}

	if translator.model != "gpt-4o-mini" {
		t.Errorf("Expected default model 'gpt-4o-mini', got '%s'", translator.model)
	}

	if translator.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestOpenAITranslate_NoAPIKey(t *testing.T) {
	translator := NewOpenAITranslator("", "", 0)

	_, err := translator.Translate(context.Background(), "गावाचे नाव", "mr", "en")
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("Expected ErrNoAPIKey, got: %v", err)
	}
}

func TestOpenAITranslate_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	translator := NewOpenAITranslator(apiKey, "", 30*time.Second)

	translation, err := translator.Translate(context.Background(), "शाळा", "mr", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if translation == "" {
		t.Error("Got empty translation")
	}

	t.Logf("Translation of 'शाळा': %s", translation)
}

func TestGeminiTranslate_NoAPIKey(t *testing.T) {
	translator, err := NewGeminiTranslator(context.Background(), "", "", 0)
	if err != nil {
		t.Fatalf("NewGeminiTranslator failed: %v", err)
	}

	if translator.model != DefaultGeminiModel {
		t.Errorf("Expected model %s, got %s", DefaultGeminiModel, translator.model)
	}

	_, err = translator.Translate(context.Background(), "शाळा", "mr", "en")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("Expected ErrNoAPIKey, got: %v", err)
	}
}

func TestGeminiTranslate_Integration(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: GEMINI_API_KEY not set")
	}

	translator, err := NewGeminiTranslator(context.Background(), apiKey, "", 30*time.Second)
	if err != nil {
		t.Fatalf("NewGeminiTranslator failed: %v", err)
	}

	translation, err := translator.Translate(context.Background(), "शाळा", "mr", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	t.Logf("Translation of 'शाळा': %s", translation)
}

func TestGoogleTranslate(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"client": q.Get("client"),
			"sl":     q.Get("sl"),
			"tl":     q.Get("tl"),
			"dt":     q.Get("dt"),
			"q":      q.Get("q"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[[["Village name ","गावाचे नाव",null,null,10],["Wai","वाई",null,null,10]],null,"mr"]`))
	}))
	defer server.Close()

	translator := NewGoogleTranslator(server.URL, 5*time.Second)
	got, err := translator.Translate(context.Background(), "गावाचे नाव वाई", "mr", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if got != "Village name Wai" {
		t.Errorf("Expected 'Village name Wai', got '%s'", got)
	}

	expected := map[string]string{
		"client": "gtx",
		"sl":     "mr",
		"tl":     "en",
		"dt":     "t",
		"q":      "गावाचे नाव वाई",
	}
	if !reflect.DeepEqual(gotQuery, expected) {
		t.Errorf("Query = %v, want %v", gotQuery, expected)
	}
}

func TestGoogleTranslate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "oops"},
		{name: "too many requests", status: http.StatusTooManyRequests, body: ""},
		{name: "invalid json", status: http.StatusOK, body: "<html>"},
		{name: "empty translation", status: http.StatusOK, body: `[[],null,"mr"]`, wantErr: ErrEmptyTranslation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			translator := NewGoogleTranslator(server.URL, 5*time.Second)
			_, err := translator.Translate(context.Background(), "शाळा", "mr", "en")
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGoogleTranslate_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	translator := NewGoogleTranslator(url, time.Second)
	if _, err := translator.Translate(context.Background(), "शाळा", "mr", "en"); err == nil {
		t.Error("Expected error for unreachable endpoint")
	}
}

func TestGoogleTranslate_Integration(t *testing.T) {
	if os.Getenv("CSVLOCALIZER_NETWORK_TESTS") == "" {
		t.Skip("Skipping integration test: CSVLOCALIZER_NETWORK_TESTS not set")
	}

	translator := NewGoogleTranslator("", 10*time.Second)
	translation, err := translator.Translate(context.Background(), "शाळा", "mr", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	t.Logf("Translation of 'शाळा': %s", translation)
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Translate(context.Background(), "शाळा", "mr", "en")
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Expected ErrDisabled, got %v", err)
	}
}

func TestLanguageName(t *testing.T) {
	tests := map[string]string{
		"mr": "Marathi",
		"MR": "Marathi",
		"en": "English",
		"xx": "xx",
	}
	for code, want := range tests {
		if got := LanguageName(code); got != want {
			t.Errorf("LanguageName(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestBreakerTranslator(t *testing.T) {
	mock := &testutil.MockTranslator{
		Errors: map[string]error{"शाळा": errors.New("network down")},
	}

	var transitions []string
	breaker := NewBreakerTranslator(mock, 2, time.Hour, func(from, to string) {
		transitions = append(transitions, from+"->"+to)
	})

	for i := 0; i < 2; i++ {
		if _, err := breaker.Translate(context.Background(), "शाळा", "mr", "en"); err == nil {
			t.Fatal("Expected error from failing backend")
		}
	}

	if breaker.State() != "open" {
		t.Fatalf("Expected breaker to be open, got %s", breaker.State())
	}

	_, err := breaker.Translate(context.Background(), "गाव", "mr", "en")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Expected ErrOpenState, got %v", err)
	}

	if len(mock.Calls) != 2 {
		t.Errorf("Expected 2 backend calls, got %d", len(mock.Calls))
	}

	if !reflect.DeepEqual(transitions, []string{"closed->open"}) {
		t.Errorf("Transitions = %v", transitions)
	}
}

func TestBreakerTranslator_PassesThrough(t *testing.T) {
	mock := &testutil.MockTranslator{
		Translations: map[string]string{"शाळा": "school"},
	}
	breaker := NewBreakerTranslator(mock, 3, time.Minute, nil)

	got, err := breaker.Translate(context.Background(), "शाळा", "mr", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "school" {
		t.Errorf("Expected 'school', got '%s'", got)
	}
	if breaker.State() != "closed" {
		t.Errorf("Expected closed breaker, got %s", breaker.State())
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     Config
		check   func(Translator) bool
		wantErr bool
	}{
		{
			name:  "default is google",
			cfg:   Config{},
			check: func(tr Translator) bool { _, ok := tr.(*GoogleTranslator); return ok },
		},
		{
			name:  "openai",
			cfg:   Config{Provider: "openai", OpenAIKey: "k"},
			check: func(tr Translator) bool { _, ok := tr.(*OpenAITranslator); return ok },
		},
		{
			name:  "gemini without key",
			cfg:   Config{Provider: "gemini"},
			check: func(tr Translator) bool { _, ok := tr.(*GeminiTranslator); return ok },
		},
		{
			name:  "none",
			cfg:   Config{Provider: "none", BreakerFailures: 3},
			check: func(tr Translator) bool { _, ok := tr.(Disabled); return ok },
		},
		{
			name:  "with breaker",
			cfg:   Config{Provider: "Google", BreakerFailures: 3},
			check: func(tr Translator) bool { _, ok := tr.(*BreakerTranslator); return ok },
		},
		{
			name:    "unknown",
			cfg:     Config{Provider: "babelfish"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := New(ctx, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !tt.check(tr) {
				t.Errorf("New() returned unexpected type %T", tr)
			}
		})
	}
}

func TestGlossary(t *testing.T) {
	glossary := NewGlossary()

	_, found := glossary.Get("शाळा")
	if found {
		t.Error("Expected not found in empty glossary")
	}

	glossary.Add("शाळा", "school")
	glossary.Add("गाव", "village")
	glossary.Add("शाळा", "school (building)")

	if glossary.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", glossary.Len())
	}

	translation, found := glossary.Get("शाळा")
	if !found || translation != "school (building)" {
		t.Errorf("Expected 'school (building)', got '%s'", translation)
	}

	expected := []GlossaryEntry{
		{Source: "शाळा", Translation: "school (building)"},
		{Source: "गाव", Translation: "village"},
	}
	entries := glossary.Entries()
	if !reflect.DeepEqual(entries, expected) {
		t.Errorf("Entries() = %v, want %v", entries, expected)
	}

	entries[0].Translation = "modified"
	if got, _ := glossary.Get("शाळा"); got != "school (building)" {
		t.Error("Glossary was modified through returned slice")
	}
}

func TestGlossary_Save(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "glossary.txt")

	glossary := NewGlossary()
	glossary.Add("शाळा", "school")
	glossary.Add("पत्ता\nदुसरी ओळ", "address\nsecond line")

	if err := glossary.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read glossary file: %v", err)
	}

	expected := "शाळा = school\nपत्ता दुसरी ओळ = address second line\n"
	if string(content) != expected {
		t.Errorf("Expected content %q, got %q", expected, string(content))
	}
}

func TestGlossary_SaveInvalidPath(t *testing.T) {
	err := NewGlossary().Save("/nonexistent/path/glossary.txt")
	if err == nil {
		t.Error("Expected error for invalid path")
	}
}
