package models

import (
	"bytes"
	"context"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("")

	err := lister.ListAvailableModels(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	expectedError := "OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .csvlocalizer.yaml"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got: %v", expectedError, err)
	}
}

func TestListGeminiModels_NoAPIKey(t *testing.T) {
	err := ListGeminiModels(context.Background(), "", &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("Expected missing key error, got: %v", err)
	}
}

func TestChatModels(t *testing.T) {
	ids := []string{
		"tts-1", "gpt-4o-mini", "dall-e-3", "gpt-4o-audio-preview",
		"text-embedding-3-small", "gpt-3.5-turbo", "o3-mini", "whisper-1",
		"chatgpt-4o-latest", "gpt-image-1", "gpt-4o-realtime-preview",
	}

	got := ChatModels(ids)
	want := []string{"chatgpt-4o-latest", "gpt-3.5-turbo", "gpt-4o-mini", "o3-mini"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChatModels() = %v, want %v", got, want)
	}
}

func TestPrintModels(t *testing.T) {
	var buf bytes.Buffer
	printModels(&buf, "Models:", nil)
	if !strings.Contains(buf.String(), "No chat models found") {
		t.Errorf("Unexpected output for empty list: %q", buf.String())
	}

	buf.Reset()
	printModels(&buf, "Models:", []string{"gpt-4o"})
	if buf.String() != "Models:\n  gpt-4o\n" {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestListAvailableModels_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	var buf bytes.Buffer
	lister := NewLister(apiKey)
	lister.SetOutput(&buf)

	if err := lister.ListAvailableModels(context.Background()); err != nil {
		t.Errorf("ListAvailableModels failed: %v", err)
	}
	if !strings.Contains(buf.String(), "gpt") {
		t.Errorf("Expected at least one gpt model, got: %s", buf.String())
	}
}

func TestListGeminiModels_Integration(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: GEMINI_API_KEY not set")
	}

	var buf bytes.Buffer
	if err := ListGeminiModels(context.Background(), apiKey, &buf); err != nil {
		t.Errorf("ListGeminiModels failed: %v", err)
	}
}
