package translation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultGoogleEndpoint is the keyless Google Translate endpoint
const DefaultGoogleEndpoint = "https://translate.googleapis.com/translate_a/single"

// maxGoogleTextLength is the longest text the endpoint accepts in one request
const maxGoogleTextLength = 5000

// GoogleTranslator uses the public Google Translate endpoint. It needs no key.
type GoogleTranslator struct {
	endpoint string
	client   *http.Client
}

// NewGoogleTranslator creates a translator for endpoint, using
// DefaultGoogleEndpoint when endpoint is empty.
func NewGoogleTranslator(endpoint string, timeout time.Duration) *GoogleTranslator {
	if endpoint == "" {
		endpoint = DefaultGoogleEndpoint
	}
	return &GoogleTranslator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Translate sends text to the endpoint and joins the translated sentences
func (g *GoogleTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	if len(text) > maxGoogleTextLength {
		return "", fmt.Errorf("text too long for Google Translate: %d bytes", len(text))
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", from)
	params.Set("tl", to)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("google translate request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("google translate returned status %d", resp.StatusCode)
	}

	return parseGoogleResponse(body)
}

// parseGoogleResponse extracts the translated segments from a response of
// the form [[["translated","source",...],...],null,"mr",...]
func parseGoogleResponse(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("invalid response from google translate")
	}

	var sb strings.Builder
	for _, segment := range gjson.GetBytes(body, "0.#.0").Array() {
		sb.WriteString(segment.String())
	}

	translation := strings.TrimSpace(sb.String())
	if translation == "" {
		return "", ErrEmptyTranslation
	}
	return translation, nil
}
