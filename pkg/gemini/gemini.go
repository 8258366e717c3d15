// Package gemini provides a client for the Google Gemini generateContent
// API, used by the ask panel. The service is an opaque collaborator: it
// receives a question plus a textual knowledge context and returns text.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/electoscope/electoscope/internal/logger"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// DefaultEndpoint is the production API root.
const DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

// Message is one prior turn of a conversation.
type Message struct {
	Role string // "user" or "model"
	Text string
}

// Client defines the interface for question answering.
type Client interface {
	// Ask sends a question with optional prior turns and a knowledge
	// context, returning the answer text.
	Ask(ctx context.Context, question string, history []Message, knowledge string) (string, error)
}

// HTTPClient is a real Gemini API client.
type HTTPClient struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
	log        logger.Logger
	maxRetries uint64
}

// Option configures the HTTP client.
type Option func(*HTTPClient)

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(c *HTTPClient) {
		c.model = model
	}
}

// WithEndpoint overrides the API root (for testing).
func WithEndpoint(endpoint string) Option {
	return func(c *HTTPClient) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithMaxRetries overrides the transient-failure retry budget.
func WithMaxRetries(n uint64) Option {
	return func(c *HTTPClient) {
		c.maxRetries = n
	}
}

// NewHTTPClient creates a Gemini client.
func NewHTTPClient(apiKey string, log logger.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		endpoint: DefaultEndpoint,
		model:    DefaultModel,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log:        log,
		maxRetries: 2,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request/response shapes for the generateContent API.

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Ask sends the question to the API. The knowledge context is prepended to
// the question turn; prior turns keep their roles. Transient failures
// (network, 429, 5xx) are retried with exponential backoff; other API
// errors return immediately.
func (c *HTTPClient) Ask(ctx context.Context, question string, history []Message, knowledge string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini: no API key configured")
	}

	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		role := m.Role
		if role != "model" {
			role = "user"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: m.Text}}})
	}

	prompt := question
	if knowledge != "" {
		prompt = knowledge + "\n\nQUESTION: " + question + "\n\nANSWER:"
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: prompt}}})

	body, err := json.Marshal(generateRequest{
		Contents: contents,
		GenerationConfig: generationConfig{
			Temperature:     0.2,
			TopP:            0.8,
			MaxOutputTokens: 2048,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	var answer string
	operation := func() error {
		a, err := c.doRequest(ctx, body)
		if err != nil {
			return err
		}
		answer = a
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}
	return answer, nil
}

func (c *HTTPClient) doRequest(ctx context.Context, body []byte) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network errors are retryable
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("Gemini response", "status", resp.StatusCode, "bytes", len(respBody))

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", backoff.Permanent(fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, truncate(string(respBody), 200)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", backoff.Permanent(fmt.Errorf("parse response: %w", err))
	}
	if parsed.Error != nil {
		return "", backoff.Permanent(fmt.Errorf("gemini error %d: %s", parsed.Error.Code, parsed.Error.Message))
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", backoff.Permanent(fmt.Errorf("gemini returned no candidates"))
	}

	var b strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	answer := strings.TrimSpace(b.String())
	if answer == "" {
		return "", backoff.Permanent(fmt.Errorf("gemini returned an empty answer"))
	}
	return answer, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
