// Package openrouter provides a client for the OpenRouter chat completions API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/optimalroute/optimalroute/internal/advisory"
	"github.com/optimalroute/optimalroute/internal/provider/resilience"
)

const (
	// ProviderName identifies this advisory provider.
	ProviderName = "openrouter"

	// DefaultBaseURL is the OpenRouter API base URL.
	DefaultBaseURL = "https://openrouter.ai"

	// DefaultModel is the chat model used for advisories.
	DefaultModel = "google/gemini-pro"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 15 * time.Second

	chatCompletionsPath = "/api/v1/chat/completions"
)

// promptTemplate instructs the model to reply with strict JSON carrying
// exactly the two keys the parser expects.
const promptTemplate = `Given the following optimized travel route in Kuala Lumpur: %s,
provide a concise travel advisory. The advisory should highlight potential traffic hotspots,
suggest ideal travel times, and mention any interesting landmarks.

Your response MUST be a valid JSON object with two keys:
1. "analysis" (string): The travel advisory text.
2. "buffer_minutes" (integer): A suggested travel time buffer in minutes based on potential delays.

Example response:
{"analysis": "Your route through the city center may experience congestion around Merdeka Square, especially during peak hours. Consider leaving before 4 PM. You'll pass by the historic Sultan Abdul Samad Building.", "buffer_minutes": 15}`

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the OpenRouter client.
type ClientConfig struct {
	// APIKey is the OpenRouter API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to OpenRouter).
	BaseURL string

	// Model is the chat model to use (optional, defaults to DefaultModel).
	Model string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient HTTPDoer

	// Timeout is the request timeout (optional, defaults to 15s).
	Timeout time.Duration

	// Registry is the provider registry for health tracking (optional).
	Registry *resilience.Registry

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenRouter chat completions client.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new OpenRouter client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		clientCfg.Timeout = timeout
		if cfg.Registry != nil {
			clientCfg.Registry = cfg.Registry
		}
		httpClient = resilience.NewClient(clientCfg)
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// GetAdvisory requests a travel advisory for the route sequence and parses
// the model's constrained JSON reply.
func (c *Client) GetAdvisory(ctx context.Context, sequence []string) (*advisory.Result, error) {
	seqJSON, err := json.Marshal(sequence)
	if err != nil {
		return nil, fmt.Errorf("marshaling sequence: %w", err)
	}

	chatReq := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(promptTemplate, seqJSON)},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug().
		Str("model", c.model).
		Int("stop_count", len(sequence)).
		Msg("requesting advisory from OpenRouter")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", advisory.ErrAdvisoryUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status %d", advisory.ErrAdvisoryUnavailable, resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("%w: decoding envelope: %v", advisory.ErrAdvisoryUnavailable, err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices", advisory.ErrAdvisoryUnavailable)
	}

	return parseContent(chatResp.Choices[0].Message.Content)
}

// parseContent parses the model reply as the constrained advisory JSON.
// A reply that is not JSON, or lacks either key, is unusable.
func parseContent(content string) (*advisory.Result, error) {
	var parsed advisoryContent
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: reply is not valid JSON: %v", advisory.ErrAdvisoryUnavailable, err)
	}
	if parsed.Analysis == "" {
		return nil, fmt.Errorf("%w: reply missing analysis", advisory.ErrAdvisoryUnavailable)
	}

	buffer := 0
	if parsed.BufferMinutes != nil {
		buffer = int(*parsed.BufferMinutes)
	}
	if buffer < 0 {
		buffer = 0
	}

	return &advisory.Result{
		Analysis:      parsed.Analysis,
		BufferMinutes: buffer,
	}, nil
}
