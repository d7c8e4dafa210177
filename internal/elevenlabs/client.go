package elevenlabs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the production ElevenLabs API endpoint.
const DefaultBaseURL = "https://api.elevenlabs.io/v1"

// Client calls the ElevenLabs API with a static key header.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used in tests).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpc = hc
	}
}

// NewClient creates a Client authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected HTTP %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decode response: %w", path, err)
	}
	return nil
}

// Models fetches all available models.
func (c *Client) Models(ctx context.Context) ([]Model, error) {
	var models []Model
	if err := c.get(ctx, "/models", &models); err != nil {
		return nil, err
	}
	return models, nil
}

// TTSModels fetches all models and keeps only those that support
// text-to-speech, preserving API order.
func (c *Client) TTSModels(ctx context.Context) ([]Model, error) {
	models, err := c.Models(ctx)
	if err != nil {
		return nil, err
	}
	tts := make([]Model, 0, len(models))
	for _, m := range models {
		if m.CanDoTextToSpeech {
			tts = append(tts, m)
		}
	}
	return tts, nil
}

// Voices fetches all voices available to the account.
func (c *Client) Voices(ctx context.Context) ([]Voice, error) {
	var resp voicesResponse
	if err := c.get(ctx, "/voices", &resp); err != nil {
		return nil, err
	}
	return resp.Voices, nil
}

// Subscription fetches the caller's subscription info.
func (c *Client) Subscription(ctx context.Context) (*Subscription, error) {
	var sub Subscription
	if err := c.get(ctx, "/user/subscription", &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}
