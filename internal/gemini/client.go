// Package gemini wraps the Google GenAI SDK behind a small Generator
// interface. The client performs exactly one outbound call per request and
// returns SDK errors untouched; recovery is the caller's responsibility.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrNotConfigured is returned by the disabled generator when no API key
// was supplied at startup.
var ErrNotConfigured = errors.New("gemini: API key not configured")

// Generator produces raw model output for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds the settings for the Gemini client.
type Config struct {
	APIKey            string
	Model             string
	Temperature       float32
	SystemInstruction string
}

// Client calls the Gemini API through the official GenAI SDK.
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
	system      string
}

// NewClient creates a Gemini-backed generator.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		system:      cfg.SystemInstruction,
	}, nil
}

// Generate issues a single GenerateContent call and returns the raw response
// text. No retry, no backoff; network, auth, and quota failures surface as
// errors.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(c.system, genai.RoleUser),
			Temperature:       genai.Ptr(c.temperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}

// Disabled is a Generator whose calls always fail. Used when no API key is
// configured so the pipeline degrades to fallback content.
type Disabled struct{}

// Generate always returns ErrNotConfigured.
func (Disabled) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrNotConfigured
}
