// Package ollama wraps the local Ollama API for slide text embeddings.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ollama/ollama/api"
)

const (
	// DefaultModel is the recommended embedding model.
	DefaultModel = "nomic-embed-text"
	// DefaultURL is the default Ollama API endpoint.
	DefaultURL = "http://localhost:11434"
)

// Client generates embedding vectors for slide text.
type Client struct {
	client *api.Client
	model  string
}

// NewClient creates a client for the given endpoint and model, falling
// back to the defaults when either is empty.
func NewClient(url, model string) (*Client, error) {
	if url == "" {
		url = DefaultURL
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// IsAvailable reports whether an Ollama server answers at the URL.
func IsAvailable(url string) bool {
	if url == "" {
		url = DefaultURL
	}

	httpClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := httpClient.Get(url)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// Embed generates an embedding vector for one piece of slide text.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	resp, err := c.client.Embed(ctx, &api.EmbedRequest{
		Model: c.model,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("generate embedding: %w", err)
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	vec32 := resp.Embeddings[0]
	vec := make([]float64, len(vec32))
	for i, v := range vec32 {
		vec[i] = float64(v)
	}
	return vec, nil
}

// CheckModel verifies the configured model is pulled locally.
func (c *Client) CheckModel(ctx context.Context) error {
	listResp, err := c.client.List(ctx)
	if err != nil {
		return fmt.Errorf("list models: %w", err)
	}

	for _, model := range listResp.Models {
		if model.Name == c.model {
			return nil
		}
	}
	return fmt.Errorf("model '%s' not found - run: ollama pull %s", c.model, c.model)
}

// Model returns the model the client embeds with.
func (c *Client) Model() string {
	return c.model
}
