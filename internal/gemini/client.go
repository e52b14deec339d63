// Package gemini provides the playground Completer backed by the Google Gen AI
// SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/Dallionking/aistudio-primer/internal/playground"
)

// Temperature is the sampling temperature used for every call.
const Temperature float32 = 0.7

const (
	DefaultFastModel     = "gemini-2.5-flash"
	DefaultAdvancedModel = "gemini-3-pro-preview"
	defaultLocation      = "us-central1"
)

// Config selects the backend and model ids.
type Config struct {
	APIKey        string
	Project       string // non-empty selects Vertex AI
	Location      string
	FastModel     string
	AdvancedModel string
}

// GenerateFunc matches (*genai.Models).GenerateContent.
type GenerateFunc func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// CompletionError wraps any failure of a completion call.
type CompletionError struct {
	Model string
	Err   error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Model, e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// Client implements playground.Completer.
type Client struct {
	config   Config
	generate GenerateFunc
}

// NewClient creates a client talking to the Gemini API, or to Vertex AI when
// cfg.Project is set.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	cfg = normalizeConfig(cfg)

	cc := &genai.ClientConfig{}
	if cfg.Project != "" {
		cc.Backend = genai.BackendVertexAI
		cc.Project = cfg.Project
		cc.Location = cfg.Location
	} else {
		if cfg.APIKey == "" {
			return nil, errors.New("gemini: API key is not set")
		}
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = cfg.APIKey
	}

	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &Client{config: cfg, generate: gc.Models.GenerateContent}, nil
}

// NewClientWithGenerator creates a client with a custom generate function for
// tests.
func NewClientWithGenerator(cfg Config, fn GenerateFunc) *Client {
	return &Client{config: normalizeConfig(cfg), generate: fn}
}

// ModelName resolves m to the configured model id.
func (c *Client) ModelName(m playground.Model) string {
	if m == playground.ModelAdvanced {
		return c.config.AdvancedModel
	}
	return c.config.FastModel
}

// Complete sends prompt as a single user turn and returns the reply text,
// which may be empty.
func (c *Client) Complete(ctx context.Context, prompt string, m playground.Model) (string, error) {
	model := c.ModelName(m)
	if c.generate == nil {
		return "", &CompletionError{Model: model, Err: errors.New("client is not configured")}
	}

	resp, err := c.generate(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(Temperature),
	})
	if err != nil {
		return "", &CompletionError{Model: model, Err: err}
	}
	if resp == nil {
		return "", nil
	}
	return resp.Text(), nil
}

func normalizeConfig(cfg Config) Config {
	n := cfg
	n.APIKey = strings.TrimSpace(n.APIKey)
	n.Project = strings.TrimSpace(n.Project)
	if strings.TrimSpace(n.FastModel) == "" {
		n.FastModel = DefaultFastModel
	}
	if strings.TrimSpace(n.AdvancedModel) == "" {
		n.AdvancedModel = DefaultAdvancedModel
	}
	if n.Project != "" && strings.TrimSpace(n.Location) == "" {
		n.Location = defaultLocation
	}
	return n
}
