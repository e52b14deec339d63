package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/Dallionking/aistudio-primer/internal/playground"
)

func textResponse(s string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(s, genai.RoleModel)},
		},
	}
}

func TestClient_Complete(t *testing.T) {
	var gotModel string
	var gotContents []*genai.Content
	var gotConfig *genai.GenerateContentConfig

	c := NewClientWithGenerator(Config{}, func(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		gotModel = model
		gotContents = contents
		gotConfig = cfg
		return textResponse("哈哈"), nil
	})

	out, err := c.Complete(context.Background(), "给我讲个笑话", playground.ModelFast)
	require.NoError(t, err)
	assert.Equal(t, "哈哈", out)

	assert.Equal(t, DefaultFastModel, gotModel)
	require.Len(t, gotContents, 1, "prompt is a single turn")
	require.Len(t, gotContents[0].Parts, 1)
	assert.Equal(t, "给我讲个笑话", gotContents[0].Parts[0].Text)
	require.NotNil(t, gotConfig)
	require.NotNil(t, gotConfig.Temperature)
	assert.InDelta(t, 0.7, *gotConfig.Temperature, 1e-6)
}

func TestClient_ModelName(t *testing.T) {
	c := NewClientWithGenerator(Config{FastModel: "f", AdvancedModel: "a"}, nil)
	assert.Equal(t, "f", c.ModelName(playground.ModelFast))
	assert.Equal(t, "a", c.ModelName(playground.ModelAdvanced))

	d := NewClientWithGenerator(Config{}, nil)
	assert.Equal(t, DefaultAdvancedModel, d.ModelName(playground.ModelAdvanced))
}

func TestClient_CompleteError(t *testing.T) {
	c := NewClientWithGenerator(Config{}, func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return nil, errors.New("429 quota")
	})

	_, err := c.Complete(context.Background(), "x", playground.ModelAdvanced)
	require.Error(t, err)

	var ce *CompletionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, DefaultAdvancedModel, ce.Model)
	assert.Contains(t, err.Error(), "429 quota")
}

func TestClient_EmptyResponse(t *testing.T) {
	c := NewClientWithGenerator(Config{}, func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return &genai.GenerateContentResponse{}, nil
	})
	out, err := c.Complete(context.Background(), "x", playground.ModelFast)
	require.NoError(t, err)
	assert.Empty(t, out)

	n := NewClientWithGenerator(Config{}, func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return nil, nil
	})
	out, err = n.Complete(context.Background(), "x", playground.ModelFast)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClientWithGenerator(Config{}, nil)
	_, err := c.Complete(context.Background(), "x", playground.ModelFast)
	var ce *CompletionError
	assert.ErrorAs(t, err, &ce)
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), Config{APIKey: "  "})
	assert.Error(t, err)
}

func TestNormalizeConfig(t *testing.T) {
	n := normalizeConfig(Config{Project: " proj "})
	assert.Equal(t, "proj", n.Project)
	assert.Equal(t, defaultLocation, n.Location)
	assert.Equal(t, DefaultFastModel, n.FastModel)

	g := normalizeConfig(Config{APIKey: "k"})
	assert.Empty(t, g.Location)
}

// Sessions wired to the client get the placeholder and error handling.
func TestClient_WithSession(t *testing.T) {
	c := NewClientWithGenerator(Config{}, func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return nil, errors.New("offline")
	})
	s := playground.NewSession(c)
	msg, err := s.Submit(context.Background(), "hi")
	require.NoError(t, err)
	assert.True(t, msg.IsError)
}
