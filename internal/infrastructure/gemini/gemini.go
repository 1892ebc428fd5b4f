// Package gemini generates phrase text with Google's Gemini models through
// the google.golang.org/genai SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/frasesia/frases-api/internal/core/ports"
)

const DefaultModel = "gemini-2.5-flash"

// Sampling parameters for short inspirational phrases. Thinking is disabled
// so the whole token budget goes to the answer.
const (
	temperature     float32 = 0.8
	topP            float32 = 0.9
	topK            float32 = 20
	maxOutputTokens int32   = 150
)

// Config holds the Gemini credentials and model choice.
type Config struct {
	APIKey string
	Model  string
}

// contentGenerator is the slice of *genai.Models the generator calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator implements ports.PhraseGenerator on the Gemini API.
type Generator struct {
	models contentGenerator
	model  string
}

// New creates a Gemini API client. It does not make any network calls.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return newGenerator(client.Models, cfg.Model), nil
}

func newGenerator(models contentGenerator, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{models: models, model: model}
}

// Generate sends the prepared prompt and returns the raw response text.
// Blank text is returned as-is; deciding what counts as empty is up to the caller.
func (g *Generator) Generate(ctx context.Context, req ports.GenerationRequest) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), generationConfig())
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if resp == nil {
		return "", nil
	}
	return resp.Text(), nil
}

func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		TopP:            genai.Ptr(topP),
		TopK:            genai.Ptr(topK),
		MaxOutputTokens: maxOutputTokens,
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](0),
		},
	}
}
