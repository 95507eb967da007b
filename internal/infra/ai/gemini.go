// Package ai contains the Gemini-backed implementation of the plan text generator.
package ai

import (
	"context"

	"fitflow/config"
	"fitflow/internal/domain/service"
	"fitflow/internal/errors"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-flash-latest"

// geminiGenerator implements service.PlanTextGenerator on the Gemini API.
type geminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewGeminiGenerator creates a Gemini API client configured from the Gemini
// section of the config.
func NewGeminiGenerator(params Params) (service.PlanTextGenerator, error) {
	cfg := params.Config.Gemini
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultModel
	}

	model := client.GenerativeModel(modelName)
	if cfg.Temperature > 0 {
		model.SetTemperature(cfg.Temperature)
	}
	if cfg.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(cfg.MaxOutputTokens)
	}

	generator := &geminiGenerator{client: client, model: model}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return generator.Close()
		},
	})

	return generator, nil
}

// GenerateContent sends the prompt and returns the model's raw text output.
func (g *geminiGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate content")
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no content generated")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("generated content is not text")
	}

	return string(text), nil
}

// Close closes the underlying Gemini client.
func (g *geminiGenerator) Close() error {
	return g.client.Close()
}
