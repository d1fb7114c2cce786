// Package gemini provides the Gemini-backed generator for the assistant.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saanvi-kanodia/internship-chatbot/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Generator wraps the Google GenAI client to provide simple prompt-based
// interactions.
type Generator struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// New creates a Generator configured for the Gemini API backend.
func New(ctx context.Context, apiKey, model string, log *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Generator{
		client: client,
		model:  model,
		logger: logger.WithCommonFields(log, "gemini", model),
	}, nil
}

// GenerateContent sends the prompt to Gemini and returns the raw response.
// The assistant normalizes the response shape; no retries are performed here,
// a failed call simply reports its error.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (any, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("gemini generator is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, errors.New("prompt must not be empty")
	}

	g.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", len(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, 200)),
	)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	return resp, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}
