// Package openai provides a generator backed by OpenAI-compatible APIs
// (OpenAI itself, or local services such as Ollama or vLLM).
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saanvi-kanodia/internship-chatbot/internal/logger"
	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const defaultModel = "gpt-4o-mini"

// Generator wraps a langchaingo OpenAI client.
type Generator struct {
	llm    llms.Model
	model  string
	logger *zap.Logger
}

// New creates a Generator. An empty token is replaced with "none" for local
// OpenAI-compatible services that don't require authentication.
func New(baseURL, token, model string, log *zap.Logger) (*Generator, error) {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if token = strings.TrimSpace(token); token == "" {
		token = "none"
	}

	opts := []lcopenai.Option{
		lcopenai.WithToken(token),
		lcopenai.WithModel(model),
	}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(baseURL))
	}

	llm, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Generator{
		llm:    llm,
		model:  model,
		logger: logger.WithCommonFields(log, "openai", model),
	}, nil
}

// GenerateContent sends the prompt and returns the completion text.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (any, error) {
	if g == nil || g.llm == nil {
		return nil, errors.New("openai generator is not initialized")
	}

	g.logger.Debug("openai generate content request",
		zap.Int("prompt_length", len(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, 200)),
	)

	text, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(0.2))
	if err != nil {
		return nil, fmt.Errorf("generate completion: %w", err)
	}

	return text, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}
