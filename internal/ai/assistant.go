// Package ai augments the rule-based bot with a generative model. Every AI
// call runs on an isolated worker under a deadline and degrades to the
// rule-based pipeline on timeout, invocation error or empty output, so the
// assistant never surfaces a model failure to the user.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/saanvi-kanodia/internship-chatbot/internal/bot"
	"github.com/saanvi-kanodia/internship-chatbot/internal/logger"
	"github.com/saanvi-kanodia/internship-chatbot/internal/profile"
	"github.com/saanvi-kanodia/internship-chatbot/internal/query"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single model invocation.
const DefaultTimeout = 10 * time.Second

const maxClarifyQuestions = 5

// ErrTimeout signals that the model call exceeded the configured deadline.
var ErrTimeout = errors.New("model call timed out")

// Generator is the generative-model collaborator. The returned value may be
// any of the shapes CoerceText understands.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (any, error)
	Model() string
}

// Assistant wraps a Bot with AI augmentation.
type Assistant struct {
	bot       *bot.Bot
	generator Generator
	timeout   time.Duration
	pool      *ants.Pool
	logger    *zap.Logger
}

// NewAssistant builds an assistant with a single-worker pool as the isolated
// execution context for model calls. The pool is non-blocking: while a hung
// call is still occupying the worker, new submissions fail fast and take the
// fallback path instead of queueing behind it.
func NewAssistant(b *bot.Bot, generator Generator, timeout time.Duration, log *zap.Logger) (*Assistant, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}

	pool, err := ants.NewPool(1, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("creating model worker pool: %w", err)
	}

	return &Assistant{
		bot:       b,
		generator: generator,
		timeout:   timeout,
		pool:      pool,
		logger:    log,
	}, nil
}

// Close releases the worker pool.
func (a *Assistant) Close() {
	a.pool.Release()
}

// Answer processes one query. The deterministic filter runs first; the model
// is only consulted when the fast path finds nothing, and any model failure
// falls back to the rule-based response.
func (a *Assistant) Answer(ctx context.Context, text string) string {
	if query.IsVague(text) {
		return a.bot.ProcessQuery(text)
	}

	results, err := a.bot.Search(text, 0)
	if err == nil && results.Len() > 0 {
		a.logger.Debug("fast path matched",
			zap.String("query", text),
			zap.Int("count", results.Len()),
		)
		return bot.FormatResults(results)
	}

	response, err := a.generate(ctx, buildAnswerPrompt(a.bot.Store().Snapshot(), text))
	if err != nil {
		a.logger.Warn("falling back to rule-based response",
			zap.String("query", text),
			zap.Error(err),
		)
		return a.bot.ProcessQuery(text)
	}

	return response
}

// Recommend merges the fragment into the session profile and asks the model
// for profile-driven recommendations, falling back to the relevance scorer.
// The merge happens up front so the prompt sees the full profile; ranking only
// runs when the fallback needs it.
func (a *Assistant) Recommend(ctx context.Context, fragment *profile.Profile, text string) string {
	if fragment != nil {
		a.bot.Profile().Merge(fragment)
	}

	response, err := a.generate(ctx, buildRecommendPrompt(a.bot.Store().Snapshot(), a.bot.Profile(), text))
	if err != nil {
		a.logger.Warn("falling back to rule-based recommendations", zap.Error(err))
		return bot.FormatRecommendations(a.bot.Recommend(nil, 0))
	}

	return response
}

// Clarify asks the model for clarifying questions, keeping lines that contain
// a question mark and capping them at five. On any failure the fixed
// rule-based questions are returned instead.
func (a *Assistant) Clarify(ctx context.Context, text string) []string {
	response, err := a.generate(ctx, buildClarifyPrompt(text))
	if err != nil {
		a.logger.Debug("falling back to rule-based clarifications", zap.Error(err))
		return query.Clarify(text)
	}

	var questions []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "?") {
			continue
		}
		questions = append(questions, line)
		if len(questions) == maxClarifyQuestions {
			break
		}
	}

	if len(questions) == 0 {
		return query.Clarify(text)
	}
	return questions
}

type generation struct {
	text string
	err  error
}

// generate races the model call against the configured deadline. On timeout
// the call context is cancelled as a best-effort signal; the worker may keep
// running, and its late result is discarded through the buffered channel.
// A single attempt is made per query, never a retry.
func (a *Assistant) generate(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make(chan generation, 1)

	err := a.pool.Submit(func() {
		raw, err := a.generator.GenerateContent(callCtx, prompt)
		if err != nil {
			out <- generation{err: err}
			return
		}

		text, err := CoerceText(raw)
		out <- generation{text: text, err: err}
	})
	if err != nil {
		return "", fmt.Errorf("submitting model call: %w", err)
	}

	started := time.Now()
	timer := time.NewTimer(a.timeout)
	defer timer.Stop()

	providerLogger := logger.WithCommonFields(a.logger, "", a.generator.Model())

	select {
	case result := <-out:
		if result.err != nil {
			return "", result.err
		}
		providerLogger.Debug("model call completed",
			zap.Duration("elapsed", time.Since(started)),
			zap.String("response_preview", logger.TruncateForLog(result.text, 200)),
		)
		return result.text, nil
	case <-timer.C:
		cancel()
		providerLogger.Warn("model call timed out", zap.Duration("timeout", a.timeout))
		return "", ErrTimeout
	case <-ctx.Done():
		cancel()
		return "", ctx.Err()
	}
}
