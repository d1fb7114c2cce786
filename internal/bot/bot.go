// Package bot wires the rule-based query pipeline: interpret free text into
// criteria, filter the catalog, and format the result. It also owns the
// session profile used for ranked recommendations.
package bot

import (
	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"github.com/saanvi-kanodia/internship-chatbot/internal/filtering"
	"github.com/saanvi-kanodia/internship-chatbot/internal/profile"
	"github.com/saanvi-kanodia/internship-chatbot/internal/query"
	"github.com/saanvi-kanodia/internship-chatbot/internal/scoring"
	"go.uber.org/zap"
)

// Bot answers catalog queries and recommendations for one session.
type Bot struct {
	store   *catalog.Store
	profile *profile.Profile
	limit   int
	logger  *zap.Logger
}

func New(store *catalog.Store, limit int, logger *zap.Logger) *Bot {
	if limit <= 0 {
		limit = filtering.DefaultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Bot{
		store:   store,
		profile: &profile.Profile{},
		limit:   limit,
		logger:  logger,
	}
}

// Profile returns the session profile. The profile is mutable session state;
// concurrent queries must not share it without external synchronization.
func (b *Bot) Profile() *profile.Profile {
	return b.profile
}

// Reload re-reads the catalog from its source file.
func (b *Bot) Reload() error {
	return b.store.Reload()
}

func (b *Bot) Store() *catalog.Store {
	return b.store
}

// Search interprets the query into criteria and filters the catalog. A limit
// of 0 uses the bot's default.
func (b *Bot) Search(text string, limit int) (*catalog.Postings, error) {
	c := query.Interpret(text)
	if c.IsZero() {
		b.logger.Debug("no criteria recognized, browsing the catalog", zap.String("query", text))
	}
	return b.Filter(c, limit)
}

// Filter applies structured criteria directly, bypassing interpretation.
func (b *Bot) Filter(c query.Criteria, limit int) (*catalog.Postings, error) {
	if limit <= 0 {
		limit = b.limit
	}

	pipeline := filtering.New(filtering.FromCriteria(c, limit), b.logger)
	return pipeline.Run(b.store.Snapshot())
}

// Recommend merges the fragment into the session profile, then ranks the
// whole catalog against the merged profile and returns the top postings.
// The profile merge is a deliberate write side effect: later recommendations
// build on everything the session has learned.
func (b *Bot) Recommend(fragment *profile.Profile, limit int) []*scoring.ScoredPosting {
	if fragment != nil {
		b.profile.Merge(fragment)
	}
	if limit <= 0 {
		limit = b.limit
	}

	ranked := scoring.Rank(b.store.Snapshot(), b.profile)
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// ProcessQuery handles one free-text query end to end. Queries shorter than
// three tokens are treated as vague and answered with clarifying questions
// instead of a search.
func (b *Bot) ProcessQuery(text string) string {
	if query.IsVague(text) {
		if questions := query.Clarify(text); len(questions) > 0 {
			return FormatClarifications(questions)
		}
	}

	results, err := b.Search(text, 0)
	if err != nil {
		b.logger.Warn("search failed", zap.Error(err))
		return noResultsMessage
	}

	if results.Len() == 0 {
		return noResultsMessage
	}

	return FormatResults(results)
}
