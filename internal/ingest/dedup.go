// Package ingest collects postings from multiple sources, deduplicates them
// and writes the catalog file the chatbot serves from.
package ingest

import (
	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"go.uber.org/zap"
)

// Deduplicate removes postings whose normalized (title, organization,
// location) triple has already been seen, keeping the first occurrence in
// input order. Duplicates are dropped silently apart from a debug log line;
// the operation is idempotent.
func Deduplicate(items []*catalog.Posting, logger *zap.Logger) []*catalog.Posting {
	if logger == nil {
		logger = zap.NewNop()
	}

	seen := make(map[string]struct{}, len(items))
	unique := make([]*catalog.Posting, 0, len(items))

	for _, posting := range items {
		key := posting.Key()
		if _, ok := seen[key]; ok {
			logger.Debug("dropping duplicate posting",
				zap.String("title", posting.Title),
				zap.String("organization", posting.Organization),
				zap.String("source", posting.Source),
			)
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, posting)
	}

	return unique
}
