package filtering

import (
	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
)

type minStipendFilter struct {
	threshold int
}

// NewMinStipend creates a filter requiring the posting's stipend to be at
// least the given amount. Both sides parse the first integer substring found
// in the free-text field; a field with no digits counts as 0.
func NewMinStipend(minimum string) Filter {
	return &minStipendFilter{threshold: parseAmount(minimum)}
}

func (f *minStipendFilter) Name() string { return "min_stipend" }

func (f *minStipendFilter) Apply(_ Deps, p *catalog.Postings) (*catalog.Postings, Step, error) {
	kept, step := keep(p, func(posting *catalog.Posting) bool {
		return parseAmount(posting.Stipend) >= f.threshold
	})
	return kept, step, nil
}

type truncateFilter struct {
	limit int
}

// NewTruncate bounds the result set to the first limit postings, preserving
// store order. A non-positive limit falls back to DefaultLimit.
func NewTruncate(limit int) Filter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &truncateFilter{limit: limit}
}

func (f *truncateFilter) Name() string { return "truncate" }

func (f *truncateFilter) Apply(_ Deps, p *catalog.Postings) (*catalog.Postings, Step, error) {
	initial := p.Len()
	kept := p.First(f.limit)
	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}
