package filtering

import (
	"fmt"

	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"go.uber.org/zap"
)

// DefaultLimit bounds result sets when the caller does not supply a limit.
const DefaultLimit = 10

// Filter represents a single filtering step applied to postings. Filters must
// preserve the input order of the postings they keep.
type Filter interface {
	Name() string
	Apply(deps Deps, p *catalog.Postings) (*catalog.Postings, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Filtering executes an ordered list of filters against a catalog snapshot.
type Filtering struct {
	steps  []Filter
	logger *zap.Logger
}

func New(steps []Filter, logger *zap.Logger) *Filtering {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Filtering{steps: steps, logger: logger}
}

// Run applies every step in order. Criteria combine with logical AND: a
// posting survives only if every step keeps it.
func (f *Filtering) Run(p *catalog.Postings) (*catalog.Postings, error) {
	deps := Deps{Logger: f.logger}

	for _, step := range f.steps {
		next, info, err := step.Apply(deps, p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		f.logger.Debug("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		p = next
	}

	return p, nil
}

// keep retains postings matching the predicate, preserving order.
func keep(p *catalog.Postings, pred func(*catalog.Posting) bool) (*catalog.Postings, Step) {
	initial := p.Len()
	kept := &catalog.Postings{Items: make([]*catalog.Posting, 0, initial)}

	for _, posting := range p.Items {
		if pred(posting) {
			kept.Items = append(kept.Items, posting)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}
}
