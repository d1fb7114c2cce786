package filtering

import (
	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
)

type locationFilter struct {
	term string
}

// NewLocation creates a filter matching the location term against either the
// location or the country field.
func NewLocation(term string) Filter {
	return &locationFilter{term: term}
}

func (f *locationFilter) Name() string { return "location" }

func (f *locationFilter) Apply(_ Deps, p *catalog.Postings) (*catalog.Postings, Step, error) {
	kept, step := keep(p, func(posting *catalog.Posting) bool {
		return containsFold(posting.Location, f.term) || containsFold(posting.Country, f.term)
	})
	return kept, step, nil
}
