package filtering

import (
	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
)

type modeFilter struct {
	term string
}

// NewMode creates a filter matching the work mode field (Remote/Onsite/Hybrid).
func NewMode(term string) Filter {
	return &modeFilter{term: term}
}

func (f *modeFilter) Name() string { return "mode" }

func (f *modeFilter) Apply(_ Deps, p *catalog.Postings) (*catalog.Postings, Step, error) {
	kept, step := keep(p, func(posting *catalog.Posting) bool {
		return containsFold(posting.Mode, f.term)
	})
	return kept, step, nil
}

type audienceFilter struct {
	term string
}

// NewAudience creates a filter matching the target audience field (UG/PG/PhD).
func NewAudience(term string) Filter {
	return &audienceFilter{term: term}
}

func (f *audienceFilter) Name() string { return "target_audience" }

func (f *audienceFilter) Apply(_ Deps, p *catalog.Postings) (*catalog.Postings, Step, error) {
	kept, step := keep(p, func(posting *catalog.Posting) bool {
		return containsFold(posting.TargetAudience, f.term)
	})
	return kept, step, nil
}

type organizationFilter struct {
	term string
}

// NewOrganization creates a filter matching the organization field.
func NewOrganization(term string) Filter {
	return &organizationFilter{term: term}
}

func (f *organizationFilter) Name() string { return "organization" }

func (f *organizationFilter) Apply(_ Deps, p *catalog.Postings) (*catalog.Postings, Step, error) {
	kept, step := keep(p, func(posting *catalog.Posting) bool {
		return containsFold(posting.Organization, f.term)
	})
	return kept, step, nil
}
