package filtering

import (
	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
)

type skillsFilter struct {
	terms []string
}

// NewSkills creates a filter that keeps postings whose required skills match
// any of the supplied terms (logical OR within the field).
func NewSkills(terms []string) Filter {
	return &skillsFilter{terms: terms}
}

func (f *skillsFilter) Name() string { return "skills" }

func (f *skillsFilter) Apply(_ Deps, p *catalog.Postings) (*catalog.Postings, Step, error) {
	kept, step := keep(p, func(posting *catalog.Posting) bool {
		return containsAnyFold(catalog.JoinList(posting.SkillsRequired), f.terms)
	})
	return kept, step, nil
}

type tagsFilter struct {
	terms []string
}

// NewTags creates a filter that keeps postings tagged with any of the
// supplied terms.
func NewTags(terms []string) Filter {
	return &tagsFilter{terms: terms}
}

func (f *tagsFilter) Name() string { return "tags" }

func (f *tagsFilter) Apply(_ Deps, p *catalog.Postings) (*catalog.Postings, Step, error) {
	kept, step := keep(p, func(posting *catalog.Posting) bool {
		return containsAnyFold(catalog.JoinList(posting.Tags), f.terms)
	})
	return kept, step, nil
}
