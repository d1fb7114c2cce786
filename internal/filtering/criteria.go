package filtering

import (
	"github.com/saanvi-kanodia/internship-chatbot/internal/query"
)

// FromCriteria builds the filter chain for the supplied criteria. Only
// non-empty criteria contribute a step; empty criteria yield a chain that is
// the identity filter plus the result limit.
func FromCriteria(c query.Criteria, limit int) []Filter {
	steps := make([]Filter, 0, 8)

	if c.Location != "" {
		steps = append(steps, NewLocation(c.Location))
	}
	if c.Mode != "" {
		steps = append(steps, NewMode(c.Mode))
	}
	if c.TargetAudience != "" {
		steps = append(steps, NewAudience(c.TargetAudience))
	}
	if len(c.Skills) > 0 {
		steps = append(steps, NewSkills(c.Skills))
	}
	if c.Organization != "" {
		steps = append(steps, NewOrganization(c.Organization))
	}
	if c.MinStipend != "" {
		steps = append(steps, NewMinStipend(c.MinStipend))
	}
	if len(c.Tags) > 0 {
		steps = append(steps, NewTags(c.Tags))
	}

	return append(steps, NewTruncate(limit))
}
