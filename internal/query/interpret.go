package query

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Criteria is the structured, per-query filter derived from free text. All
// fields are optional; a zero Criteria matches the whole catalog.
type Criteria struct {
	Location       string
	Mode           string
	Organization   string
	TargetAudience string
	Skills         []string
	Tags           []string
	MinStipend     string
}

func (c Criteria) IsZero() bool {
	return c.Location == "" && c.Mode == "" && c.Organization == "" &&
		c.TargetAudience == "" && len(c.Skills) == 0 && len(c.Tags) == 0 &&
		c.MinStipend == ""
}

// Interpret extracts search criteria from a free-text query by scanning the
// fixed lexicons for literal substring occurrences. Location, mode and
// organization are single-valued with first-match-wins semantics; skills and
// tags collect every match in lexicon order. Interpret is a pure function and
// never fails: an unmatched query simply yields empty criteria.
func Interpret(text string) Criteria {
	lower := strings.ToLower(text)

	// A cases.Caser carries transformer state, so each call gets its own.
	caser := cases.Title(language.English)

	var c Criteria

	for _, location := range locationLexicon {
		if strings.Contains(lower, location) {
			c.Location = caser.String(location)
			break
		}
	}

	for _, mode := range modeLexicon {
		if strings.Contains(lower, mode.keyword) {
			c.Mode = mode.canonical
			break
		}
	}

	for _, skill := range skillLexicon {
		if strings.Contains(lower, skill) {
			c.Skills = append(c.Skills, skill)
		}
	}

	for _, org := range organizationLexicon {
		if strings.Contains(lower, org) {
			c.Organization = caser.String(org)
			break
		}
	}

	for _, tag := range tagLexicon {
		if strings.Contains(lower, tag) {
			c.Tags = append(c.Tags, tag)
		}
	}

	return c
}
