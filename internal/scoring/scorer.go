// Package scoring ranks the full catalog against a user profile using
// weighted criterion matches.
package scoring

import (
	"sort"
	"strings"

	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"github.com/saanvi-kanodia/internship-chatbot/internal/profile"
)

// Scoring weights. Skills dominate because they are the strongest signal of
// fit; everything else contributes one point.
const (
	skillWeight     = 2
	locationWeight  = 1
	modeWeight      = 1
	educationWeight = 1
)

// ScoredPosting pairs a posting with its relevance score for one profile.
type ScoredPosting struct {
	Posting *catalog.Posting
	Score   int
}

// Rank scores every posting against the profile and returns the whole catalog
// reordered by descending score. The sort is stable: postings with equal
// scores keep their original store order, and zero-score postings are
// retained, not dropped.
func Rank(postings *catalog.Postings, p *profile.Profile) []*ScoredPosting {
	scored := make([]*ScoredPosting, 0, postings.Len())
	for _, posting := range postings.Items {
		scored = append(scored, &ScoredPosting{
			Posting: posting,
			Score:   score(posting, p),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

func score(posting *catalog.Posting, p *profile.Profile) int {
	total := 0

	skillsField := strings.ToLower(catalog.JoinList(posting.SkillsRequired))
	for _, skill := range p.Skills {
		if skill == "" {
			continue
		}
		if strings.Contains(skillsField, strings.ToLower(skill)) {
			total += skillWeight
		}
	}

	if matches(posting.Location, p.PreferredLocation) {
		total += locationWeight
	}
	if matches(posting.Mode, p.PreferredMode) {
		total += modeWeight
	}
	if matches(posting.TargetAudience, p.EducationLevel) {
		total += educationWeight
	}

	return total
}

func matches(field, preference string) bool {
	if preference == "" || field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(preference))
}
