package catalog

import (
	"strings"
)

// Posting is one internship record in the catalog. Multi-valued fields are
// stored as ordered string slices and serialized as comma-joined strings in
// the CSV schema.
type Posting struct {
	Title               string   `mapstructure:"title"`
	Organization        string   `mapstructure:"organization"`
	Country             string   `mapstructure:"country"`
	Location            string   `mapstructure:"location"`
	Type                string   `mapstructure:"type"`
	EligibilityCriteria string   `mapstructure:"eligibility_criteria"`
	TargetAudience      string   `mapstructure:"target_audience"`
	StartDate           string   `mapstructure:"start_date"`
	Duration            string   `mapstructure:"duration"`
	ApplicationDeadline string   `mapstructure:"application_deadline"`
	ApplicationLink     string   `mapstructure:"application_link"`
	Mode                string   `mapstructure:"mode"`
	Stipend             string   `mapstructure:"stipend"`
	Salary              string   `mapstructure:"salary"`
	VisaSupport         string   `mapstructure:"visa_support"`
	Tags                []string `mapstructure:"tags"`
	Source              string   `mapstructure:"source"`
	ScrapedTimestamp    string   `mapstructure:"scraped_timestamp"`
	Description         string   `mapstructure:"description"`
	SkillsRequired      []string `mapstructure:"skills_required"`
	Perks               []string `mapstructure:"perks"`
	CompanySize         string   `mapstructure:"company_size"`
	Industry            string   `mapstructure:"industry"`
}

// Key returns the normalized deduplication key for the posting. Two postings
// with the same key are considered the same opportunity regardless of source.
func (p *Posting) Key() string {
	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(p.Title)),
		strings.ToLower(strings.TrimSpace(p.Organization)),
		strings.ToLower(strings.TrimSpace(p.Location)),
	}, "|")
}

// Postings is an ordered collection of postings. Order follows the ingestion
// sequence and is preserved by all read paths.
type Postings struct {
	Items []*Posting
}

func (p *Postings) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Items)
}

// First returns a new collection holding at most n leading items.
func (p *Postings) First(n int) *Postings {
	if p == nil || n < 0 {
		return &Postings{}
	}
	if n > len(p.Items) {
		n = len(p.Items)
	}
	return &Postings{Items: p.Items[:n]}
}
