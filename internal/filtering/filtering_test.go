package filtering

import (
	"testing"

	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"github.com/saanvi-kanodia/internship-chatbot/internal/query"
	"go.uber.org/zap"
)

func testPostings() *catalog.Postings {
	return &catalog.Postings{Items: []*catalog.Posting{
		{
			Title:          "Backend Intern",
			Organization:   "Google",
			Country:        "India",
			Location:       "Bangalore, India",
			Mode:           "Remote",
			TargetAudience: "UG",
			Stipend:        "25000 INR/month",
			SkillsRequired: []string{"python", "django"},
			Tags:           []string{"web development"},
		},
		{
			Title:          "ML Intern",
			Organization:   "Acme",
			Country:        "India",
			Location:       "Mumbai",
			Mode:           "Onsite",
			TargetAudience: "PG",
			Stipend:        "unpaid",
			SkillsRequired: []string{"machine learning", "python"},
			Tags:           []string{"ai/ml"},
		},
		{
			Title:          "Design Intern",
			Organization:   "Globex",
			Country:        "USA",
			Location:       "New York",
			Mode:           "Hybrid",
			TargetAudience: "UG",
			SkillsRequired: []string{"figma"},
		},
	}}
}

func runFilters(t *testing.T, steps []Filter, p *catalog.Postings) *catalog.Postings {
	t.Helper()

	result, err := New(steps, zap.NewNop()).Run(p)
	if err != nil {
		t.Fatalf("running filters: %v", err)
	}
	return result
}

func titles(p *catalog.Postings) []string {
	out := make([]string, 0, p.Len())
	for _, posting := range p.Items {
		out = append(out, posting.Title)
	}
	return out
}

func TestEmptyCriteriaIsIdentityFilter(t *testing.T) {
	postings := testPostings()

	result := runFilters(t, FromCriteria(query.Criteria{}, 10), postings)

	if result.Len() != postings.Len() {
		t.Fatalf("expected %d postings, got %d", postings.Len(), result.Len())
	}

	for i, posting := range result.Items {
		if posting != postings.Items[i] {
			t.Fatalf("store order not preserved at index %d", i)
		}
	}
}

func TestResultNeverExceedsLimit(t *testing.T) {
	result := runFilters(t, FromCriteria(query.Criteria{}, 2), testPostings())

	if result.Len() != 2 {
		t.Fatalf("expected 2 postings, got %d", result.Len())
	}
}

func TestCriteriaCombineWithAND(t *testing.T) {
	c := query.Criteria{Location: "india", Mode: "remote"}

	result := runFilters(t, FromCriteria(c, 10), testPostings())

	if got := titles(result); len(got) != 1 || got[0] != "Backend Intern" {
		t.Fatalf("expected only Backend Intern, got %v", got)
	}
}

func TestSkillsMatchAnyTerm(t *testing.T) {
	c := query.Criteria{Skills: []string{"figma", "machine learning"}}

	result := runFilters(t, FromCriteria(c, 10), testPostings())

	got := titles(result)
	if len(got) != 2 || got[0] != "ML Intern" || got[1] != "Design Intern" {
		t.Fatalf("expected ML and Design interns in store order, got %v", got)
	}
}

func TestLocationMatchesCountryToo(t *testing.T) {
	c := query.Criteria{Location: "India"}

	result := runFilters(t, FromCriteria(c, 10), testPostings())

	if result.Len() != 2 {
		t.Fatalf("expected 2 postings, got %v", titles(result))
	}
}

func TestEmptyFieldNeverMatches(t *testing.T) {
	c := query.Criteria{Tags: []string{"design"}}

	result := runFilters(t, FromCriteria(c, 10), testPostings())

	// Design Intern has no tags at all, so it cannot match a tag filter.
	if result.Len() != 0 {
		t.Fatalf("expected no matches, got %v", titles(result))
	}
}

func TestMinStipendParsesFirstInteger(t *testing.T) {
	tests := []struct {
		name    string
		minimum string
		expect  []string
	}{
		{
			name:    "threshold filters unpaid and below",
			minimum: "10000",
			expect:  []string{"Backend Intern"},
		},
		{
			name:    "malformed stipend counts as zero",
			minimum: "1",
			expect:  []string{"Backend Intern"},
		},
		{
			name:    "threshold without digits is zero",
			minimum: "any",
			expect:  []string{"Backend Intern", "ML Intern", "Design Intern"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := query.Criteria{MinStipend: tt.minimum}
			result := runFilters(t, FromCriteria(c, 10), testPostings())

			got := titles(result)
			if len(got) != len(tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
			for i := range got {
				if got[i] != tt.expect[i] {
					t.Fatalf("expected %v, got %v", tt.expect, got)
				}
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input  string
		expect int
	}{
		{"25000 INR/month", 25000},
		{"INR 5,000", 5},
		{"unpaid", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := parseAmount(tt.input); got != tt.expect {
			t.Fatalf("parseAmount(%q) = %d, expected %d", tt.input, got, tt.expect)
		}
	}
}
