package bot

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"github.com/saanvi-kanodia/internship-chatbot/internal/profile"
	"go.uber.org/zap"
)

func newTestBot(t *testing.T, items []*catalog.Posting) *Bot {
	t.Helper()

	path := filepath.Join(t.TempDir(), "internships.csv")
	if err := catalog.WriteFile(path, &catalog.Postings{Items: items}); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	store := catalog.NewStore(path, zap.NewNop())
	if err := store.Load(); err != nil {
		t.Fatalf("loading store: %v", err)
	}

	return New(store, 10, zap.NewNop())
}

func botFixtures() []*catalog.Posting {
	return []*catalog.Posting{
		{
			Title:          "Backend Intern",
			Organization:   "Google",
			Country:        "India",
			Location:       "Bangalore",
			Mode:           "Remote",
			TargetAudience: "UG",
			SkillsRequired: []string{"python", "django"},
		},
		{
			Title:          "ML Intern",
			Organization:   "Acme",
			Country:        "India",
			Location:       "Mumbai",
			Mode:           "Onsite",
			TargetAudience: "PG",
			SkillsRequired: []string{"machine learning"},
		},
	}
}

func TestProcessQueryVagueAsksClarifications(t *testing.T) {
	b := newTestBot(t, botFixtures())

	answer := b.ProcessQuery("internships")

	if !strings.HasPrefix(answer, "Your query seems a bit vague") {
		t.Fatalf("expected clarification prompt, got %q", answer)
	}
	if !strings.Contains(answer, "• What location") {
		t.Fatalf("expected bulleted questions, got %q", answer)
	}
}

func TestProcessQueryReturnsFormattedResults(t *testing.T) {
	b := newTestBot(t, botFixtures())

	answer := b.ProcessQuery("remote python internships")

	if !strings.HasPrefix(answer, "Found 1 internship(s):") {
		t.Fatalf("expected one result, got %q", answer)
	}
	if !strings.Contains(answer, "**1. Backend Intern**") {
		t.Fatalf("expected Backend Intern listing, got %q", answer)
	}
	if strings.Contains(answer, "ML Intern") {
		t.Fatalf("unexpected ML Intern in %q", answer)
	}
}

func TestProcessQueryNoMatchesYieldsGuidance(t *testing.T) {
	b := newTestBot(t, botFixtures())

	answer := b.ProcessQuery("remote blockchain internships here")

	if answer != noResultsMessage {
		t.Fatalf("expected no-results message, got %q", answer)
	}
}

func TestRecommendMergesFragmentIntoSession(t *testing.T) {
	b := newTestBot(t, botFixtures())

	ranked := b.Recommend(&profile.Profile{Skills: []string{"Machine Learning"}}, 0)

	if len(ranked) != 2 {
		t.Fatalf("expected whole catalog ranked, got %d", len(ranked))
	}
	if ranked[0].Posting.Title != "ML Intern" || ranked[0].Score != 2 {
		t.Fatalf("expected ML Intern with score 2 first, got %q with %d",
			ranked[0].Posting.Title, ranked[0].Score)
	}

	// The fragment stays merged for later calls.
	if len(b.Profile().Skills) != 1 || b.Profile().Skills[0] != "Machine Learning" {
		t.Fatalf("fragment not merged: %+v", b.Profile())
	}
}

func TestRecommendHonorsLimit(t *testing.T) {
	b := newTestBot(t, botFixtures())

	ranked := b.Recommend(nil, 1)

	if len(ranked) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(ranked))
	}
}

func TestFormatRecommendationsIncludesScores(t *testing.T) {
	b := newTestBot(t, botFixtures())

	out := FormatRecommendations(b.Recommend(&profile.Profile{Skills: []string{"python"}}, 0))

	if !strings.Contains(out, "   Relevance: 2") {
		t.Fatalf("expected relevance line, got %q", out)
	}
}
