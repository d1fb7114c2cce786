package query

import (
	"strings"
	"testing"
)

func TestClarifyEmitsAllTopicsForEmptyQuery(t *testing.T) {
	t.Parallel()

	questions := Clarify("something")
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}

	// Fixed topic order: location, mode, skills, stipend, duration.
	wantPrefixes := []string{
		"What location",
		"What work mode",
		"What skills",
		"Are you looking for paid",
		"What duration",
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(questions[i], prefix) {
			t.Fatalf("question %d: expected prefix %q, got %q", i, prefix, questions[i])
		}
	}
}

func TestClarifySkipsMentionedTopics(t *testing.T) {
	t.Parallel()

	questions := Clarify("remote python internships with stipend for 2 months")

	// remote covers both location and mode; python covers skills; stipend and
	// months cover the rest.
	if len(questions) != 0 {
		t.Fatalf("expected no questions, got %v", questions)
	}
}

func TestClarifyPartialTopics(t *testing.T) {
	t.Parallel()

	questions := Clarify("internships in bangalore")
	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d: %v", len(questions), questions)
	}

	for _, question := range questions {
		if strings.HasPrefix(question, "What location") {
			t.Fatalf("location question should be suppressed, got %v", questions)
		}
	}
}

func TestIsVague(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		vague bool
	}{
		{"", true},
		{"internships", true},
		{"python internships", true},
		{"remote python internships", false},
		{"  spaced   out   query  ", false},
	}

	for _, tt := range tests {
		if got := IsVague(tt.query); got != tt.vague {
			t.Fatalf("IsVague(%q) = %v, expected %v", tt.query, got, tt.vague)
		}
	}
}
