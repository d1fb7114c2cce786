package bot

import (
	"fmt"
	"strings"

	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"github.com/saanvi-kanodia/internship-chatbot/internal/scoring"
)

const noResultsMessage = "No internships found matching your criteria. " +
	"Try adjusting your search terms or be more specific about what you're looking for."

// FormatResults renders postings as a numbered plain-text listing.
func FormatResults(postings *catalog.Postings) string {
	if postings.Len() == 0 {
		return "No internships found matching your criteria."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d internship(s):\n\n", postings.Len())

	for i, posting := range postings.Items {
		writePosting(&sb, i+1, posting)
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatRecommendations renders scored postings with their relevance scores.
func FormatRecommendations(ranked []*scoring.ScoredPosting) string {
	if len(ranked) == 0 {
		return "No internships found matching your criteria."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d internship(s):\n\n", len(ranked))

	for i, item := range ranked {
		writePosting(&sb, i+1, item.Posting)
		fmt.Fprintf(&sb, "   Relevance: %d\n\n", item.Score)
	}

	return sb.String()
}

func writePosting(sb *strings.Builder, position int, posting *catalog.Posting) {
	fmt.Fprintf(sb, "**%d. %s**\n", position, posting.Title)
	fmt.Fprintf(sb, "   Organization: %s\n", posting.Organization)
	fmt.Fprintf(sb, "   Location: %s, %s\n", posting.Location, posting.Country)
	fmt.Fprintf(sb, "   Mode: %s\n", posting.Mode)
	fmt.Fprintf(sb, "   Target Audience: %s\n", posting.TargetAudience)
	if posting.Stipend != "" {
		fmt.Fprintf(sb, "   Stipend: %s\n", posting.Stipend)
	}
	if len(posting.SkillsRequired) > 0 {
		fmt.Fprintf(sb, "   Skills: %s\n", catalog.JoinList(posting.SkillsRequired))
	}
	if posting.ApplicationLink != "" {
		fmt.Fprintf(sb, "   Apply: %s\n", posting.ApplicationLink)
	}
}

// FormatClarifications renders clarifying questions as a bulleted prompt.
func FormatClarifications(questions []string) string {
	var sb strings.Builder
	sb.WriteString("Your query seems a bit vague. Could you please clarify:\n\n")
	for _, question := range questions {
		fmt.Fprintf(&sb, "• %s\n", question)
	}
	return sb.String()
}
