package ai

import (
	"fmt"
	"strings"

	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"github.com/saanvi-kanodia/internship-chatbot/internal/profile"
)

// contextSampleSize bounds the catalog sample embedded in prompts so a large
// catalog cannot blow up the prompt size.
const contextSampleSize = 10

const answerPromptTemplate = `You are an internship recommendation assistant. Based on the following internship data,
help the user find relevant opportunities.

Available Internships Data:
%s

User Query: %s

Please provide a helpful response that:
1. Directly addresses the user's query
2. Lists relevant internships with key details
3. Provides actionable advice
4. Is conversational and helpful

Format your response clearly with internship details.`

const recommendPromptTemplate = `You are an expert career advisor. Based on the user's profile and available internships,
provide personalized recommendations.

%s

Available Internships:
%s

Additional Query: %s

Please provide:
1. Top 5 most relevant internships with detailed explanations
2. Why each internship matches the user's profile
3. Any gaps in skills that the user should consider developing
4. General career advice based on their profile

Be specific and actionable in your recommendations.`

const clarifyPromptTemplate = `The user asked: %q

This query seems vague or incomplete for finding internships.
Generate 3-5 specific, helpful clarifying questions that would help
me understand what internships they're looking for.

Focus on:
- Location preferences
- Skills/technologies of interest
- Work mode (remote/onsite/hybrid)
- Stipend expectations
- Duration preferences
- Industry/domain interests

Make the questions conversational and specific to internship searching.`

func buildAnswerPrompt(postings *catalog.Postings, query string) string {
	return fmt.Sprintf(answerPromptTemplate, buildContext(postings), query)
}

func buildRecommendPrompt(postings *catalog.Postings, p *profile.Profile, query string) string {
	return fmt.Sprintf(recommendPromptTemplate, buildProfileContext(p), buildContext(postings), query)
}

func buildClarifyPrompt(query string) string {
	return fmt.Sprintf(clarifyPromptTemplate, query)
}

// buildContext summarizes the key fields of at most contextSampleSize
// postings for inclusion in a prompt.
func buildContext(postings *catalog.Postings) string {
	if postings.Len() == 0 {
		return "No internship data available."
	}

	sample := postings.First(contextSampleSize)

	var sb strings.Builder
	for _, posting := range sample.Items {
		fmt.Fprintf(&sb, "Title: %s\n", posting.Title)
		fmt.Fprintf(&sb, "Organization: %s\n", posting.Organization)
		fmt.Fprintf(&sb, "Location: %s, %s\n", posting.Location, posting.Country)
		fmt.Fprintf(&sb, "Mode: %s\n", posting.Mode)
		fmt.Fprintf(&sb, "Target Audience: %s\n", posting.TargetAudience)
		fmt.Fprintf(&sb, "Skills: %s\n", catalog.JoinList(posting.SkillsRequired))
		fmt.Fprintf(&sb, "Stipend: %s\n\n", posting.Stipend)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func buildProfileContext(p *profile.Profile) string {
	var sb strings.Builder
	sb.WriteString("User Profile:\n")
	fmt.Fprintf(&sb, "- Skills: %s\n", orNotSpecified(strings.Join(p.Skills, ", ")))
	fmt.Fprintf(&sb, "- Education Level: %s\n", orNotSpecified(p.EducationLevel))
	fmt.Fprintf(&sb, "- Preferred Location: %s\n", orNotSpecified(p.PreferredLocation))
	fmt.Fprintf(&sb, "- Preferred Mode: %s\n", orNotSpecified(p.PreferredMode))
	fmt.Fprintf(&sb, "- Interests: %s", orNotSpecified(strings.Join(p.Interests, ", ")))
	return sb.String()
}

func orNotSpecified(value string) string {
	if value == "" {
		return "Not specified"
	}
	return value
}
