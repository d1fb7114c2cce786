package query

import "strings"

const vagueTokenThreshold = 3

// clarificationTopic pairs a topic lexicon with the question asked when none
// of its keywords appear in the query. Topics are checked in a fixed order.
type clarificationTopic struct {
	keywords []string
	question string
}

var clarificationTopics = []clarificationTopic{
	{
		keywords: append(append([]string{}, locationLexicon...), "remote"),
		question: "What location are you interested in? (e.g., Bangalore, Mumbai, Remote)",
	},
	{
		keywords: []string{"remote", "onsite", "office", "hybrid"},
		question: "What work mode do you prefer? (Remote, Onsite, or Hybrid)",
	},
	{
		keywords: []string{
			"python", "java", "javascript", "react", "angular", "vue", "node.js",
			"django", "flask", "machine learning", "ai", "data science",
		},
		question: "What skills or technologies are you interested in? (e.g., Python, React, AI/ML)",
	},
	{
		keywords: []string{"stipend", "salary", "paid", "unpaid", "compensation"},
		question: "Are you looking for paid internships? What's your stipend expectation?",
	},
	{
		keywords: []string{"duration", "months", "weeks", "summer", "winter", "semester"},
		question: "What duration are you looking for? (e.g., 2 months, 6 months, summer)",
	},
}

// Clarify returns one question per topic the query says nothing about, in the
// fixed topic order: location, mode, skills, stipend, duration.
func Clarify(text string) []string {
	lower := strings.ToLower(text)

	var questions []string
	for _, topic := range clarificationTopics {
		if containsAny(lower, topic.keywords) {
			continue
		}
		questions = append(questions, topic.question)
	}

	return questions
}

// IsVague reports whether a query is too short to search directly. Token
// count is the only signal here; longer queries are searched even when they
// omit several topics.
func IsVague(text string) bool {
	return len(strings.Fields(text)) < vagueTokenThreshold
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
