package filtering

import (
	"regexp"
	"strconv"
	"strings"
)

// containsFold reports whether value contains term, case-insensitively. An
// empty field value never matches a non-empty term.
func containsFold(value, term string) bool {
	if value == "" {
		return false
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// containsAnyFold reports whether value contains at least one of the terms.
func containsAnyFold(value string, terms []string) bool {
	for _, term := range terms {
		if containsFold(value, term) {
			return true
		}
	}
	return false
}

var digitsPattern = regexp.MustCompile(`\d+`)

// parseAmount extracts the first integer substring from a free-text
// compensation field. Malformed or empty fields parse as 0 rather than
// failing the filter run.
func parseAmount(text string) int {
	match := digitsPattern.FindString(text)
	if match == "" {
		return 0
	}

	value, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return value
}
