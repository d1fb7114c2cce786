package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/saanvi-kanodia/internship-chatbot/internal/extract"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*of\s*experience`),
	regexp.MustCompile(`experience\s*:\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in\s+`),
}

var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`worked\s+at\s+([a-zA-Z\s&]+)`),
	regexp.MustCompile(`company\s*:\s*([a-zA-Z\s&]+)`),
	regexp.MustCompile(`employer\s*:\s*([a-zA-Z\s&]+)`),
}

// Extractor derives a profile fragment from unstructured resume text using
// lexicon scans and a handful of regex patterns. It never fails: empty input
// simply yields an empty fragment.
type Extractor struct {
	logger *zap.Logger
}

func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// ParseFile extracts text from a document via the text-extraction collaborator
// and parses it. An unreadable document or one with no extractable text yields
// a nil fragment and an error so the caller can distinguish "no profile" from
// "profile with no detected fields".
func (e *Extractor) ParseFile(path string, extractor extract.TextExtractor) (*Profile, error) {
	text, err := extractor.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %q: %w", path, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no extractable text in %q", path)
	}

	fragment := e.ParseText(text)

	e.logger.Info("parsed resume",
		zap.String("path", path),
		zap.Int("skills", len(fragment.Skills)),
		zap.String("education_level", fragment.EducationLevel),
	)

	return fragment, nil
}

// ParseText parses resume text into a profile fragment.
func (e *Extractor) ParseText(text string) *Profile {
	if text == "" {
		return &Profile{}
	}

	lower := strings.ToLower(text)

	return &Profile{
		Skills:         extractSkills(lower),
		EducationLevel: extractEducationLevel(lower),
		Interests:      extractInterests(lower),
		Experience:     extractExperience(lower),
	}
}

func extractSkills(lower string) []string {
	seen := make(map[string]struct{})
	var found []string

	// cases.Caser is stateful, never shared across calls.
	caser := cases.Title(language.English)

	scan := func(terms []string) {
		for _, term := range terms {
			if !strings.Contains(lower, term) {
				continue
			}
			titled := caser.String(term)
			if _, ok := seen[titled]; ok {
				continue
			}
			seen[titled] = struct{}{}
			found = append(found, titled)
		}
	}

	scan(technicalSkills)
	scan(softSkills)

	return found
}

func extractEducationLevel(lower string) string {
	for _, level := range educationLevels {
		for _, keyword := range level.keywords {
			if strings.Contains(lower, keyword) {
				return level.label
			}
		}
	}
	return educationUnknown
}

func extractExperience(lower string) Experience {
	exp := Experience{}

	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			years, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if years > exp.Years {
				exp.Years = years
			}
		}
	}

	// Every keyword occurrence counts, deliberately undeduplicated.
	for _, keyword := range internshipKeywords {
		exp.Internships += strings.Count(lower, keyword)
	}
	for _, keyword := range projectKeywords {
		exp.Projects += strings.Count(lower, keyword)
	}

	caser := cases.Title(language.English)

	seen := make(map[string]struct{})
	for _, pattern := range companyPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			company := caser.String(strings.TrimSpace(match[1]))
			if company == "" {
				continue
			}
			if _, ok := seen[company]; ok {
				continue
			}
			seen[company] = struct{}{}
			exp.Companies = append(exp.Companies, company)
		}
	}

	return exp
}

func extractInterests(lower string) []string {
	var interests []string
	for _, domain := range interestDomains {
		for _, keyword := range domain.keywords {
			if strings.Contains(lower, keyword) {
				interests = append(interests, domain.label)
				break
			}
		}
	}
	return interests
}
