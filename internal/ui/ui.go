// Package ui holds the terminal presentation helpers for the chat CLI.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"github.com/saanvi-kanodia/internship-chatbot/internal/profile"
)

const bannerText = `
 ___       _                       _     _              ____        _
|_ _|_ __ | |_ ___ _ __ _ __  ___ | |__ (_)_ __        | __ )  ___ | |_
 | || '_ \| __/ _ \ '__| '_ \/ __|| '_ \| | '_ \  _____|  _ \ / _ \| __|
 | || | | | ||  __/ |  | | | \__ \| | | | | |_) ||_____| |_) | (_) | |_
|___|_| |_|\__\___|_|  |_| |_|___/|_| |_|_| .__/       |____/ \___/ \__|
                                          |_|
`

// PrintBanner displays the application banner unless silenced (single-shot
// query mode keeps stdout clean for scripting).
func PrintBanner(silence bool) {
	if silence {
		return
	}
	pterm.DefaultBasicText.Print(pterm.LightCyan(bannerText))
	pterm.Println(pterm.Gray("Type 'help' for commands, 'quit' to exit"))
	pterm.Println()
}

// PrintCatalogSummary reports how many postings are loaded and how fresh the
// newest scrape is.
func PrintCatalogSummary(postings *catalog.Postings) {
	count := humanize.Comma(int64(postings.Len()))
	line := fmt.Sprintf("%s internship(s) loaded", count)

	if age := newestScrapeAge(postings); age != "" {
		line += fmt.Sprintf(" (last scraped %s)", age)
	}

	pterm.Success.Println(line)
}

func newestScrapeAge(postings *catalog.Postings) string {
	var newest time.Time
	for _, posting := range postings.Items {
		ts, err := time.Parse(time.RFC3339, posting.ScrapedTimestamp)
		if err != nil {
			continue
		}
		if ts.After(newest) {
			newest = ts
		}
	}

	if newest.IsZero() {
		return ""
	}
	return humanize.Time(newest)
}

// PrintProfile renders the session profile.
func PrintProfile(p *profile.Profile) {
	pterm.DefaultSection.Println("Current User Profile")

	rows := [][]string{
		{"Skills", orNotSet(strings.Join(p.Skills, ", "))},
		{"Education Level", orNotSet(p.EducationLevel)},
		{"Preferred Location", orNotSet(p.PreferredLocation)},
		{"Preferred Mode", orNotSet(p.PreferredMode)},
		{"Stipend Expectation", orNotSet(p.StipendExpectation)},
		{"Interests", orNotSet(strings.Join(p.Interests, ", "))},
	}

	for _, row := range rows {
		pterm.Printf("%s: %s\n", pterm.Bold.Sprint(row[0]), row[1])
	}
	pterm.Println()
}

func orNotSet(value string) string {
	if value == "" {
		return pterm.Gray("Not set")
	}
	return value
}
