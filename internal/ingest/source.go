package ingest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"github.com/saanvi-kanodia/internship-chatbot/internal/utils"
)

const defaultUserAgent = "internship-chatbot/1.0"

// Source produces postings from one ingestion origin.
type Source interface {
	Name() string
	Collect(ctx context.Context) ([]*catalog.Posting, error)
}

// CSVSource reads postings from a previously scraped catalog file, letting
// older scrape outputs participate in a merge run.
type CSVSource struct {
	SourceName string
	Path       string
}

func (s *CSVSource) Name() string { return s.SourceName }

func (s *CSVSource) Collect(_ context.Context) ([]*catalog.Posting, error) {
	postings, err := catalog.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}

	for _, posting := range postings.Items {
		if posting.Source == "" {
			posting.Source = s.SourceName
		}
	}

	return postings.Items, nil
}

// HTMLSource scrapes a listing page with configurable CSS selectors. One
// generic source covers simple listing boards; anything richer belongs in a
// dedicated scraper behind the same interface.
type HTMLSource struct {
	SourceName       string
	URL              string
	ItemSelector     string
	TitleSelector    string
	OrgSelector      string
	LocationSelector string
	LinkSelector     string

	// Delay is a polite pause before the request, applied per Collect call.
	Delay  time.Duration
	Client *http.Client
}

func (s *HTMLSource) Name() string { return s.SourceName }

func (s *HTMLSource) Collect(ctx context.Context) ([]*catalog.Posting, error) {
	if err := utils.WaitFor(ctx, s.Delay); err != nil {
		return nil, err
	}

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %q: %w", s.URL, err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %q: unexpected status %s", s.URL, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", s.URL, err)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)

	var postings []*catalog.Posting
	doc.Find(s.ItemSelector).Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find(s.TitleSelector).First().Text())
		if title == "" {
			return
		}

		link, _ := item.Find(s.LinkSelector).First().Attr("href")

		postings = append(postings, &catalog.Posting{
			Title:            title,
			Organization:     strings.TrimSpace(item.Find(s.OrgSelector).First().Text()),
			Location:         strings.TrimSpace(item.Find(s.LocationSelector).First().Text()),
			ApplicationLink:  strings.TrimSpace(link),
			Type:             "Internship",
			Source:           s.SourceName,
			ScrapedTimestamp: timestamp,
		})
	})

	return postings, nil
}
