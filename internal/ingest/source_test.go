package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"go.uber.org/zap"
)

const listingPage = `<html><body>
<div class="listing">
  <div class="job">
    <h2 class="title">Backend Intern</h2>
    <span class="org">Acme</span>
    <span class="loc">Bangalore</span>
    <a class="apply" href="https://example.com/jobs/1">Apply</a>
  </div>
  <div class="job">
    <h2 class="title"></h2>
    <span class="org">Nameless</span>
  </div>
  <div class="job">
    <h2 class="title">Data Intern</h2>
    <span class="org">Globex</span>
    <span class="loc">Mumbai</span>
    <a class="apply" href="https://example.com/jobs/2">Apply</a>
  </div>
</div>
</body></html>`

func TestHTMLSourceCollect(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(listingPage))
	}))
	defer server.Close()

	source := &HTMLSource{
		SourceName:       "test-board",
		URL:              server.URL,
		ItemSelector:     "div.job",
		TitleSelector:    "h2.title",
		OrgSelector:      "span.org",
		LocationSelector: "span.loc",
		LinkSelector:     "a.apply",
	}

	items, err := source.Collect(context.Background())
	if err != nil {
		t.Fatalf("collecting: %v", err)
	}

	if gotUserAgent != defaultUserAgent {
		t.Fatalf("expected user agent %q, got %q", defaultUserAgent, gotUserAgent)
	}

	// The untitled item is skipped.
	if len(items) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(items))
	}

	first := items[0]
	if first.Title != "Backend Intern" || first.Organization != "Acme" || first.Location != "Bangalore" {
		t.Fatalf("unexpected posting: %+v", first)
	}
	if first.ApplicationLink != "https://example.com/jobs/1" {
		t.Fatalf("unexpected link: %q", first.ApplicationLink)
	}
	if first.Source != "test-board" || first.Type != "Internship" {
		t.Fatalf("provenance fields not set: %+v", first)
	}
	if first.ScrapedTimestamp == "" {
		t.Fatal("scraped timestamp not set")
	}
}

func TestHTMLSourceRejectsBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	source := &HTMLSource{SourceName: "down", URL: server.URL, ItemSelector: "div"}

	if _, err := source.Collect(context.Background()); err == nil {
		t.Fatal("expected an error for non-200 status")
	}
}

func TestCSVSourceStampsMissingProvenance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.csv")
	err := catalog.WriteFile(path, &catalog.Postings{Items: []*catalog.Posting{
		{Title: "SWE Intern", Organization: "Acme", Location: "Bangalore"},
		{Title: "Data Intern", Organization: "Globex", Location: "Mumbai", Source: "original"},
	}})
	if err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	source := &CSVSource{SourceName: "archive", Path: path}

	items, err := source.Collect(context.Background())
	if err != nil {
		t.Fatalf("collecting: %v", err)
	}

	if items[0].Source != "archive" {
		t.Fatalf("expected stamped source, got %q", items[0].Source)
	}
	if items[1].Source != "original" {
		t.Fatalf("existing source overwritten: %q", items[1].Source)
	}
}

func TestMergerSkipsFailingSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "good.csv")
	err := catalog.WriteFile(path, &catalog.Postings{Items: []*catalog.Posting{
		{Title: "SWE Intern", Organization: "Acme", Location: "Bangalore"},
	}})
	if err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	merger := NewMerger([]Source{
		&HTMLSource{SourceName: "broken", URL: server.URL, ItemSelector: "div"},
		&CSVSource{SourceName: "good", Path: path},
	}, zap.NewNop())

	items, err := merger.Run(context.Background())
	if err != nil {
		t.Fatalf("merging: %v", err)
	}

	if len(items) != 1 || items[0].Title != "SWE Intern" {
		t.Fatalf("expected the healthy source's posting, got %+v", items)
	}
}

func TestMergerDeduplicatesAcrossSources(t *testing.T) {
	dir := t.TempDir()

	pathA := filepath.Join(dir, "a.csv")
	pathB := filepath.Join(dir, "b.csv")

	err := catalog.WriteFile(pathA, &catalog.Postings{Items: []*catalog.Posting{
		{Title: "SWE Intern", Organization: "Acme", Location: "Bangalore"},
	}})
	if err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	err = catalog.WriteFile(pathB, &catalog.Postings{Items: []*catalog.Posting{
		{Title: "swe intern", Organization: "acme", Location: "bangalore"},
		{Title: "Data Intern", Organization: "Globex", Location: "Mumbai"},
	}})
	if err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	merger := NewMerger([]Source{
		&CSVSource{SourceName: "a", Path: pathA},
		&CSVSource{SourceName: "b", Path: pathB},
	}, zap.NewNop())

	items, err := merger.Run(context.Background())
	if err != nil {
		t.Fatalf("merging: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 unique postings, got %d", len(items))
	}

	// Declared source order decides which duplicate survives.
	if items[0].Source != "a" {
		t.Fatalf("expected the first source's posting to win, got %q", items[0].Source)
	}
}
