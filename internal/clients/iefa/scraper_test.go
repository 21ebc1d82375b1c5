package iefa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/somapath/somapath-backend/internal/platform/logger"
)

const listingPage = `<!DOCTYPE html>
<html><body>
<ul>
  <li class="scholarship">
    <a href="/scholarships/3596/Global_Leaders_Award">Global Leaders Award</a>
    <span>Field of Study: Engineering</span>
    <span>Nationality: Kenya</span>
    <span>Host Countries: United States, Canada</span>
    <p class="description">Funding for engineering undergraduates.</p>
  </li>
  <li class="scholarship">
    <a href="/scholarships/4102/Health_Futures">Health Futures Scholarship</a>
    <span>Nationality: Unrestricted</span>
  </li>
  <li>
    <a href="/scholarships/3596/Global_Leaders_Award">Global Leaders Award (duplicate link)</a>
  </li>
  <li>
    <a href="/about">Not a scholarship link</a>
  </li>
</ul>
</body></html>`

func newTestScraper(t *testing.T) *Scraper {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scholarships" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(listingPage))
	}))
	t.Cleanup(srv.Close)

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewScraper(log, srv.Client(), srv.URL)
}

func TestScrape_ParsesListingEntries(t *testing.T) {
	s := newTestScraper(t)

	entries, err := s.Scrape(context.Background(), ScrapeParams{})
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 unique entries, got %d", len(entries))
	}

	first := entries[0]
	if first.IEFAID != "3596" || first.Name != "Global Leaders Award" {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if first.FieldOfStudy != "Engineering" || first.Nationality != "Kenya" {
		t.Fatalf("labeled fields not parsed: %+v", first)
	}
	if len(first.HostCountries) != 2 || first.HostCountries[1] != "Canada" {
		t.Fatalf("host countries not split: %v", first.HostCountries)
	}
	if first.Description != "Funding for engineering undergraduates." {
		t.Fatalf("description not parsed: %q", first.Description)
	}
	if first.ApplicationURL == "" || first.ApplicationURL[0] == '/' {
		t.Fatalf("application URL should be absolute: %q", first.ApplicationURL)
	}

	second := entries[1]
	if second.IEFAID != "4102" || second.FieldOfStudy != "" {
		t.Fatalf("unexpected second entry: %+v", second)
	}
}

func TestScrape_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	s := NewScraper(log, srv.Client(), srv.URL)
	if _, err := s.Scrape(context.Background(), ScrapeParams{}); err == nil {
		t.Fatalf("expected error on non-200 listing page")
	}
}

func TestToScholarship_Defaults(t *testing.T) {
	out := ToScholarship(Scholarship{IEFAID: "77", Name: "Test Award"})
	if out.IEFAID == nil || *out.IEFAID != "77" {
		t.Fatalf("iefa id not carried: %v", out.IEFAID)
	}
	if out.Organization != "IEFA" {
		t.Fatalf("unexpected organization %q", out.Organization)
	}
	if out.Nationality != "Unrestricted" {
		t.Fatalf("empty nationality should default, got %q", out.Nationality)
	}
	if !out.ForKenyanStudents {
		t.Fatalf("expected ForKenyanStudents default true")
	}
}

func TestCuratedScholarships_StableIDs(t *testing.T) {
	rows := CuratedScholarships()
	if len(rows) != 3 {
		t.Fatalf("expected 3 curated entries, got %d", len(rows))
	}
	seen := map[string]bool{}
	for _, row := range rows {
		if row.IEFAID == "" || row.Name == "" || row.ApplicationURL == "" {
			t.Fatalf("incomplete curated entry: %+v", row)
		}
		if seen[row.IEFAID] {
			t.Fatalf("duplicate curated id %q", row.IEFAID)
		}
		seen[row.IEFAID] = true
	}
}
