package iefa

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/types"
)

const defaultBaseURL = "https://www.iefa.org"

// scholarship detail links look like /scholarships/3596/Some_Name
var scholarshipHrefExpr = regexp.MustCompile(`/scholarships/(\d+)/`)

// Scholarship is one scraped listing entry.
type Scholarship struct {
	IEFAID         string
	Name           string
	FieldOfStudy   string
	Description    string
	Nationality    string
	HostCountries  []string
	ApplicationURL string
}

// Scraper crawls IEFA listing pages and extracts scholarship entries.
type Scraper struct {
	log     *logger.Logger
	client  *http.Client
	baseURL string
}

func NewScraper(log *logger.Logger, client *http.Client, baseURL string) *Scraper {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Scraper{
		log:     log.With("service", "IEFAScraper"),
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type ScrapeParams struct {
	FieldOfStudy string
	HostCountry  string
	Page         int
}

// Scrape fetches one listing page and parses its scholarship entries.
func (s *Scraper) Scrape(ctx context.Context, params ScrapeParams) ([]Scholarship, error) {
	pageURL, err := s.buildListURL(params)
	if err != nil {
		return nil, err
	}

	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	results := make([]Scholarship, 0)
	seen := map[string]struct{}{}

	doc.Find("a[href*='/scholarships/']").Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		m := scholarshipHrefExpr.FindStringSubmatch(href)
		if m == nil {
			return
		}
		id := m[1]
		if _, dup := seen[id]; dup {
			return
		}
		name := strings.TrimSpace(link.Text())
		if name == "" {
			return
		}
		seen[id] = struct{}{}

		entry := Scholarship{
			IEFAID:         id,
			Name:           name,
			ApplicationURL: s.absoluteURL(href),
		}

		// Listing rows carry the detail fields as labeled siblings.
		row := link.Closest("li, tr, div.scholarship")
		if row.Length() > 0 {
			entry.FieldOfStudy = labeledValue(row, "Field of Study")
			entry.Nationality = labeledValue(row, "Nationality")
			if hosts := labeledValue(row, "Host Countries"); hosts != "" {
				entry.HostCountries = splitList(hosts)
			}
			entry.Description = strings.TrimSpace(row.Find("p.description, .scholarship-description").First().Text())
		}

		results = append(results, entry)
	})

	s.log.Debug("Scraped IEFA listing page", "url", pageURL, "entries", len(results))
	return results, nil
}

func (s *Scraper) buildListURL(params ScrapeParams) (string, error) {
	u, err := url.Parse(s.baseURL + "/scholarships")
	if err != nil {
		return "", fmt.Errorf("bad IEFA base url: %w", err)
	}
	q := u.Query()
	if params.FieldOfStudy != "" {
		q.Set("field", params.FieldOfStudy)
	}
	if params.HostCountry != "" {
		q.Set("country", params.HostCountry)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (s *Scraper) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("iefa listing fetch: %s", resp.Status)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

func (s *Scraper) absoluteURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return s.baseURL + href
}

// labeledValue finds text like "Field of Study: Engineering" inside row.
func labeledValue(row *goquery.Selection, label string) string {
	var out string
	row.Find("li, span, dd, td, p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if strings.HasPrefix(text, label+":") {
			out = strings.TrimSpace(strings.TrimPrefix(text, label+":"))
			return false
		}
		return true
	})
	return out
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ToScholarship maps a scraped entry onto the directory record.
func ToScholarship(s Scholarship) *types.Scholarship {
	id := s.IEFAID
	nationality := s.Nationality
	if nationality == "" {
		nationality = "Unrestricted"
	}
	return &types.Scholarship{
		IEFAID:            &id,
		Name:              s.Name,
		Organization:      "IEFA",
		FieldOfStudy:      s.FieldOfStudy,
		Description:       s.Description,
		Nationality:       nationality,
		HostCountries:     s.HostCountries,
		ApplicationURL:    s.ApplicationURL,
		ForKenyanStudents: true,
	}
}

// CuratedScholarships is the hand-maintained list of awards particularly
// relevant to Kenyan students, seeded alongside the scraped entries.
func CuratedScholarships() []Scholarship {
	return []Scholarship{
		{
			IEFAID:         "kenyan-mastercard-foundation",
			Name:           "MasterCard Foundation Scholars Program",
			FieldOfStudy:   "Unrestricted",
			Description:    "Comprehensive scholarship for academically talented yet economically disadvantaged young people from Africa, providing financial support, academic support, and leadership development.",
			Nationality:    "African countries including Kenya",
			HostCountries:  []string{"United States", "Canada", "United Kingdom"},
			ApplicationURL: "https://mastercardfdn.org/all/scholars/",
		},
		{
			IEFAID:         "kenyan-usaid-scholarships",
			Name:           "USAID Scholarships for Kenyan Students",
			FieldOfStudy:   "Development Studies, Agriculture, Engineering, Health Sciences",
			Description:    "USAID provides various scholarship opportunities for Kenyan students pursuing higher education in fields aligned with Kenya's development priorities.",
			Nationality:    "Kenya",
			HostCountries:  []string{"United States", "Kenya"},
			ApplicationURL: "https://www.usaid.gov/kenya",
		},
		{
			IEFAID:         "kenyan-fulbright-program",
			Name:           "Fulbright Foreign Student Program",
			FieldOfStudy:   "Unrestricted",
			Description:    "The Fulbright Program provides grants for international graduate students to study and conduct research in the United States.",
			Nationality:    "Kenya (among other countries)",
			HostCountries:  []string{"United States"},
			ApplicationURL: "https://foreign.fulbrightonline.org/",
		},
	}
}
