package scorecard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/somapath/somapath-backend/internal/platform/logger"
)

func f64(v float64) *float64 { return &v }

func newTestScorecardClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("COLLEGE_SCORECARD_API_KEY", "test-key")
	t.Setenv("COLLEGE_SCORECARD_BASE_URL", srv.URL)

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	c, err := NewClient(log)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestSearch_SendsQueryAndDecodesResults(t *testing.T) {
	var gotQuery map[string]string
	c := newTestScorecardClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"metadata": map[string]any{"total": 1, "page": 0, "per_page": 5},
			"results": []map[string]any{{
				"id":          166027,
				"school.name": "Harvard University",
				"school.city": "Cambridge",
			}},
		})
	}))

	resp, err := c.Search(context.Background(), SearchParams{Name: "Harvard", PerPage: 5})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != 166027 || resp.Results[0].Name != "Harvard University" {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}
	if gotQuery["api_key"] != "test-key" {
		t.Fatalf("api key not sent: %v", gotQuery)
	}
	if gotQuery["school.name"] != "Harvard" || gotQuery["per_page"] != "5" {
		t.Fatalf("search params not sent: %v", gotQuery)
	}
	if gotQuery["fields"] == "" {
		t.Fatalf("fields filter missing")
	}
}

func TestSearch_ErrorStatus(t *testing.T) {
	c := newTestScorecardClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"bad key"}`))
	}))

	if _, err := c.Search(context.Background(), SearchParams{Name: "x"}); err == nil {
		t.Fatalf("expected error on 403")
	}
}

func TestToUniversity_Transform(t *testing.T) {
	u := ToUniversity(School{
		ID:                166027,
		Name:              "Harvard University",
		City:              "Cambridge",
		State:             "MA",
		SchoolURL:         "www.harvard.edu",
		AdmissionRate:     f64(0.0324),
		TuitionInState:    f64(57261),
		TuitionOutOfState: f64(57261.4),
		CompletionRate:    f64(0.9786),
		StudentSize:       f64(7547),
		SATAverage:        f64(1520),
	})

	if u.ScorecardID == nil || *u.ScorecardID != 166027 {
		t.Fatalf("scorecard id: %v", u.ScorecardID)
	}
	if u.Location != "Cambridge, MA" {
		t.Fatalf("location: %q", u.Location)
	}
	// 0..1 fractions become whole percentages
	if u.AcceptanceRate == nil || *u.AcceptanceRate != 3 {
		t.Fatalf("acceptance rate: %v", u.AcceptanceRate)
	}
	if u.CompletionRate == nil || *u.CompletionRate != 98 {
		t.Fatalf("completion rate: %v", u.CompletionRate)
	}
	// out-of-state wins for the headline tuition
	if u.TuitionUSD == nil || *u.TuitionUSD != 57261 {
		t.Fatalf("tuition usd: %v", u.TuitionUSD)
	}
	if u.SATScoreAverage == nil || *u.SATScoreAverage != 1520 {
		t.Fatalf("sat average: %v", u.SATScoreAverage)
	}
	if u.ACTScoreAverage != nil || u.MedianEarnings != nil {
		t.Fatalf("absent metrics must stay nil")
	}
}

func TestToUniversity_FallsBackToInStateTuition(t *testing.T) {
	u := ToUniversity(School{ID: 1, Name: "State College", TuitionInState: f64(9800)})
	if u.TuitionUSD == nil || *u.TuitionUSD != 9800 {
		t.Fatalf("expected in-state fallback, got %v", u.TuitionUSD)
	}
}

func TestToUniversity_LocationOmittedWhenEmpty(t *testing.T) {
	u := ToUniversity(School{ID: 2, Name: "Mystery U"})
	if u.Location != "" {
		t.Fatalf("expected empty location, got %q", u.Location)
	}
}
