package scorecard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/types"
)

// Fields requested from the College Scorecard API. The API returns them as a
// flat object keyed by these dotted paths.
var requestedFields = []string{
	"id",
	"school.name",
	"school.city",
	"school.state",
	"school.school_url",
	"latest.admissions.admission_rate.overall",
	"latest.cost.tuition.in_state",
	"latest.cost.tuition.out_of_state",
	"latest.cost.avg_net_price.overall",
	"latest.completion.completion_rate_4yr_100nt",
	"latest.student.size",
	"latest.earnings.10_yrs_after_entry.median",
	"latest.admissions.sat_scores.average.overall",
	"latest.admissions.act_scores.midpoint.cumulative",
}

type School struct {
	ID                int      `json:"id"`
	Name              string   `json:"school.name"`
	City              string   `json:"school.city"`
	State             string   `json:"school.state"`
	SchoolURL         string   `json:"school.school_url"`
	AdmissionRate     *float64 `json:"latest.admissions.admission_rate.overall"`
	TuitionInState    *float64 `json:"latest.cost.tuition.in_state"`
	TuitionOutOfState *float64 `json:"latest.cost.tuition.out_of_state"`
	AvgNetPrice       *float64 `json:"latest.cost.avg_net_price.overall"`
	CompletionRate    *float64 `json:"latest.completion.completion_rate_4yr_100nt"`
	StudentSize       *float64 `json:"latest.student.size"`
	MedianEarnings    *float64 `json:"latest.earnings.10_yrs_after_entry.median"`
	SATAverage        *float64 `json:"latest.admissions.sat_scores.average.overall"`
	ACTMidpoint       *float64 `json:"latest.admissions.act_scores.midpoint.cumulative"`
}

type SearchResponse struct {
	Metadata struct {
		Total   int `json:"total"`
		Page    int `json:"page"`
		PerPage int `json:"per_page"`
	} `json:"metadata"`
	Results []School `json:"results"`
}

type SearchParams struct {
	Name    string
	State   string
	Page    int
	PerPage int
}

type Client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(log *logger.Logger) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	apiKey := strings.TrimSpace(os.Getenv("COLLEGE_SCORECARD_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("missing COLLEGE_SCORECARD_API_KEY")
	}
	baseURL := strings.TrimSpace(os.Getenv("COLLEGE_SCORECARD_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://api.data.gov/ed/collegescorecard/v1/schools"
	}
	return &Client{
		log:        log.With("service", "ScorecardClient"),
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	perPage := params.PerPage
	if perPage <= 0 {
		perPage = 20
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("fields", strings.Join(requestedFields, ","))
	if params.Name != "" {
		q.Set("school.name", params.Name)
	}
	if params.State != "" {
		q.Set("school.state", params.State)
	}

	reqURL := c.baseURL + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	c.log.Debug("Fetching College Scorecard page", "name", params.Name, "state", params.State, "page", params.Page)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("college scorecard api: %s: %s", resp.Status, string(body))
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode scorecard response: %w", err)
	}
	return &out, nil
}

// GetByID looks up a single school by its Scorecard id.
func (c *Client) GetByID(ctx context.Context, scorecardID int) (*School, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("id", strconv.Itoa(scorecardID))
	q.Set("fields", strings.Join(requestedFields, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("college scorecard api: %s", resp.Status)
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode scorecard response: %w", err)
	}
	if len(out.Results) == 0 {
		return nil, nil
	}
	return &out.Results[0], nil
}

// ToUniversity maps an API school onto the directory record. Rates come back
// as 0..1 fractions and are stored as whole percentages.
func ToUniversity(s School) *types.University {
	u := &types.University{
		ScorecardID: intPtr(s.ID),
		Name:        s.Name,
		City:        s.City,
		State:       s.State,
		WebsiteURL:  s.SchoolURL,
	}
	if s.City != "" || s.State != "" {
		u.Location = strings.TrimSuffix(s.City+", "+s.State, ", ")
	}
	u.AcceptanceRate = pctPtr(s.AdmissionRate)
	u.CompletionRate = pctPtr(s.CompletionRate)
	u.TuitionInState = roundPtr(s.TuitionInState)
	u.TuitionOutOfState = roundPtr(s.TuitionOutOfState)
	if s.TuitionOutOfState != nil {
		u.TuitionUSD = roundPtr(s.TuitionOutOfState)
	} else if s.TuitionInState != nil {
		u.TuitionUSD = roundPtr(s.TuitionInState)
	}
	u.AverageCostOfAttendance = roundPtr(s.AvgNetPrice)
	u.StudentSize = roundPtr(s.StudentSize)
	u.MedianEarnings = roundPtr(s.MedianEarnings)
	u.SATScoreAverage = roundPtr(s.SATAverage)
	u.ACTScoreAverage = roundPtr(s.ACTMidpoint)
	return u
}

func intPtr(v int) *int { return &v }

func roundPtr(v *float64) *int {
	if v == nil {
		return nil
	}
	n := int(math.Round(*v))
	return &n
}

func pctPtr(v *float64) *int {
	if v == nil {
		return nil
	}
	n := int(math.Round(*v * 100))
	return &n
}
