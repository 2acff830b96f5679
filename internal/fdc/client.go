package fdc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

var (
	// ErrUpstream is returned when FDC answers with a non-success status or
	// cannot be reached.
	ErrUpstream = errors.New("fdc: upstream request failed")
	// ErrFoodNotFound is returned by the detail endpoint for unknown ids.
	ErrFoodNotFound = errors.New("fdc: food not found")
)

var fdcRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fooding_fdc_requests_total",
		Help: "Outbound FoodData Central requests by endpoint and outcome",
	},
	[]string{"endpoint", "outcome"},
)

// Category is an inbound data-type filter.
type Category string

const (
	CategoryAny        Category = ""
	CategoryAll        Category = "All"
	CategoryBranded    Category = "Branded"
	CategorySurvey     Category = "Survey"
	CategorySRLegacy   Category = "SR Legacy"
	CategoryFoundation Category = "Foundation"
	CategoryCustom     Category = "Custom"
)

// External lists the categories queried when the filter is All.
var External = []Category{CategoryBranded, CategorySurvey}

// DataType returns the FDC filter value for a single category.
func (c Category) DataType() DataType {
	switch c {
	case CategoryBranded:
		return DataTypeBranded
	case CategorySurvey:
		return DataTypeSurvey
	case CategorySRLegacy:
		return DataTypeSRLegacy
	case CategoryFoundation:
		return DataTypeFoundation
	case CategoryCustom:
		return DataTypeCustom
	}
	return ""
}

// Bucket returns the bucket a single category fills.
func (c Category) Bucket() (Bucket, bool) {
	switch c {
	case CategoryBranded:
		return BucketBranded, true
	case CategorySurvey:
		return BucketSurvey, true
	case CategorySRLegacy:
		return BucketSRLegacy, true
	case CategoryFoundation:
		return BucketFoundation, true
	case CategoryCustom:
		return BucketCustom, true
	}
	return "", false
}

// SearchParams is one outbound search request.
type SearchParams struct {
	Query      string
	AllWords   bool
	PageNumber int
	PageSize   int
	// Category restricts the FDC data type; CategoryAny sends no filter.
	Category Category
	Options  Options
}

// SearchCriteria is FDC's echo of the request parameters.
type SearchCriteria struct {
	Query           string   `json:"query"`
	DataType        []string `json:"dataType"`
	PageSize        int      `json:"pageSize"`
	PageNumber      int      `json:"pageNumber"`
	RequireAllWords bool     `json:"requireAllWords"`
}

// SearchResponse is the body of GET /foods/search.
type SearchResponse struct {
	TotalHits          int            `json:"totalHits"`
	CurrentPage        int            `json:"currentPage"`
	TotalPages         int            `json:"totalPages"`
	Foods              []rawFood      `json:"foods"`
	FoodSearchCriteria SearchCriteria `json:"foodSearchCriteria"`
}

// Searcher is the FDC surface used by the services.
type Searcher interface {
	Search(ctx context.Context, params SearchParams) (*Result, error)
	FoodDetail(ctx context.Context, fdcID int64) ([]byte, error)
}

// Client talks to the FoodData Central REST API.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	APIKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
	}
}

// Search runs one search and normalizes the payload. A response with zero
// hits yields an empty Result, not an error.
func (c *Client) Search(ctx context.Context, params SearchParams) (*Result, error) {
	q := url.Values{}
	q.Set("query", params.Query)
	q.Set("api_key", c.APIKey)
	q.Set("pageSize", strconv.Itoa(params.PageSize))
	q.Set("pageNumber", strconv.Itoa(params.PageNumber))
	q.Set("requireAllWords", strconv.FormatBool(params.AllWords))
	q.Set("format", "abridged")
	if dt := params.Category.DataType(); dt != "" {
		q.Set("dataType", string(dt))
	}

	body, status, err := c.get(ctx, "/foods/search", q)
	if err != nil {
		fdcRequestsTotal.WithLabelValues("search", "error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if status != http.StatusOK {
		fdcRequestsTotal.WithLabelValues("search", "status_"+strconv.Itoa(status)).Inc()
		return nil, fmt.Errorf("%w: search returned %d: %s", ErrUpstream, status, truncate(body))
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		fdcRequestsTotal.WithLabelValues("search", "decode_error").Inc()
		return nil, fmt.Errorf("%w: decode search response: %v", ErrUpstream, err)
	}
	fdcRequestsTotal.WithLabelValues("search", "ok").Inc()

	res := Normalize(resp, params.Options)
	if b, ok := params.Category.Bucket(); ok {
		res.Ensure(b)
	}
	return res, nil
}

// FoodDetail fetches the raw canonical record for one FDC id.
func (c *Client) FoodDetail(ctx context.Context, fdcID int64) ([]byte, error) {
	q := url.Values{}
	q.Set("api_key", c.APIKey)

	body, status, err := c.get(ctx, "/food/"+strconv.FormatInt(fdcID, 10), q)
	if err != nil {
		fdcRequestsTotal.WithLabelValues("food", "error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	switch status {
	case http.StatusOK:
		fdcRequestsTotal.WithLabelValues("food", "ok").Inc()
		return body, nil
	case http.StatusNotFound:
		fdcRequestsTotal.WithLabelValues("food", "not_found").Inc()
		return nil, ErrFoodNotFound
	default:
		fdcRequestsTotal.WithLabelValues("food", "status_"+strconv.Itoa(status)).Inc()
		return nil, fmt.Errorf("%w: food %d returned %d: %s", ErrUpstream, fdcID, status, truncate(body))
	}
}

func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func truncate(b []byte) string {
	const limit = 256
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
