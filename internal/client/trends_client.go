package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// antiXSSIPrefix guards the daily trends JSON payload and must be stripped
// before decoding.
const antiXSSIPrefix = ")]}',"

// geoParams maps supported ISO country codes to the upstream geo parameter.
// Codes outside the table issue a global (geo-less) query.
var geoParams = map[string]string{
	"GB": "GB", "US": "US", "IE": "IE", "CA": "CA", "AU": "AU",
	"NZ": "NZ", "DE": "DE", "FR": "FR", "ES": "ES", "IT": "IT",
	"NL": "NL", "SE": "SE", "NO": "NO", "DK": "DK", "FI": "FI",
	"BE": "BE", "CH": "CH", "AT": "AT", "PL": "PL", "PT": "PT",
	"GR": "GR",
}

// TrendsClient fetches daily trending search terms.
type TrendsClient struct {
	httpClient *http.Client
	baseURL    string
}

type dailyTrendsResponse struct {
	Default struct {
		TrendingSearchesDays []struct {
			TrendingSearches []struct {
				Title struct {
					Query string `json:"query"`
				} `json:"title"`
			} `json:"trendingSearches"`
		} `json:"trendingSearchesDays"`
	} `json:"default"`
}

// NewTrendsClient creates a client for the trending-searches endpoint.
func NewTrendsClient(baseURL string) *TrendsClient {
	return &TrendsClient{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// TrendingSearches returns the current trending search terms for a locale,
// most popular first.
func (c *TrendsClient) TrendingSearches(ctx context.Context, geo, lang string, tz int) ([]string, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("trends client not configured")
	}

	params := url.Values{}
	params.Set("hl", lang)
	params.Set("tz", strconv.Itoa(tz))
	params.Set("ns", "15")
	if g, ok := geoParams[strings.ToUpper(geo)]; ok {
		params.Set("geo", g)
	}

	endpoint := c.baseURL + "/trends/api/dailytrends?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trends API error (status %d)", resp.StatusCode)
	}

	payload := strings.TrimPrefix(string(respBody), antiXSSIPrefix)

	var trendsResp dailyTrendsResponse
	if err := json.Unmarshal([]byte(payload), &trendsResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	var terms []string
	for _, day := range trendsResp.Default.TrendingSearchesDays {
		for _, s := range day.TrendingSearches {
			if q := strings.TrimSpace(s.Title.Query); q != "" {
				terms = append(terms, q)
			}
		}
	}
	return terms, nil
}

// IsConfigured returns true if a base URL was provided
func (c *TrendsClient) IsConfigured() bool {
	return c.baseURL != ""
}
