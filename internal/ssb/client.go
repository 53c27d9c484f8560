package ssb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the StatBank endpoint for table 08517
// (registered unemployed persons by sex and age).
const DefaultBaseURL = "https://data.ssb.no/api/v0/no/table/08517/"

// Client fetches unemployment data from the SSB StatBank API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient returns a client against the production StatBank endpoint.
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL, 30*time.Second)
}

// NewClientWithBaseURL allows injecting a custom endpoint and timeout (used in tests).
func NewClientWithBaseURL(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

type queryItem struct {
	Code      string    `json:"code"`
	Selection selection `json:"selection"`
}

type selection struct {
	Filter string   `json:"filter"`
	Values []string `json:"values"`
}

type tableQuery struct {
	Query    []queryItem       `json:"query"`
	Response map[string]string `json:"response"`
}

// buildQuery selects the fixed slice of table 08517 the dashboard uses:
// all three sex codes, the four core age groups, person counts, 2015-2024.
func buildQuery() tableQuery {
	years := make([]string, 0, 10)
	for y := 2015; y <= 2024; y++ {
		years = append(years, fmt.Sprintf("%d", y))
	}
	return tableQuery{
		Query: []queryItem{
			{Code: "Kjonn", Selection: selection{Filter: "item", Values: []string{"0", "1", "2"}}},
			{Code: "Alder", Selection: selection{Filter: "item", Values: []string{"15-74", "15-24", "25-54", "55-74"}}},
			{Code: "ContentsCode", Selection: selection{Filter: "item", Values: []string{"Personer"}}},
			{Code: "Tid", Selection: selection{Filter: "item", Values: years}},
		},
		Response: map[string]string{"format": "json-stat2"},
	}
}

// FetchDataset performs the single POST against the StatBank endpoint.
// Any transport error, non-2xx status or decode failure is returned as an
// error; there is no retry.
func (c *Client) FetchDataset(ctx context.Context) (*Dataset, error) {
	payload, err := json.Marshal(buildQuery())
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("ssb api returned %d: %s", resp.StatusCode, string(body))
	}

	var ds Dataset
	if err := json.NewDecoder(resp.Body).Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &ds, nil
}
