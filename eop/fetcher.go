package eop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultFinalsURL = "https://datacenter.iers.org/data/csv/finals2000A.all.csv"

// ErrNotModified reports that the data center still serves the
// generation retrieved by the previous fetch.
var ErrNotModified = errors.New("eop: finals file not modified")

// Client downloads the rolling finals 2000A file from an IERS data
// center. The file is republished in place, so repeat fetches send
// If-Modified-Since and an unchanged file costs a header exchange.
type Client struct {
	url          string
	httpClient   *http.Client
	lastModified string
}

// NewClient creates a Client for the given URL, falling back to the
// IERS data center finals2000A distribution. A nil httpClient gets a
// default with a 60 second timeout.
func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = defaultFinalsURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{url: url, httpClient: httpClient}
}

// URL returns the configured source URL.
func (c *Client) URL() string {
	return c.url
}

// Fetch retrieves the finals file. When the server reports the file
// unchanged since the last successful fetch, Fetch returns
// ErrNotModified.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("eop: building request: %w", err)
	}
	if c.lastModified != "" {
		req.Header.Set("If-Modified-Since", c.lastModified)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eop: fetching finals file: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotModified:
		return nil, ErrNotModified
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("eop: %s returned status %d", c.url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("eop: reading finals file: %w", err)
	}
	c.lastModified = resp.Header.Get("Last-Modified")
	return body, nil
}
