package varsom

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

const baseURL = "https://api01.nve.no/hydrology/forecast/avalanche/v6.1.0/api"

// Language selects the forecast text language.
type Language int

const (
	Norwegian Language = 1
	English   Language = 2
)

// Client downloads published avalanche forecasts.
type Client struct {
	httpClient *http.Client
	baseURL    string
	language   Language
	logger     *slog.Logger
}

// NewClient builds a client against the public endpoint.
func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
		language:   Norwegian,
		logger:     logger.With("component", "varsom_client"),
	}
}

// WithBaseURL overrides the endpoint.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = url
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// WithLanguage sets the forecast text language.
func (c *Client) WithLanguage(language Language) *Client {
	c.language = language
	return c
}

// Fetch downloads one region's forecasts over [from, to].
func (c *Client) Fetch(ctx context.Context, reg region.SnowRegion, from, to regobs.Date) (Timeline, error) {
	url := fmt.Sprintf("%s/AvalancheWarningByRegion/Detail/%d/%d/%s/%s", c.baseURL, reg, c.language, from, to)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Timeline{}, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Timeline{}, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Timeline{}, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Timeline{}, fmt.Errorf("failed to read response: %w", err)
	}
	varsom, err := Deserialize(payload)
	if err != nil {
		return Timeline{}, err
	}
	timeline, ok := varsom.Regions.Get(reg)
	if !ok {
		timeline = NewTimeline()
	}
	c.logger.Debug("fetched forecasts", "region", int(reg), "days", timeline.Forecasts.Len())
	return timeline, nil
}

// FetchAll downloads forecasts for the given regions and merges them
// into one product.
func (c *Client) FetchAll(ctx context.Context, regions []region.SnowRegion, from, to regobs.Date) (*SnowVarsom, error) {
	product := New()
	for _, reg := range regions {
		timeline, err := c.Fetch(ctx, reg, from, to)
		if err != nil {
			return nil, fmt.Errorf("fetch forecasts for region %d: %w", reg, err)
		}
		if !timeline.Empty() {
			product.Regions.Set(reg, timeline)
		}
	}
	return product, nil
}
