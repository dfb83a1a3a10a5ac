package aps

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

const baseURL = "https://h-web02.nve.no/APSapi/TimeSeriesReader.svc"

// Client downloads weather time series, one parameter and region per
// request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient builds a client against the public endpoint.
func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
		logger:     logger.With("component", "aps_client"),
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

// Fetch downloads one parameter for one region over [from, to] and
// decodes it into a timeline.
func (c *Client) Fetch(ctx context.Context, reg region.SnowRegion, param Param, from, to regobs.Date) (Timeline, error) {
	url := fmt.Sprintf("%s/MountainWeather/%d/%d/%s/%s", c.baseURL, reg, param, from, to)
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
	timeline, err := DeserializeTimeline(payload, param)
	if err != nil {
		return Timeline{}, err
	}
	c.logger.Debug("fetched weather parameter", "region", int(reg), "param", param.String(), "days", timeline.Days.Len())
	return timeline, nil
}

// FetchAll downloads every parameter for the given regions and merges
// them into one product.
func (c *Client) FetchAll(ctx context.Context, regions []region.SnowRegion, from, to regobs.Date) (*Aps, error) {
	product := New()
	for _, reg := range regions {
		merged := NewTimeline()
		for _, param := range Params {
			timeline, err := c.Fetch(ctx, reg, param, from, to)
			if err != nil {
				return nil, fmt.Errorf("fetch %s for region %d: %w", param, reg, err)
			}
			merged, err = merged.Assimilate(timeline)
			if err != nil {
				return nil, fmt.Errorf("merge %s for region %d: %w", param, reg, err)
			}
		}
		if !merged.Empty() {
			product.Regions.Set(reg, merged)
		}
	}
	return product, nil
}
