package varsom

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientFetch(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(forecastPayload))
	}))
	t.Cleanup(server.Close)
	client := NewClient(testLogger()).WithBaseURL(server.URL)

	from, to := regobs.NewDate(2021, 3, 14), regobs.NewDate(2021, 3, 15)
	timeline, err := client.Fetch(context.Background(), 3022, from, to)
	require.NoError(t, err)

	assert.Equal(t, "/AvalancheWarningByRegion/Detail/3022/1/2021-03-14/2021-03-15", path)
	require.Equal(t, 1, timeline.Forecasts.Len())
	forecast, ok := timeline.Forecasts.Get(regobs.NewDate(2021, 3, 14))
	require.True(t, ok)
	assert.Equal(t, regobs.DangerLevel(3), forecast.DangerLevel)
}

func TestClientFetchLanguage(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)
	client := NewClient(testLogger()).WithBaseURL(server.URL).WithLanguage(English)

	from := regobs.NewDate(2021, 3, 14)
	_, err := client.Fetch(context.Background(), 3022, from, from)
	require.NoError(t, err)
	assert.Equal(t, "/AvalancheWarningByRegion/Detail/3022/2/2021-03-14/2021-03-14", path)
}

func TestClientFetchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)
	client := NewClient(testLogger()).WithBaseURL(server.URL)

	from := regobs.NewDate(2021, 3, 14)
	_, err := client.Fetch(context.Background(), 3022, from, from)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestClientFetchAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(forecastPayload))
	}))
	t.Cleanup(server.Close)
	client := NewClient(testLogger()).WithBaseURL(server.URL)

	from, to := regobs.NewDate(2021, 3, 14), regobs.NewDate(2021, 3, 15)
	product, err := client.FetchAll(context.Background(), []region.SnowRegion{3022, 3032}, from, to)
	require.NoError(t, err)

	// Each fetch keeps only the requested region's timeline.
	require.Equal(t, 2, product.Regions.Len())
	for _, reg := range []region.SnowRegion{3022, 3032} {
		timeline, ok := product.Regions.Get(reg)
		require.True(t, ok, "region %d", reg)
		actual, err := timeline.Region()
		require.NoError(t, err)
		assert.Equal(t, reg, actual)
	}
}
