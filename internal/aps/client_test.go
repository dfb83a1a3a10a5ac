package aps

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testAPSServer serves the wind envelope for the wind parameter and the
// temperature envelope for everything else. The decoder slots data by
// the requested parameter, so one body serves all scalar downloads.
func testAPSServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		if len(parts) != 6 || parts[1] != "MountainWeather" {
			http.NotFound(w, r)
			return
		}
		param, err := strconv.Atoi(parts[3])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if Param(param) == Wind {
			_, _ = w.Write([]byte(windPayload))
			return
		}
		_, _ = w.Write([]byte(tempPayload))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClientFetch(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(tempPayload))
	}))
	t.Cleanup(server.Close)
	client := NewClient(testLogger()).WithBaseURL(server.URL)

	from, to := regobs.NewDate(2021, 3, 14), regobs.NewDate(2021, 3, 15)
	timeline, err := client.Fetch(context.Background(), 3022, Temp, from, to)
	require.NoError(t, err)

	assert.Equal(t, "/MountainWeather/3022/17/2021-03-14/2021-03-15", path)
	require.Equal(t, 1, timeline.Days.Len())
}

func TestClientFetchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	}))
	t.Cleanup(server.Close)
	client := NewClient(testLogger()).WithBaseURL(server.URL)

	from := regobs.NewDate(2021, 3, 14)
	_, err := client.Fetch(context.Background(), 3022, Temp, from, from)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 504")
}

func TestClientFetchAll(t *testing.T) {
	server := testAPSServer(t)
	client := NewClient(testLogger()).WithBaseURL(server.URL)

	from, to := regobs.NewDate(2021, 3, 14), regobs.NewDate(2021, 3, 15)
	product, err := client.FetchAll(context.Background(), []region.SnowRegion{3022}, from, to)
	require.NoError(t, err)
	require.Equal(t, 1, product.Regions.Len())

	timeline, ok := product.Regions.Get(3022)
	require.True(t, ok)
	assert.Equal(t, 900, timeline.Treeline)

	day, ok := timeline.Days.Get(regobs.NewDate(2021, 3, 15))
	require.True(t, ok)
	// The scalar parameters all land on the same levels, wind is
	// rebanded onto them.
	require.Len(t, day.Levels, 2)
	for _, p := range Params {
		assert.False(t, day.Levels[0].Data(p).Empty(), "param %s", p)
	}
}
