//go:build integration

package varsom

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"snowreg/internal/regobs"
)

func TestClientFetch_Integration(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	client := NewClient(logger)

	// Trollheimen, last week.
	to := regobs.DateOf(time.Now())
	from := to.Add(-7)
	timeline, err := client.Fetch(context.Background(), 3022, from, to)
	if err != nil {
		t.Fatalf("Failed to fetch forecasts: %v", err)
	}

	t.Logf("Forecasts for region 3022, %s to %s: %d days", from, to, timeline.Forecasts.Len())
	for _, date := range timeline.Forecasts.Keys() {
		forecast, _ := timeline.Forecasts.Get(date)
		t.Logf("  %s: danger level %d, %d problems", date, forecast.DangerLevel, len(forecast.Problems))
		for _, p := range forecast.Problems {
			if p.Type != nil {
				t.Logf("    %s", *p.Type)
			}
		}
	}
}
