//go:build integration

package aps

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

func TestClientFetchAll_Integration(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	client := NewClient(logger)

	// Trollheimen, the last three days.
	to := regobs.DateOf(time.Now())
	from := to.Add(-3)
	product, err := client.FetchAll(context.Background(), []region.SnowRegion{3022}, from, to)
	if err != nil {
		t.Fatalf("Failed to fetch weather data: %v", err)
	}

	timeline, ok := product.Regions.Get(3022)
	if !ok {
		t.Fatal("No timeline for region 3022")
	}
	t.Logf("Weather for region 3022, %s to %s: %d days, treeline %d m",
		from, to, timeline.Days.Len(), timeline.Treeline)
	for _, date := range timeline.Days.Keys() {
		day, _ := timeline.Days.Get(date)
		t.Logf("  %s: %d levels", day.Date, len(day.Levels))
		for _, l := range day.Levels {
			temp := l.Data(Temp)
			if temp != nil && temp.Percs[3] != nil {
				t.Logf("    %s m: median temp %.1f", l.Name(), *temp.Percs[3])
			}
		}
	}
}
