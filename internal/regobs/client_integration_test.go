//go:build integration

package regobs

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestSearch_Integration(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	conn := NewConnection(true, logger)

	from := time.Now().AddDate(0, 0, -7)
	search := conn.Search(SearchCriteria{
		ObservationTypes: []ObservationType{TypeDangerSign},
		FromObsTime:      &from,
	})

	count, err := search.Count(context.Background())
	if err != nil {
		t.Fatalf("Failed to count registrations: %v", err)
	}
	t.Logf("Danger sign registrations in the last week: %d", count)

	for i := 0; i < 5; i++ {
		reg, err := search.Next(context.Background())
		if err != nil {
			t.Fatalf("Failed to fetch registration: %v", err)
		}
		if reg == nil {
			break
		}
		id := 0
		if reg.ID != nil {
			id = *reg.ID
		}
		nickname := ""
		if reg.Observer != nil {
			nickname = reg.Observer.Nickname
		}
		t.Logf("  %d %s %s: %d danger signs", id, reg.ObsTime.Format(time.RFC3339), nickname, len(reg.DangerSigns))
	}
}
