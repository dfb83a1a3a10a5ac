package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"snowreg/internal/aps"
	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

type mockProvider struct {
	product *aps.Aps
	err     error

	regions []region.SnowRegion
}

func (m *mockProvider) FetchAll(ctx context.Context, regions []region.SnowRegion, from, to regobs.Date) (*aps.Aps, error) {
	m.regions = regions
	if m.err != nil {
		return nil, m.err
	}
	return m.product, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProduct(reg region.SnowRegion, dates ...regobs.Date) *aps.Aps {
	timeline := aps.NewTimeline()
	for _, date := range dates {
		temp := -4.5
		data := &aps.Data{}
		data.Percs[3] = &temp
		timeline.Days.Set(date, aps.Day{
			Date:   date,
			Region: reg,
			Levels: []aps.Level{{Floor: 0, Roof: 600, Index: 1, Temp: data}},
		})
	}
	product := aps.New()
	product.Regions.Set(reg, timeline)
	return product
}

func TestGetWeather(t *testing.T) {
	from := regobs.NewDate(2021, 3, 14)
	provider := &mockProvider{product: testProduct(3022, from)}
	svc := NewWeatherServiceWithProvider(testLogger(), provider)

	product, err := svc.GetWeather(context.Background(), []region.SnowRegion{3022, 3023}, from, from)
	if err != nil {
		t.Fatal(err)
	}
	if product.Empty() {
		t.Error("product is empty")
	}
	if len(provider.regions) != 2 {
		t.Errorf("provider called with regions %v", provider.regions)
	}
}

func TestGetWeatherUnknownRegion(t *testing.T) {
	provider := &mockProvider{product: aps.New()}
	svc := NewWeatherServiceWithProvider(testLogger(), provider)

	from := regobs.NewDate(2021, 3, 14)
	if _, err := svc.GetWeather(context.Background(), []region.SnowRegion{1234}, from, from); err == nil {
		t.Error("expected an error for an unknown region")
	}
	if provider.regions != nil {
		t.Error("provider should not be called for an unknown region")
	}
}

func TestGetWeatherProviderError(t *testing.T) {
	provider := &mockProvider{err: errors.New("upstream down")}
	svc := NewWeatherServiceWithProvider(testLogger(), provider)

	from := regobs.NewDate(2021, 3, 14)
	if _, err := svc.GetWeather(context.Background(), []region.SnowRegion{3022}, from, from); err == nil {
		t.Error("expected the provider error to propagate")
	}
}

func TestGetTimeline(t *testing.T) {
	from := regobs.NewDate(2021, 3, 14)
	provider := &mockProvider{product: testProduct(3022, from, from.Add(1))}
	svc := NewWeatherServiceWithProvider(testLogger(), provider)

	timeline, err := svc.GetTimeline(context.Background(), 3022, from, from.Add(1))
	if err != nil {
		t.Fatal(err)
	}
	if timeline.Days.Len() != 2 {
		t.Errorf("got %d days, want 2", timeline.Days.Len())
	}
}

func TestGetTimelineNoData(t *testing.T) {
	provider := &mockProvider{product: aps.New()}
	svc := NewWeatherServiceWithProvider(testLogger(), provider)

	from := regobs.NewDate(2021, 3, 14)
	timeline, err := svc.GetTimeline(context.Background(), 3022, from, from)
	if err != nil {
		t.Fatal(err)
	}
	if timeline.Days == nil || timeline.Days.Len() != 0 {
		t.Errorf("timeline = %+v, want empty", timeline)
	}
}
