package avalanche

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"snowreg/internal/regobs"
	"snowreg/internal/region"
	"snowreg/internal/varsom"
)

type mockProvider struct {
	product *varsom.SnowVarsom
	err     error

	regions []region.SnowRegion
	from    regobs.Date
	to      regobs.Date
}

func (m *mockProvider) FetchAll(ctx context.Context, regions []region.SnowRegion, from, to regobs.Date) (*varsom.SnowVarsom, error) {
	m.regions = regions
	m.from = from
	m.to = to
	if m.err != nil {
		return nil, m.err
	}
	return m.product, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProduct(reg region.SnowRegion, dates ...regobs.Date) *varsom.SnowVarsom {
	timeline := varsom.NewTimeline()
	for _, date := range dates {
		timeline.Forecasts.Set(date, varsom.Forecast{Region: reg, Date: date, DangerLevel: 2})
	}
	product := varsom.New()
	product.Regions.Set(reg, timeline)
	return product
}

func TestGetForecasts(t *testing.T) {
	from, to := regobs.NewDate(2021, 3, 14), regobs.NewDate(2021, 3, 16)
	provider := &mockProvider{product: testProduct(3022, from, from.Add(1), from.Add(2))}
	svc := NewAvalancheServiceWithProvider(testLogger(), provider)

	forecasts, err := svc.GetForecasts(context.Background(), 3022, from, to)
	if err != nil {
		t.Fatal(err)
	}

	if len(forecasts) != 3 {
		t.Fatalf("got %d forecasts, want 3", len(forecasts))
	}
	if forecasts[0].Date != from {
		t.Errorf("first date = %s", forecasts[0].Date)
	}
	if len(provider.regions) != 1 || provider.regions[0] != 3022 {
		t.Errorf("provider called with regions %v", provider.regions)
	}
	if provider.from != from || provider.to != to {
		t.Errorf("provider called with %s..%s", provider.from, provider.to)
	}
}

func TestGetForecastsUnknownRegion(t *testing.T) {
	provider := &mockProvider{product: varsom.New()}
	svc := NewAvalancheServiceWithProvider(testLogger(), provider)

	from := regobs.NewDate(2021, 3, 14)
	if _, err := svc.GetForecasts(context.Background(), 1234, from, from); err == nil {
		t.Error("expected an error for an unknown region")
	}
	if provider.regions != nil {
		t.Error("provider should not be called for an unknown region")
	}
}

func TestGetForecastsNoData(t *testing.T) {
	provider := &mockProvider{product: varsom.New()}
	svc := NewAvalancheServiceWithProvider(testLogger(), provider)

	from := regobs.NewDate(2021, 3, 14)
	forecasts, err := svc.GetForecasts(context.Background(), 3022, from, from)
	if err != nil {
		t.Fatal(err)
	}
	if forecasts != nil {
		t.Errorf("forecasts = %v, want nil", forecasts)
	}
}

func TestGetForecastsProviderError(t *testing.T) {
	provider := &mockProvider{err: errors.New("upstream down")}
	svc := NewAvalancheServiceWithProvider(testLogger(), provider)

	from := regobs.NewDate(2021, 3, 14)
	if _, err := svc.GetForecasts(context.Background(), 3022, from, from); err == nil {
		t.Error("expected the provider error to propagate")
	}
}

func TestGetDangerLevels(t *testing.T) {
	from := regobs.NewDate(2021, 3, 14)
	provider := &mockProvider{product: testProduct(3022, from)}
	svc := NewAvalancheServiceWithProvider(testLogger(), provider)

	regions := []region.SnowRegion{3022, 3023}
	product, err := svc.GetDangerLevels(context.Background(), regions, from, from)
	if err != nil {
		t.Fatal(err)
	}
	if product.Empty() {
		t.Error("product is empty")
	}
	if len(provider.regions) != 2 {
		t.Errorf("provider called with regions %v", provider.regions)
	}

	if _, err := svc.GetDangerLevels(context.Background(), []region.SnowRegion{3022, 1234}, from, from); err == nil {
		t.Error("expected an error for an unknown region in the set")
	}
}
