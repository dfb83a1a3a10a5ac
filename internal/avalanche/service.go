package avalanche

import (
	"context"
	"fmt"
	"log/slog"

	"snowreg/internal/regobs"
	"snowreg/internal/region"
	"snowreg/internal/varsom"
)

// ForecastProvider downloads published forecasts for a set of regions.
type ForecastProvider interface {
	FetchAll(ctx context.Context, regions []region.SnowRegion, from, to regobs.Date) (*varsom.SnowVarsom, error)
}

// Service provides avalanche forecast data.
type Service interface {
	GetForecasts(ctx context.Context, reg region.SnowRegion, from, to regobs.Date) ([]varsom.Forecast, error)
	GetDangerLevels(ctx context.Context, regions []region.SnowRegion, from, to regobs.Date) (*varsom.SnowVarsom, error)
}

type avalancheService struct {
	provider ForecastProvider
	logger   *slog.Logger
}

// NewAvalancheService creates a new avalanche service with a real
// forecast client.
func NewAvalancheService(logger *slog.Logger) Service {
	return NewAvalancheServiceWithProvider(logger, varsom.NewClient(logger))
}

// NewAvalancheServiceWithProvider creates a new avalanche service with
// a custom provider. This is useful for testing with mock providers.
func NewAvalancheServiceWithProvider(logger *slog.Logger, provider ForecastProvider) Service {
	return &avalancheService{
		provider: provider,
		logger:   logger.With("component", "avalanche-service"),
	}
}

// GetForecasts retrieves the forecasts of one region over [from, to],
// in date order.
func (s *avalancheService) GetForecasts(ctx context.Context, reg region.SnowRegion, from, to regobs.Date) ([]varsom.Forecast, error) {
	if !reg.Valid() {
		return nil, fmt.Errorf("unknown forecast region %d", reg)
	}
	s.logger.Debug("getting forecasts", "region", int(reg), "from", string(from), "to", string(to))

	product, err := s.provider.FetchAll(ctx, []region.SnowRegion{reg}, from, to)
	if err != nil {
		s.logger.Error("failed to get forecasts", "region", int(reg), "error", err)
		return nil, fmt.Errorf("failed to get forecasts: %w", err)
	}

	timeline, ok := product.Regions.Get(reg)
	if !ok {
		return nil, nil
	}
	forecasts := timeline.Forecasts.Values()
	s.logger.Debug("got forecasts", "region", int(reg), "days", len(forecasts))
	return forecasts, nil
}

// GetDangerLevels retrieves the forecasts of several regions, keeping
// the grouped product for tabulation.
func (s *avalancheService) GetDangerLevels(ctx context.Context, regions []region.SnowRegion, from, to regobs.Date) (*varsom.SnowVarsom, error) {
	for _, reg := range regions {
		if !reg.Valid() {
			return nil, fmt.Errorf("unknown forecast region %d", reg)
		}
	}
	product, err := s.provider.FetchAll(ctx, regions, from, to)
	if err != nil {
		s.logger.Error("failed to get danger levels", "error", err)
		return nil, fmt.Errorf("failed to get danger levels: %w", err)
	}
	return product, nil
}
