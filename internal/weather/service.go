package weather

import (
	"context"
	"fmt"
	"log/slog"

	"snowreg/internal/aps"
	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

// TimeSeriesProvider downloads gridded weather products for a set of
// regions.
type TimeSeriesProvider interface {
	FetchAll(ctx context.Context, regions []region.SnowRegion, from, to regobs.Date) (*aps.Aps, error)
}

// Service provides regional mountain weather data.
type Service interface {
	GetWeather(ctx context.Context, regions []region.SnowRegion, from, to regobs.Date) (*aps.Aps, error)
	GetTimeline(ctx context.Context, reg region.SnowRegion, from, to regobs.Date) (aps.Timeline, error)
}

type weatherService struct {
	provider TimeSeriesProvider
	logger   *slog.Logger
}

// NewWeatherService creates a new weather service with a real time
// series client.
func NewWeatherService(logger *slog.Logger) Service {
	return NewWeatherServiceWithProvider(logger, aps.NewClient(logger))
}

// NewWeatherServiceWithProvider creates a new weather service with a
// custom provider. This is useful for testing with mock providers.
func NewWeatherServiceWithProvider(logger *slog.Logger, provider TimeSeriesProvider) Service {
	return &weatherService{
		provider: provider,
		logger:   logger.With("component", "weather-service"),
	}
}

// GetWeather retrieves every weather parameter for the given regions
// over [from, to], merged into one product.
func (s *weatherService) GetWeather(ctx context.Context, regions []region.SnowRegion, from, to regobs.Date) (*aps.Aps, error) {
	for _, reg := range regions {
		if !reg.Valid() {
			return nil, fmt.Errorf("unknown forecast region %d", reg)
		}
	}
	s.logger.Debug("getting weather", "regions", len(regions), "from", string(from), "to", string(to))

	product, err := s.provider.FetchAll(ctx, regions, from, to)
	if err != nil {
		s.logger.Error("failed to get weather", "error", err)
		return nil, fmt.Errorf("failed to get weather: %w", err)
	}
	return product, nil
}

// GetTimeline retrieves one region's merged weather timeline.
func (s *weatherService) GetTimeline(ctx context.Context, reg region.SnowRegion, from, to regobs.Date) (aps.Timeline, error) {
	product, err := s.GetWeather(ctx, []region.SnowRegion{reg}, from, to)
	if err != nil {
		return aps.Timeline{}, err
	}
	timeline, ok := product.Regions.Get(reg)
	if !ok {
		return aps.NewTimeline(), nil
	}
	return timeline, nil
}
