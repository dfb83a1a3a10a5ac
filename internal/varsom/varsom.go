// Package varsom models the published avalanche forecasts: per-region
// timelines of daily danger levels and avalanche problems.
package varsom

import (
	"errors"
	"fmt"

	"snowreg/internal/ordered"
	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

// ErrNoRegion is returned when an empty timeline is asked for its
// region.
var ErrNoRegion = errors.New("no forecasts to find region from")

// ProblemType is the avalanche problem vocabulary of the forecasts.
type ProblemType int

const (
	NewLoose  ProblemType = 3
	WetLoose  ProblemType = 5
	NewSlab   ProblemType = 7
	WindSlab  ProblemType = 10
	PWLSlab   ProblemType = 30
	WetSlab   ProblemType = 45
	GlideSlab ProblemType = 50
)

// legacyDeepPWLSlab is a retired problem type folded into PWLSlab.
const legacyDeepPWLSlab ProblemType = 37

// ProblemTypes lists the current vocabulary in wire-code order.
var ProblemTypes = []ProblemType{NewLoose, WetLoose, NewSlab, WindSlab, PWLSlab, WetSlab, GlideSlab}

func (t ProblemType) String() string {
	switch t {
	case NewLoose:
		return "new_loose"
	case WetLoose:
		return "wet_loose"
	case NewSlab:
		return "new_slab"
	case WindSlab:
		return "wind_slab"
	case PWLSlab:
		return "pwl_slab"
	case WetSlab:
		return "wet_slab"
	case GlideSlab:
		return "glide_slab"
	}
	return fmt.Sprintf("ProblemType(%d)", int(t))
}

// Sensitivity is the triggering sensitivity vocabulary of the
// forecasts. It differs from the registration vocabulary.
type Sensitivity int

const (
	VeryDifficult Sensitivity = 10
	Difficult     Sensitivity = 20
	Easy          Sensitivity = 30
	VeryEasy      Sensitivity = 40
	Spontaneous   Sensitivity = 45
)

// normalizeSensitivity folds retired wire codes into the current
// vocabulary. Zero means not given.
func normalizeSensitivity(code int) *Sensitivity {
	switch code {
	case 0:
		return nil
	case 35, 50, 60, 70, 80:
		s := Spontaneous
		return &s
	}
	s := Sensitivity(code)
	return &s
}

// Problem is one avalanche problem of a forecast.
type Problem struct {
	Type         *ProblemType
	Size         *regobs.DestructiveSize
	Sensitivity  *Sensitivity
	Distribution *regobs.Distribution
	Expositions  *regobs.Expositions
	Elevation    *regobs.Elevation
}

// ElevationBand resolves the problem's elevation band against a
// region roof, returning the covered [min, max] range.
func (p Problem) ElevationBand(roof int) (elevMin, elevMax *int) {
	if p.Elevation == nil {
		return nil, nil
	}
	zero := 0
	switch p.Elevation.Format {
	case regobs.Above:
		lo := p.Elevation.ElevMax
		return &lo, &roof
	case regobs.Below:
		hi := p.Elevation.ElevMax
		return &zero, &hi
	case regobs.Sandwich:
		return &zero, &roof
	case regobs.Middle:
		return p.Elevation.ElevMin, &p.Elevation.ElevMax
	}
	return nil, nil
}

// Forecast is the published forecast of one region and day.
type Forecast struct {
	Region region.SnowRegion
	// PrimaryRegion reports whether the region gets daily forecasts
	// through the season.
	PrimaryRegion bool
	Date          regobs.Date

	DangerLevel      regobs.DangerLevel
	EmergencyWarning *bool
	Problems         []Problem
}

// Empty reports whether the forecast carries no danger level.
func (f Forecast) Empty() bool {
	return f.DangerLevel == 0
}

// Assimilate merges two forecasts for the same slot; the receiver
// wins when both are present.
func (f Forecast) Assimilate(other Forecast) (Forecast, error) {
	if f.Empty() {
		return other, nil
	}
	return f, nil
}

// Timeline is the ordered forecasts of one region, keyed by date.
type Timeline struct {
	Forecasts *ordered.Map[regobs.Date, Forecast]
}

// NewTimeline builds an empty timeline.
func NewTimeline() Timeline {
	return Timeline{Forecasts: ordered.New[regobs.Date, Forecast]()}
}

// Empty reports whether the timeline has no non-empty forecasts.
func (t Timeline) Empty() bool {
	if t.Forecasts == nil {
		return true
	}
	for _, f := range t.Forecasts.Values() {
		if !f.Empty() {
			return false
		}
	}
	return true
}

// Region returns the region the timeline's forecasts belong to.
func (t Timeline) Region() (region.SnowRegion, error) {
	if t.Forecasts == nil || t.Forecasts.Len() == 0 {
		return 0, ErrNoRegion
	}
	return t.Forecasts.Values()[0].Region, nil
}

// Assimilate merges two timelines date by date.
func (t Timeline) Assimilate(other Timeline) (Timeline, error) {
	forecasts := t.Forecasts
	if forecasts == nil {
		forecasts = ordered.New[regobs.Date, Forecast]()
	}
	otherForecasts := other.Forecasts
	if otherForecasts == nil {
		otherForecasts = ordered.New[regobs.Date, Forecast]()
	}
	merged, err := forecasts.Assimilate(otherForecasts)
	if err != nil {
		return Timeline{}, err
	}
	return Timeline{Forecasts: merged}, nil
}

// Slice bounds the timeline to [start, end). Nil bounds are open.
func (t Timeline) Slice(start, end *regobs.Date) Timeline {
	if t.Forecasts == nil {
		return NewTimeline()
	}
	return Timeline{Forecasts: t.Forecasts.Slice(start, end)}
}

// SnowVarsom is the full forecast product: one timeline per region.
type SnowVarsom struct {
	Regions *ordered.Map[region.SnowRegion, Timeline]
}

// New builds an empty product.
func New() *SnowVarsom {
	return &SnowVarsom{Regions: ordered.New[region.SnowRegion, Timeline]()}
}

// Empty reports whether no region has forecasts.
func (v *SnowVarsom) Empty() bool {
	if v == nil || v.Regions == nil {
		return true
	}
	for _, t := range v.Regions.Values() {
		if !t.Empty() {
			return false
		}
	}
	return true
}

// Assimilate merges two products region by region into a new one.
func (v *SnowVarsom) Assimilate(other *SnowVarsom) (*SnowVarsom, error) {
	regions, err := v.Regions.Assimilate(other.Regions)
	if err != nil {
		return nil, err
	}
	return &SnowVarsom{Regions: regions}, nil
}

// Slice bounds every timeline to [start, end). Nil bounds are open.
func (v *SnowVarsom) Slice(start, end *regobs.Date) *SnowVarsom {
	out := New()
	for _, r := range v.Regions.Keys() {
		t, _ := v.Regions.Get(r)
		sliced := t.Slice(start, end)
		if !sliced.Empty() {
			out.Regions.Set(r, sliced)
		}
	}
	return out
}

// Select keeps only the given regions.
func (v *SnowVarsom) Select(regions []region.SnowRegion) *SnowVarsom {
	return &SnowVarsom{Regions: v.Regions.Select(regions)}
}
