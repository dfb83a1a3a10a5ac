package varsom

import (
	"encoding/json"
	"fmt"

	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

// naturalWarning is the phrase the service uses when naturally
// triggered avalanches are expected.
const naturalWarning = "Naturlig utløste skred"

type forecastWire struct {
	RegionID          json.Number   `json:"RegionId"`
	RegionTypeName    string        `json:"RegionTypeName"`
	ValidFrom         string        `json:"ValidFrom"`
	DangerLevel       json.Number   `json:"DangerLevel"`
	EmergencyWarning  string        `json:"EmergencyWarning"`
	AvalancheProblems []problemWire `json:"AvalancheProblems"`
}

type problemWire struct {
	TypeID         int    `json:"AvalancheProblemTypeId"`
	SizeID         int    `json:"DestructiveSizeId"`
	SensitivityID  int    `json:"AvalTriggerSensitivityId"`
	PropagationID  int    `json:"AvalPropagationId"`
	Expositions    string `json:"ValidExpositions"`
	ExposedHeight1 int    `json:"ExposedHeight1"`
	ExposedHeight2 int    `json:"ExposedHeight2"`
	ExposedHeight  int    `json:"ExposedHeightFill"`
}

func (w forecastWire) dangerLevel() regobs.DangerLevel {
	n, err := w.DangerLevel.Int64()
	if err != nil {
		return 0
	}
	return regobs.DangerLevel(n)
}

func (w forecastWire) region() (region.SnowRegion, error) {
	n, err := w.RegionID.Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to parse region id: %w", err)
	}
	return region.SnowRegion(n), nil
}

func (w forecastWire) forecast() (Forecast, error) {
	reg, err := w.region()
	if err != nil {
		return Forecast{}, err
	}
	f := Forecast{
		Region:        reg,
		PrimaryRegion: w.RegionTypeName == "A",
		DangerLevel:   w.dangerLevel(),
	}
	if len(w.ValidFrom) >= 10 {
		f.Date = regobs.Date(w.ValidFrom[:10])
	}
	if w.EmergencyWarning != "" {
		warning := w.EmergencyWarning == naturalWarning
		f.EmergencyWarning = &warning
	}
	for _, p := range w.AvalancheProblems {
		f.Problems = append(f.Problems, p.problem())
	}
	return f, nil
}

func (w problemWire) problem() Problem {
	var p Problem
	if w.TypeID != 0 {
		t := ProblemType(w.TypeID)
		if t == legacyDeepPWLSlab {
			t = PWLSlab
		}
		p.Type = &t
	}
	if w.SizeID != 0 {
		size := regobs.DestructiveSize(w.SizeID)
		p.Size = &size
	}
	p.Sensitivity = normalizeSensitivity(w.SensitivityID)
	if w.PropagationID != 0 {
		dist := regobs.Distribution(w.PropagationID)
		p.Distribution = &dist
	}
	if exp, err := regobs.ParseExpositions(w.Expositions); err == nil {
		p.Expositions = &exp
	}
	p.Elevation = w.elevation()
	return p
}

func (w problemWire) elevation() *regobs.Elevation {
	var format *regobs.ElevationFormat
	var elevMax, elevMin *int
	if w.ExposedHeight != 0 {
		f := regobs.ElevationFormat(w.ExposedHeight)
		format = &f
	}
	h1, h2 := w.ExposedHeight1, w.ExposedHeight2
	elevMax, elevMin = &h1, &h2
	return regobs.ReceivedElevation(format, elevMax, elevMin)
}

// Deserialize decodes a full forecast payload, grouping forecasts per
// region. Days without a danger level are dropped.
func Deserialize(payload []byte) (*SnowVarsom, error) {
	var wires []forecastWire
	if err := json.Unmarshal(payload, &wires); err != nil {
		return nil, fmt.Errorf("failed to parse forecast payload: %w", err)
	}
	varsom := New()
	for _, w := range wires {
		if w.dangerLevel() == 0 {
			continue
		}
		forecast, err := w.forecast()
		if err != nil {
			return nil, err
		}
		timeline, ok := varsom.Regions.Get(forecast.Region)
		if !ok {
			timeline = NewTimeline()
		}
		timeline.Forecasts.Set(forecast.Date, forecast)
		varsom.Regions.Set(forecast.Region, timeline)
	}
	return varsom, nil
}
