package regobs

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestSnowLayerWireUnits(t *testing.T) {
	layer := SnowLayer{
		ThicknessCm:      35,
		Hardness:         ptr(FourFingers),
		GrainFormPrimary: ptr(SH),
		GrainSizeMm:      ptr(GrainSize(2.0)),
	}
	payload, err := json.Marshal(layer)
	if err != nil {
		t.Fatal(err)
	}
	var wire map[string]any
	if err := json.Unmarshal(payload, &wire); err != nil {
		t.Fatal(err)
	}
	if wire["Thickness"] != 0.35 {
		t.Errorf("Thickness = %v, want 0.35 m", wire["Thickness"])
	}
	if wire["GrainSizeAvg"] != 0.02 {
		t.Errorf("GrainSizeAvg = %v, want 0.02", wire["GrainSizeAvg"])
	}

	var out SnowLayer
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatal(err)
	}
	if out.ThicknessCm != 35 {
		t.Errorf("ThicknessCm = %v, want 35", out.ThicknessCm)
	}
	if out.GrainSizeMm == nil || *out.GrainSizeMm != 2.0 {
		t.Errorf("GrainSizeMm = %v, want 2.0", out.GrainSizeMm)
	}
}

func TestSnowProfileDensityNesting(t *testing.T) {
	profile := SnowProfile{
		Layers:    []SnowLayer{{ThicknessCm: 20, Hardness: ptr(Fist)}},
		Densities: []SnowDensity{{ThicknessCm: 30, DensityKgPerM3: 220}},
	}
	payload, err := json.Marshal(profile)
	if err != nil {
		t.Fatal(err)
	}

	// The density list is wrapped in a one-element list of layer
	// lists on the wire.
	if !strings.Contains(string(payload), `"SnowDensity":[{"Layers":[`) {
		t.Errorf("payload = %s", payload)
	}

	var out SnowProfile
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Densities) != 1 || out.Densities[0].DensityKgPerM3 != 220 {
		t.Errorf("Densities = %+v", out.Densities)
	}
	if len(out.Layers) != 1 || out.Layers[0].ThicknessCm != 20 {
		t.Errorf("Layers = %+v", out.Layers)
	}
}

func TestSnowProfileOmitsEmptyDensity(t *testing.T) {
	profile := SnowProfile{Layers: []SnowLayer{{ThicknessCm: 10}}}
	payload, err := json.Marshal(profile)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(payload), "SnowDensity") {
		t.Errorf("empty density list must be omitted: %s", payload)
	}
}

func TestSnowProfileValidation(t *testing.T) {
	reg := newTestRegistration(t)

	if err := reg.SetSnowProfile(SnowProfile{}); !errors.Is(err, ErrNoObservation) {
		t.Errorf("expected ErrNoObservation, got %v", err)
	}
	warm := SnowProfile{Temperatures: []SnowTemp{{DepthCm: 10, TempC: 1.5}}}
	if err := reg.SetSnowProfile(warm); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for above-freezing snow, got %v", err)
	}
	ok := SnowProfile{Temperatures: []SnowTemp{{DepthCm: 10, TempC: -2.5}}}
	if err := reg.SetSnowProfile(ok); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
