package regobs

import (
	"encoding/json"
	"fmt"
)

// SnowProfile is a dug snow profile with stratigraphy, temperatures
// and densities.
type SnowProfile struct {
	Layers       []SnowLayer
	Temperatures []SnowTemp
	Densities    []SnowDensity
	// IsProfileToGround reports whether the pit reached the ground.
	IsProfileToGround *bool
	Comment           string
}

func (p SnowProfile) validate() error {
	if len(p.Layers) == 0 && len(p.Temperatures) == 0 && len(p.Densities) == 0 && p.Comment == "" {
		return fmt.Errorf("%w: snow profile", ErrNoObservation)
	}
	for _, l := range p.Layers {
		if err := l.validate(); err != nil {
			return err
		}
	}
	for _, t := range p.Temperatures {
		if err := t.validate(); err != nil {
			return err
		}
	}
	for _, d := range p.Densities {
		if err := d.validate(); err != nil {
			return err
		}
	}
	return nil
}

// SnowLayer is a single layer of the stratigraphy, top down.
type SnowLayer struct {
	ThicknessCm      float64
	Hardness         *Hardness
	GrainFormPrimary *GrainForm
	GrainSizeMm      *GrainSize
	Wetness          *Wetness
	HardnessBottom   *Hardness
	GrainFormSec     *GrainForm
	GrainSizeMaxMm   *GrainSize
	CriticalLayer    *CriticalLayer
	Comment          string
}

func (l SnowLayer) validate() error {
	if l.ThicknessCm < 0 {
		return fmt.Errorf("%w: layer thickness %f cm", ErrInvalidRange, l.ThicknessCm)
	}
	return nil
}

type snowLayerWire struct {
	Thickness        *float64       `json:"Thickness,omitempty"`
	Hardness         *Hardness      `json:"HardnessTID,omitempty"`
	GrainFormPrimary *GrainForm     `json:"GrainFormPrimaryTID,omitempty"`
	GrainSizeAvg     *float64       `json:"GrainSizeAvg,omitempty"`
	Wetness          *Wetness       `json:"WetnessTID,omitempty"`
	HardnessBottom   *Hardness      `json:"HardnessBottomTID,omitempty"`
	GrainFormSec     *GrainForm     `json:"GrainFormSecondaryTID,omitempty"`
	GrainSizeAvgMax  *float64       `json:"GrainSizeAvgMax,omitempty"`
	CriticalLayer    *CriticalLayer `json:"CriticalLayerTID,omitempty"`
	Comment          *string        `json:"Comment,omitempty"`
}

func grainSizeToWire(g *GrainSize) *float64 {
	if g == nil {
		return nil
	}
	v := float64(*g) / 100
	return &v
}

func grainSizeFromWire(v *float64) *GrainSize {
	if v == nil {
		return nil
	}
	g := GrainSize(*v * 100)
	return &g
}

func (l SnowLayer) MarshalJSON() ([]byte, error) {
	thickness := l.ThicknessCm / 100
	w := snowLayerWire{
		Thickness:        &thickness,
		Hardness:         l.Hardness,
		GrainFormPrimary: l.GrainFormPrimary,
		GrainSizeAvg:     grainSizeToWire(l.GrainSizeMm),
		Wetness:          l.Wetness,
		HardnessBottom:   l.HardnessBottom,
		GrainFormSec:     l.GrainFormSec,
		GrainSizeAvgMax:  grainSizeToWire(l.GrainSizeMaxMm),
		CriticalLayer:    l.CriticalLayer,
	}
	if l.Comment != "" {
		w.Comment = &l.Comment
	}
	return json.Marshal(w)
}

func (l *SnowLayer) UnmarshalJSON(data []byte) error {
	var w snowLayerWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*l = SnowLayer{
		Hardness:         w.Hardness,
		GrainFormPrimary: w.GrainFormPrimary,
		GrainSizeMm:      grainSizeFromWire(w.GrainSizeAvg),
		Wetness:          w.Wetness,
		HardnessBottom:   w.HardnessBottom,
		GrainFormSec:     w.GrainFormSec,
		GrainSizeMaxMm:   grainSizeFromWire(w.GrainSizeAvgMax),
		CriticalLayer:    w.CriticalLayer,
	}
	if w.Thickness != nil {
		l.ThicknessCm = *w.Thickness * 100
	}
	if w.Comment != nil {
		l.Comment = *w.Comment
	}
	return nil
}

// SnowTemp is the snow temperature at a given depth from the surface.
type SnowTemp struct {
	DepthCm float64
	TempC   float64
}

func (t SnowTemp) validate() error {
	if t.TempC > 0 {
		return fmt.Errorf("%w: snow temperature %f above freezing", ErrInvalidRange, t.TempC)
	}
	return nil
}

type snowTempWire struct {
	Depth    *float64 `json:"Depth,omitempty"`
	SnowTemp float64  `json:"SnowTemp"`
}

func (t SnowTemp) MarshalJSON() ([]byte, error) {
	depth := t.DepthCm / 100
	return json.Marshal(snowTempWire{Depth: &depth, SnowTemp: t.TempC})
}

func (t *SnowTemp) UnmarshalJSON(data []byte) error {
	var w snowTempWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*t = SnowTemp{TempC: w.SnowTemp}
	if w.Depth != nil {
		t.DepthCm = *w.Depth * 100
	}
	return nil
}

// SnowDensity is the measured density of a sample layer.
type SnowDensity struct {
	ThicknessCm    float64
	DensityKgPerM3 float64
}

func (d SnowDensity) validate() error {
	if d.ThicknessCm < 0 {
		return fmt.Errorf("%w: density sample thickness %f cm", ErrInvalidRange, d.ThicknessCm)
	}
	return nil
}

type snowDensityWire struct {
	Thickness *float64 `json:"Thickness,omitempty"`
	Density   float64  `json:"Density"`
}

func (d SnowDensity) MarshalJSON() ([]byte, error) {
	thickness := d.ThicknessCm / 100
	return json.Marshal(snowDensityWire{Thickness: &thickness, Density: d.DensityKgPerM3})
}

func (d *SnowDensity) UnmarshalJSON(data []byte) error {
	var w snowDensityWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*d = SnowDensity{DensityKgPerM3: w.Density}
	if w.Thickness != nil {
		d.ThicknessCm = *w.Thickness * 100
	}
	return nil
}

type layerList[T any] struct {
	Layers []T `json:"Layers,omitempty"`
}

type snowProfileWire struct {
	StratProfile      *layerList[SnowLayer]    `json:"StratProfile,omitempty"`
	SnowTemp          *layerList[SnowTemp]     `json:"SnowTemp,omitempty"`
	SnowDensity       []layerList[SnowDensity] `json:"SnowDensity,omitempty"`
	IsProfileToGround *bool                    `json:"IsProfileToGround,omitempty"`
	Comment           *string                  `json:"Comment,omitempty"`
}

func (p SnowProfile) MarshalJSON() ([]byte, error) {
	w := snowProfileWire{
		StratProfile:      &layerList[SnowLayer]{Layers: p.Layers},
		SnowTemp:          &layerList[SnowTemp]{Layers: p.Temperatures},
		IsProfileToGround: p.IsProfileToGround,
	}
	// Densities nest one list deeper on the wire than the other
	// profile parts, and are dropped entirely when empty.
	if len(p.Densities) > 0 {
		w.SnowDensity = []layerList[SnowDensity]{{Layers: p.Densities}}
	}
	if p.Comment != "" {
		w.Comment = &p.Comment
	}
	return json.Marshal(w)
}

func (p *SnowProfile) UnmarshalJSON(data []byte) error {
	var w snowProfileWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = SnowProfile{IsProfileToGround: w.IsProfileToGround}
	if w.StratProfile != nil {
		p.Layers = w.StratProfile.Layers
	}
	if w.SnowTemp != nil {
		p.Temperatures = w.SnowTemp.Layers
	}
	for _, d := range w.SnowDensity {
		p.Densities = append(p.Densities, d.Layers...)
	}
	if w.Comment != nil {
		p.Comment = *w.Comment
	}
	return nil
}
