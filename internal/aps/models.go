package aps

import (
	"encoding/json"
	"errors"
	"fmt"

	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

// The data source wraps each download in a per-parameter envelope:
// a TimeLine of days, each day listing regions with elevation-banded
// percentile data. Wind uses a different envelope with distribution
// histograms split at the treeline.

type timeSeriesWire struct {
	RegionID        json.Number `json:"RegionId"`
	AltitudeDivider int         `json:"AltitudeDivider"`
	TimeLine        []dayWire   `json:"TimeLine"`
}

type dayWire struct {
	FormattedDate string       `json:"FormattedDate"`
	Regions       []regionWire `json:"Regions"`

	DistributionBelowTreeline *windDistWire `json:"DistributionBelowTreeline"`
	DistributionAboveTreeline *windDistWire `json:"DistributionAboveTreeline"`
}

type regionWire struct {
	RegionID      json.Number     `json:"RegionId"`
	ElevationData []elevationWire `json:"ElevationData"`
}

type elevationWire struct {
	ElevationBottom int `json:"ElevationBottom"`
	ElevationTop    int `json:"ElevationTop"`
	ElevationBand   int `json:"ElevationBand"`

	Minimum       *float64 `json:"Minimum"`
	Perc05        *float64 `json:"Perc05"`
	FirstQuartile *float64 `json:"FirstQuartile"`
	Median        *float64 `json:"Median"`
	ThirdQuartile *float64 `json:"ThirdQuartile"`
	Perc95        *float64 `json:"Perc95"`
	Maximum       *float64 `json:"Maximum"`
}

type windDistWire struct {
	Calm         []float64 `json:"Calm"`
	Breeze       []float64 `json:"Breeze"`
	FreshBreeze  []float64 `json:"FreshBreeze"`
	StrongBreeze []float64 `json:"StrongBreeze"`
	HighWind     []float64 `json:"HighWind"`
	Gale         []float64 `json:"Gale"`
	StrongGale   []float64 `json:"StrongGale"`
	Storm        []float64 `json:"Storm"`
	Hurricane    []float64 `json:"Hurricane"`
}

func (w windDistWire) class(i int) []float64 {
	switch WindClasses[i].Key {
	case "Calm":
		return w.Calm
	case "Breeze":
		return w.Breeze
	case "FreshBreeze":
		return w.FreshBreeze
	case "StrongBreeze":
		return w.StrongBreeze
	case "HighWind":
		return w.HighWind
	case "Gale":
		return w.Gale
	case "StrongGale":
		return w.StrongGale
	case "Storm":
		return w.Storm
	case "Hurricane":
		return w.Hurricane
	}
	return nil
}

// ErrBadPayload is returned for payloads missing the expected
// envelope fields.
var ErrBadPayload = errors.New("malformed weather payload")

func parseRegion(n json.Number) (region.SnowRegion, error) {
	// Region ids are sometimes sent as floats.
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: region id %q", ErrBadPayload, n.String())
	}
	return region.SnowRegion(int(f)), nil
}

// parseDayDate extracts the day a timeline entry describes. The
// formatted date is the cut-off of the aggregation window, so the
// data belongs to the day before it.
func parseDayDate(formatted string) (key, day regobs.Date, err error) {
	if len(formatted) < 10 {
		return "", "", fmt.Errorf("%w: date %q", ErrBadPayload, formatted)
	}
	key, err = regobs.ParseDate(formatted[:10])
	if err != nil {
		return "", "", err
	}
	return key, key.Add(-1), nil
}

func (e elevationWire) data() *Data {
	return &Data{Percs: [7]*float64{
		e.Minimum, e.Perc05, e.FirstQuartile, e.Median, e.ThirdQuartile, e.Perc95, e.Maximum,
	}}
}

// deserializeWind converts an intensity histogram per direction into
// a percentile series. The histograms are normalized by the total
// mass; walking the buckets in rising order, each percentile is
// assigned the speed of the first bucket whose running share reaches
// it.
func deserializeWind(w windDistWire) (*WindData, error) {
	var total float64
	for i := range WindClasses {
		for _, v := range w.class(i) {
			total += v
		}
	}
	wind := &WindData{}
	if total == 0 {
		return nil, fmt.Errorf("%w: empty wind distribution", ErrBadPayload)
	}
	for i := range WindClasses {
		class := w.class(i)
		for d := 0; d < 8 && d < len(class); d++ {
			wind.Fractions[i][d] = class[d] / total
		}
	}

	remaining := append([]int(nil), Percentiles...)
	acc := 0.0
	for i, class := range WindClasses {
		for _, frac := range wind.Fractions[i] {
			acc += frac
		}
		for acc > 0 && len(remaining) > 0 && acc >= float64(remaining[0])/100 {
			for _, p := range remaining {
				speed := class.Speed
				wind.Percs[percIndex(p)] = &speed
			}
			remaining = remaining[1:]
		}
	}
	return wind, nil
}

func percIndex(p int) int {
	for i, q := range Percentiles {
		if q == p {
			return i
		}
	}
	return -1
}

// DeserializeTimeline decodes one downloaded parameter envelope into
// a timeline. The param selects which slot of each level the data
// lands in.
func DeserializeTimeline(payload []byte, param Param) (Timeline, error) {
	var wire timeSeriesWire
	if err := json.Unmarshal(payload, &wire); err != nil {
		return Timeline{}, fmt.Errorf("decode weather payload: %w", err)
	}
	timeline := NewTimeline()
	if param == Wind {
		reg, err := parseRegion(wire.RegionID)
		if err != nil {
			return Timeline{}, err
		}
		timeline.Treeline = wire.AltitudeDivider
		for _, dayW := range wire.TimeLine {
			day, err := deserializeWindDay(dayW, reg, wire.AltitudeDivider)
			if err != nil {
				return Timeline{}, err
			}
			key, _, err := parseDayDate(dayW.FormattedDate)
			if err != nil {
				return Timeline{}, err
			}
			timeline.Days.Set(key, day)
		}
		return timeline, nil
	}
	for _, dayW := range wire.TimeLine {
		day, err := deserializeDay(dayW, param)
		if err != nil {
			return Timeline{}, err
		}
		key, _, err := parseDayDate(dayW.FormattedDate)
		if err != nil {
			return Timeline{}, err
		}
		timeline.Days.Set(key, day)
	}
	return timeline, nil
}

// Deserialize decodes a parameter envelope into a single-region
// product.
func Deserialize(payload []byte, param Param) (*Aps, error) {
	timeline, err := DeserializeTimeline(payload, param)
	if err != nil {
		return nil, err
	}
	a := New()
	reg, err := timeline.Region()
	if err != nil {
		return nil, err
	}
	a.Regions.Set(reg, timeline)
	return a, nil
}

func deserializeDay(w dayWire, param Param) (Day, error) {
	if len(w.Regions) == 0 {
		return Day{}, fmt.Errorf("%w: no regions in timeline entry", ErrBadPayload)
	}
	_, date, err := parseDayDate(w.FormattedDate)
	if err != nil {
		return Day{}, err
	}
	reg, err := parseRegion(w.Regions[0].RegionID)
	if err != nil {
		return Day{}, err
	}
	day := Day{Date: date, Region: reg}
	for _, elev := range w.Regions[0].ElevationData {
		level := Level{
			Floor: elev.ElevationBottom,
			Roof:  elev.ElevationTop,
			Index: elev.ElevationBand,
		}
		level.setData(param, elev.data())
		day.Levels = append(day.Levels, level)
	}
	return day, nil
}

func deserializeWindDay(w dayWire, reg region.SnowRegion, treeline int) (Day, error) {
	_, date, err := parseDayDate(w.FormattedDate)
	if err != nil {
		return Day{}, err
	}
	day := Day{Date: date, Region: reg}
	if w.DistributionBelowTreeline == nil {
		return Day{}, fmt.Errorf("%w: wind day without distribution", ErrBadPayload)
	}
	below, err := deserializeWind(*w.DistributionBelowTreeline)
	if err != nil {
		return Day{}, err
	}
	roof := treeline
	day.Levels = append(day.Levels, Level{Floor: 0, Roof: roof, Index: 1, Wind: below})
	if treeline != 0 {
		if w.DistributionAboveTreeline == nil {
			return Day{}, fmt.Errorf("%w: wind day without above-treeline distribution", ErrBadPayload)
		}
		above, err := deserializeWind(*w.DistributionAboveTreeline)
		if err != nil {
			return Day{}, err
		}
		day.Levels = append(day.Levels, Level{
			Floor: treeline,
			Roof:  region.Roof(reg),
			Index: 2,
			Wind:  above,
		})
	}
	return day, nil
}
