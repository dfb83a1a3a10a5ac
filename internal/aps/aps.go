// Package aps models the gridded weather product covering the
// forecast regions: per-region timelines of days, each day split into
// elevation levels carrying percentile distributions of the weather
// parameters.
package aps

import (
	"errors"
	"fmt"

	"snowreg/internal/ordered"
	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

var (
	// ErrIncompatible is returned when days of different dates or
	// regions are merged.
	ErrIncompatible = errors.New("incompatible days")

	// ErrConflict is returned when both sides of a merge carry data
	// for the same weather parameter.
	ErrConflict = errors.New("conflicting weather data")

	// ErrNoRegion is returned when an empty timeline is asked for its
	// region.
	ErrNoRegion = errors.New("no days to find region from")
)

// Param identifies a weather parameter of the data source. Each
// download carries exactly one.
type Param int

const (
	Precip     Param = 0
	PrecipMax  Param = 100
	Temp       Param = 17
	Wind       Param = 18
	SnowDepth  Param = 2002
	NewSnow    Param = 2013
	NewSnowMax Param = 2113
)

// Params lists every weather parameter, in the column order of frames.
var Params = []Param{Precip, PrecipMax, Temp, Wind, SnowDepth, NewSnow, NewSnowMax}

func (p Param) String() string {
	switch p {
	case Precip:
		return "precip"
	case PrecipMax:
		return "precip_max"
	case Temp:
		return "temp"
	case Wind:
		return "wind"
	case SnowDepth:
		return "snow_depth"
	case NewSnow:
		return "new_snow"
	case NewSnowMax:
		return "new_snow_max"
	}
	return fmt.Sprintf("Param(%d)", int(p))
}

// Percentiles are the quantiles every data series is reported at.
var Percentiles = []int{0, 5, 25, 50, 75, 95, 100}

// Data is a seven-point percentile distribution of one parameter.
// Entries follow Percentiles; nil marks a quantile without a value.
type Data struct {
	Percs [7]*float64
}

// Empty reports whether no quantile carries a value.
func (d *Data) Empty() bool {
	if d == nil {
		return true
	}
	for _, p := range d.Percs {
		if p != nil {
			return false
		}
	}
	return true
}

// WindClass is one intensity bucket of the wind product, with the
// wind speed the bucket maps to.
type WindClass struct {
	Name  string
	Key   string
	Speed float64
}

// WindClasses are the intensity buckets, calm first.
var WindClasses = []WindClass{
	{"calm", "Calm", 0},
	{"breeze", "Breeze", 4},
	{"fresh_breeze", "FreshBreeze", 9},
	{"strong_breeze", "StrongBreeze", 12},
	{"high_wind", "HighWind", 16},
	{"gale", "Gale", 19},
	{"strong_gale", "StrongGale", 23},
	{"storm", "Storm", 26},
	{"hurricane", "Hurricane", 33},
}

// WindData is the wind distribution of a level: a percentile series
// derived from the intensity histogram, plus the per-direction
// fraction of observations in each intensity bucket.
type WindData struct {
	Data
	// Fractions[class][direction] is that bucket's share of the total
	// distribution mass.
	Fractions [9][8]float64
}

// DirDistribution sums the bucket fractions per compass direction.
func (w *WindData) DirDistribution() [8]float64 {
	var dirs [8]float64
	for _, class := range w.Fractions {
		for d, frac := range class {
			dirs[d] += frac
		}
	}
	return dirs
}

// Level is an elevation sub-band of a day. Roof 0 means the band is
// open-ended; a zero Floor is ground level.
type Level struct {
	Floor int
	Roof  int
	Index int

	Precip     *Data
	PrecipMax  *Data
	Temp       *Data
	Wind       *WindData
	SnowDepth  *Data
	NewSnow    *Data
	NewSnowMax *Data
}

// Name renders the band as "floor" or "floor-roof".
func (l Level) Name() string {
	if l.Roof != 0 {
		return fmt.Sprintf("%d-%d", l.Floor, l.Roof)
	}
	return fmt.Sprintf("%d", l.Floor)
}

func (l Level) Data(p Param) *Data {
	switch p {
	case Precip:
		return l.Precip
	case PrecipMax:
		return l.PrecipMax
	case Temp:
		return l.Temp
	case Wind:
		if l.Wind == nil {
			return nil
		}
		return &l.Wind.Data
	case SnowDepth:
		return l.SnowDepth
	case NewSnow:
		return l.NewSnow
	case NewSnowMax:
		return l.NewSnowMax
	}
	return nil
}

func (l *Level) setData(p Param, d *Data) {
	switch p {
	case Precip:
		l.Precip = d
	case PrecipMax:
		l.PrecipMax = d
	case Temp:
		l.Temp = d
	case SnowDepth:
		l.SnowDepth = d
	case NewSnow:
		l.NewSnow = d
	case NewSnowMax:
		l.NewSnowMax = d
	}
}

// Empty reports whether the level carries no data for any parameter.
func (l Level) Empty() bool {
	for _, p := range Params {
		if !l.Data(p).Empty() {
			return false
		}
	}
	return true
}

// A zero bound counts as missing when merging, matching the source's
// treatment of ground level and open roofs.
func maxOrPresent(a, b int) int {
	if a != 0 && b != 0 {
		return max(a, b)
	}
	if a != 0 {
		return a
	}
	return b
}

// Assimilate merges two levels covering the same band. Each weather
// parameter must be present on at most one side.
func (l Level) Assimilate(other Level) (Level, error) {
	merged := Level{
		Floor: maxOrPresent(l.Floor, other.Floor),
		Roof:  maxOrPresent(l.Roof, other.Roof),
		Index: maxOrPresent(l.Index, other.Index),
	}
	if l.Wind != nil && other.Wind != nil {
		return Level{}, fmt.Errorf("%w: wind on both sides", ErrConflict)
	}
	if l.Wind != nil {
		merged.Wind = l.Wind
	} else {
		merged.Wind = other.Wind
	}
	for _, p := range Params {
		if p == Wind {
			continue
		}
		s, o := l.Data(p), other.Data(p)
		switch {
		case !s.Empty() && !o.Empty():
			return Level{}, fmt.Errorf("%w: both levels have %s data", ErrConflict, p)
		case !s.Empty():
			merged.setData(p, s)
		case !o.Empty():
			merged.setData(p, o)
		}
	}
	return merged, nil
}

// Day holds the levels of one region and date.
type Day struct {
	Date   regobs.Date
	Region region.SnowRegion
	Levels []Level
}

// Empty reports whether every level of the day is empty.
func (d Day) Empty() bool {
	for _, l := range d.Levels {
		if !l.Empty() {
			return false
		}
	}
	return true
}

// Assimilate merges two days of the same region and date. Wind data
// is partitioned at the treeline rather than the elevation bands of
// the other parameters, so when one side carries wind its band is
// re-walked downward until it overlaps the other side's band by less
// than half, then re-bounded to match before the field merge.
func (d Day) Assimilate(other Day) (Day, error) {
	if d.Date != other.Date || d.Region != other.Region {
		return Day{}, fmt.Errorf("%w: %s/%s vs %s/%s", ErrIncompatible, d.Region, d.Date, other.Region, other.Date)
	}
	merged := Day{Date: d.Date, Region: d.Region}
	if len(d.Levels) == 0 {
		merged.Levels = other.Levels
		return merged, nil
	}
	if len(other.Levels) == 0 {
		merged.Levels = d.Levels
		return merged, nil
	}
	for i := 0; i < max(len(d.Levels), len(other.Levels)); i++ {
		selfI := min(i, len(d.Levels)-1)
		otherI := min(i, len(other.Levels)-1)
		selfL := d.Levels[selfI]
		otherL := other.Levels[otherI]

		var level Level
		var err error
		if selfL.Wind != nil || otherL.Wind != nil {
			var windI int
			var windSide []Level
			var windL, noWindL Level
			if selfL.Wind != nil {
				windI, windSide, windL, noWindL = selfI, d.Levels, selfL, otherL
			} else {
				windI, windSide, windL, noWindL = otherI, other.Levels, otherL, selfL
			}
			for float64(windL.Floor-noWindL.Floor)/float64(noWindL.Roof-noWindL.Floor) >= 0.5 {
				windI--
				windL = windSide[windI]
			}
			windL.Floor = noWindL.Floor
			windL.Roof = noWindL.Roof
			level, err = windL.Assimilate(noWindL)
		} else {
			level, err = selfL.Assimilate(otherL)
		}
		if err != nil {
			return Day{}, err
		}
		merged.Levels = append(merged.Levels, level)
	}
	return merged, nil
}

// Timeline is the ordered days of one region, keyed by date. The
// treeline is only known for wind downloads.
type Timeline struct {
	Days     *ordered.Map[regobs.Date, Day]
	Treeline int
}

// NewTimeline builds an empty timeline.
func NewTimeline() Timeline {
	return Timeline{Days: ordered.New[regobs.Date, Day]()}
}

// Empty reports whether the timeline has no non-empty days.
func (t Timeline) Empty() bool {
	if t.Days == nil {
		return true
	}
	for _, d := range t.Days.Values() {
		if !d.Empty() {
			return false
		}
	}
	return true
}

// Region returns the region the timeline's days belong to.
func (t Timeline) Region() (region.SnowRegion, error) {
	if t.Days == nil || t.Days.Len() == 0 {
		return 0, ErrNoRegion
	}
	return t.Days.Values()[0].Region, nil
}

// Assimilate merges two timelines day by day. The treeline is kept
// from the receiver when it has one.
func (t Timeline) Assimilate(other Timeline) (Timeline, error) {
	merged := Timeline{Treeline: t.Treeline}
	if merged.Treeline == 0 {
		merged.Treeline = other.Treeline
	}
	days := t.Days
	if days == nil {
		days = ordered.New[regobs.Date, Day]()
	}
	otherDays := other.Days
	if otherDays == nil {
		otherDays = ordered.New[regobs.Date, Day]()
	}
	var err error
	merged.Days, err = days.Assimilate(otherDays)
	return merged, err
}

// Slice bounds the timeline to [start, end). Nil bounds are open.
func (t Timeline) Slice(start, end *regobs.Date) Timeline {
	if t.Days == nil {
		return NewTimeline()
	}
	return Timeline{Days: t.Days.Slice(start, end), Treeline: t.Treeline}
}

// Aps is the full product: one timeline per region.
type Aps struct {
	Regions *ordered.Map[region.SnowRegion, Timeline]
}

// New builds an empty product.
func New() *Aps {
	return &Aps{Regions: ordered.New[region.SnowRegion, Timeline]()}
}

// Empty reports whether no region has data.
func (a *Aps) Empty() bool {
	if a == nil || a.Regions == nil {
		return true
	}
	for _, t := range a.Regions.Values() {
		if !t.Empty() {
			return false
		}
	}
	return true
}

// Assimilate merges two products region by region into a new one.
func (a *Aps) Assimilate(other *Aps) (*Aps, error) {
	regions, err := a.Regions.Assimilate(other.Regions)
	if err != nil {
		return nil, err
	}
	return &Aps{Regions: regions}, nil
}

// Slice bounds every timeline to [start, end). Nil bounds are open.
func (a *Aps) Slice(start, end *regobs.Date) *Aps {
	out := New()
	for _, r := range a.Regions.Keys() {
		t, _ := a.Regions.Get(r)
		sliced := t.Slice(start, end)
		if !sliced.Empty() {
			out.Regions.Set(r, sliced)
		}
	}
	return out
}

// Select keeps only the given regions.
func (a *Aps) Select(regions []region.SnowRegion) *Aps {
	return &Aps{Regions: a.Regions.Select(regions)}
}
