package aps

import (
	"errors"
	"strconv"

	"snowreg/internal/frame"
)

// ErrFrameFilter is returned when both an elevation and a level index
// filter are given.
var ErrFrameFilter = errors.New("only one of elevation and level index can be set")

// FrameOptions narrow and extend a frame export.
type FrameOptions struct {
	// WithWindDir adds the per-direction wind distribution columns.
	WithWindDir bool
	// Elevation keeps only the level containing this elevation.
	Elevation *int
	// LevelIndex keeps only levels with this band index.
	LevelIndex *int
}

func (o FrameOptions) keep(l Level) bool {
	if o.Elevation == nil && o.LevelIndex == nil {
		return true
	}
	if o.Elevation != nil && *o.Elevation != 0 &&
		l.Floor <= *o.Elevation && (l.Roof == 0 || *o.Elevation < l.Roof) {
		return true
	}
	return o.LevelIndex != nil && l.Index == *o.LevelIndex
}

var directionNames = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func frameColumns(withWindDir bool) []frame.Column {
	var cols []frame.Column
	for _, p := range Params {
		for _, q := range Percentiles {
			cols = append(cols, frame.Column{Group: p.String(), Name: strconv.Itoa(q)})
		}
	}
	if withWindDir {
		for _, d := range directionNames {
			cols = append(cols, frame.Column{Group: "wind_dir", Name: d})
		}
	}
	return cols
}

func levelValues(l Level, withWindDir bool) []*float64 {
	var values []*float64
	for _, p := range Params {
		d := l.Data(p)
		for i := range Percentiles {
			if d == nil {
				values = append(values, nil)
			} else {
				values = append(values, d.Percs[i])
			}
		}
	}
	if withWindDir {
		if l.Wind != nil {
			dirs := l.Wind.DirDistribution()
			for d := range dirs {
				v := dirs[d]
				values = append(values, &v)
			}
		} else {
			for range directionNames {
				values = append(values, nil)
			}
		}
	}
	return values
}

// Frame renders the product as a table indexed by region, date and
// elevation band.
func (a *Aps) Frame(opts FrameOptions) (*frame.Frame, error) {
	if opts.Elevation != nil && opts.LevelIndex != nil {
		return nil, ErrFrameFilter
	}
	f := frame.New([]string{"region", "date", "elevation"}, frameColumns(opts.WithWindDir))
	for _, reg := range a.Regions.Keys() {
		timeline, _ := a.Regions.Get(reg)
		if err := timelineRows(f, timeline, opts, func(day Day, l Level) []string {
			return []string{strconv.Itoa(int(reg)), string(day.Date), l.Name()}
		}); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Frame renders the timeline as a table indexed by date and elevation
// band.
func (t Timeline) Frame(opts FrameOptions) (*frame.Frame, error) {
	if opts.Elevation != nil && opts.LevelIndex != nil {
		return nil, ErrFrameFilter
	}
	f := frame.New([]string{"date", "elevation"}, frameColumns(opts.WithWindDir))
	if err := timelineRows(f, t, opts, func(day Day, l Level) []string {
		return []string{string(day.Date), l.Name()}
	}); err != nil {
		return nil, err
	}
	return f, nil
}

func timelineRows(f *frame.Frame, t Timeline, opts FrameOptions, index func(Day, Level) []string) error {
	if t.Days == nil {
		return nil
	}
	for _, day := range t.Days.Values() {
		if day.Empty() {
			continue
		}
		for _, l := range day.Levels {
			if !opts.keep(l) {
				continue
			}
			if err := f.AddRow(index(day, l), levelValues(l, opts.WithWindDir)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Frame renders one day as a table indexed by elevation band. Empty
// levels and the unbounded ground band are dropped.
func (d Day) Frame(opts FrameOptions) (*frame.Frame, error) {
	if opts.Elevation != nil && opts.LevelIndex != nil {
		return nil, ErrFrameFilter
	}
	f := frame.New([]string{"elevation"}, frameColumns(opts.WithWindDir))
	for _, l := range d.Levels {
		if !opts.keep(l) || l.Empty() || l.Name() == "0" {
			continue
		}
		if err := f.AddRow([]string{l.Name()}, levelValues(l, opts.WithWindDir)); err != nil {
			return nil, err
		}
	}
	return f, nil
}
