package varsom

import (
	"strconv"

	"snowreg/internal/frame"
	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

var directionNames = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var problemAttrs = []string{"size", "sensitivity", "distribution", "elevation_min", "elevation_max"}

// problemColumns builds the fixed grid of every problem type crossed
// with its attributes, so all frames share one shape.
func problemColumns(withPriorities bool) []frame.Column {
	var columns []frame.Column
	for _, t := range ProblemTypes {
		if withPriorities {
			columns = append(columns, frame.Column{Group: t.String(), Name: "priority"})
		}
		for _, attr := range problemAttrs {
			columns = append(columns, frame.Column{Group: t.String(), Name: attr})
		}
		for _, d := range directionNames {
			columns = append(columns, frame.Column{Group: t.String(), Name: "exposition_" + d})
		}
	}
	return columns
}

func attrsPerProblem(withPriorities bool) int {
	n := len(problemAttrs) + len(directionNames)
	if withPriorities {
		n++
	}
	return n
}

func boolCell(b bool) *float64 {
	v := 0.0
	if b {
		v = 1.0
	}
	return &v
}

func intCell(n int) *float64 {
	v := float64(n)
	return &v
}

// values fills one problem's attribute cells.
func (p Problem) values(roof int, priority *int, withPriorities bool) []*float64 {
	cells := make([]*float64, 0, attrsPerProblem(withPriorities))
	if withPriorities {
		var cell *float64
		if priority != nil {
			cell = intCell(*priority)
		}
		cells = append(cells, cell)
	}
	var size, sensitivity, distribution *float64
	if p.Size != nil {
		size = intCell(int(*p.Size))
	}
	if p.Sensitivity != nil {
		sensitivity = intCell(int(*p.Sensitivity))
	}
	if p.Distribution != nil {
		distribution = intCell(int(*p.Distribution))
	}
	elevMin, elevMax := p.ElevationBand(roof)
	var lo, hi *float64
	if elevMin != nil {
		lo = intCell(*elevMin)
	}
	if elevMax != nil {
		hi = intCell(*elevMax)
	}
	cells = append(cells, size, sensitivity, distribution, lo, hi)
	for _, d := range []regobs.Direction{
		regobs.N, regobs.NE, regobs.E, regobs.SE,
		regobs.S, regobs.SW, regobs.W, regobs.NW,
	} {
		if p.Expositions == nil {
			cells = append(cells, nil)
		} else {
			cells = append(cells, boolCell(p.Expositions.Contains(d)))
		}
	}
	return cells
}

// row lays the forecast's problems onto the fixed column grid.
// Problems without a recognized type are left out.
func (f Forecast) row(withPriorities bool) []*float64 {
	width := attrsPerProblem(withPriorities)
	cells := make([]*float64, width*len(ProblemTypes))
	roof := region.Roof(f.Region)
	for i, p := range f.Problems {
		if p.Type == nil {
			continue
		}
		slot := -1
		for j, t := range ProblemTypes {
			if t == *p.Type {
				slot = j
				break
			}
		}
		if slot < 0 {
			continue
		}
		priority := i + 1
		copy(cells[slot*width:(slot+1)*width], p.values(roof, &priority, withPriorities))
	}
	return cells
}

// ProblemFrame tabulates every forecast's problems, indexed by region
// and date.
func (v *SnowVarsom) ProblemFrame(withPriorities bool) (*frame.Frame, error) {
	f := frame.New([]string{"region", "date"}, problemColumns(withPriorities))
	for _, r := range v.Regions.Keys() {
		timeline, _ := v.Regions.Get(r)
		for _, date := range timeline.Forecasts.Keys() {
			forecast, _ := timeline.Forecasts.Get(date)
			if forecast.Empty() {
				continue
			}
			index := []string{strconv.Itoa(int(r)), string(date)}
			if err := f.AddRow(index, forecast.row(withPriorities)); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// ProblemFrame tabulates one region's problems, indexed by date.
func (t Timeline) ProblemFrame(withPriorities bool) (*frame.Frame, error) {
	f := frame.New([]string{"date"}, problemColumns(withPriorities))
	if t.Forecasts == nil {
		return f, nil
	}
	for _, date := range t.Forecasts.Keys() {
		forecast, _ := t.Forecasts.Get(date)
		if forecast.Empty() {
			continue
		}
		if err := f.AddRow([]string{string(date)}, forecast.row(withPriorities)); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// DangerLevelFrame tabulates the day-by-day danger level of every
// region.
func (v *SnowVarsom) DangerLevelFrame() (*frame.Frame, error) {
	f := frame.New([]string{"region", "date"}, []frame.Column{{Name: "danger_level"}})
	for _, r := range v.Regions.Keys() {
		timeline, _ := v.Regions.Get(r)
		for _, date := range timeline.Forecasts.Keys() {
			forecast, _ := timeline.Forecasts.Get(date)
			if forecast.Empty() {
				continue
			}
			index := []string{strconv.Itoa(int(r)), string(date)}
			if err := f.AddRow(index, []*float64{intCell(int(forecast.DangerLevel))}); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
