package regobs

import (
	"encoding/json"
	"fmt"
)

// Position is a point in WGS84 coordinates.
type Position struct {
	Latitude  float64
	Longitude float64
}

// NewPosition validates and builds a Position.
func NewPosition(lat, lon float64) (Position, error) {
	if lat < -90 || lat > 90 {
		return Position{}, fmt.Errorf("%w: %f", ErrInvalidLatitude, lat)
	}
	if lon < -180 || lon > 180 {
		return Position{}, fmt.Errorf("%w: %f", ErrInvalidLongitude, lon)
	}
	return Position{Latitude: lat, Longitude: lon}, nil
}

// ElevationFormat is the shape of an elevation band.
type ElevationFormat int

const (
	// Above represents all elevations above the band's elevation.
	Above ElevationFormat = 1
	// Below represents all elevations below the band's elevation.
	Below ElevationFormat = 2
	// Sandwich represents elevations above the band's higher elevation
	// and below its lower elevation.
	Sandwich ElevationFormat = 3
	// Middle represents elevations between the band's two elevations.
	Middle ElevationFormat = 4
)

// maxElevation is the highest point of the service's coverage area.
const maxElevation = 4808

// Elevation is an elevation band.
type Elevation struct {
	Format  ElevationFormat
	ElevMax int
	// ElevMin is unset for the Above and Below formats.
	ElevMin *int
}

// NewElevation builds an elevation band.
//
// Above and Below take a single threshold elevation. Sandwich and
// Middle take two; they are rounded to the nearest hundred metres,
// and if they round to the same value the lower one is pushed a
// hundred metres down to keep the band non-empty.
func NewElevation(format ElevationFormat, elev int, elevSecondary *int) (Elevation, error) {
	if elev < 0 || elev > maxElevation {
		return Elevation{}, fmt.Errorf("%w: %d", ErrInvalidElevation, elev)
	}
	if elevSecondary != nil && (*elevSecondary < 0 || *elevSecondary > maxElevation) {
		return Elevation{}, fmt.Errorf("%w: %d", ErrInvalidElevation, *elevSecondary)
	}
	switch format {
	case Above, Below:
		if elevSecondary != nil {
			return Elevation{}, fmt.Errorf("%w: single-threshold format takes one elevation", ErrInvalidElevation)
		}
	case Sandwich, Middle:
		if elevSecondary == nil {
			return Elevation{}, fmt.Errorf("%w: two-threshold format takes two elevations", ErrInvalidElevation)
		}
	default:
		return Elevation{}, fmt.Errorf("%w: unknown format %d", ErrInvalidElevation, format)
	}

	e := Elevation{Format: format}
	if elevSecondary != nil {
		hi := roundHundred(max(elev, *elevSecondary))
		lo := roundHundred(min(elev, *elevSecondary))
		if hi == lo {
			lo -= 100
		}
		e.ElevMax = hi
		e.ElevMin = &lo
	} else {
		e.ElevMax = elev
	}
	return e, nil
}

// roundHundred rounds to the nearest hundred, ties to the even
// hundred, matching the service's threshold convention.
func roundHundred(n int) int {
	q, r := n/100, n%100
	switch {
	case r > 50:
		q++
	case r == 50 && q%2 != 0:
		q++
	}
	return q * 100
}

type elevationWire struct {
	Format  *ElevationFormat `json:"ExposedHeightComboTID,omitempty"`
	ElevMax *int             `json:"ExposedHeight1,omitempty"`
	ElevMin *int             `json:"ExposedHeight2,omitempty"`
}

func (e Elevation) wire() elevationWire {
	w := elevationWire{ElevMin: e.ElevMin}
	if e.Format != 0 {
		w.Format = &e.Format
	}
	if e.ElevMax != 0 {
		elev := e.ElevMax
		w.ElevMax = &elev
	}
	return w
}

// ReceivedElevation reconstructs a stored band without re-rounding.
// Forecast payloads carry the same three fields as registrations.
func ReceivedElevation(format *ElevationFormat, elevMax, elevMin *int) *Elevation {
	return elevationFromWire(elevationWire{Format: format, ElevMax: elevMax, ElevMin: elevMin})
}

// elevationFromWire reconstructs a band without re-rounding: what the
// service stored is taken at face value.
func elevationFromWire(w elevationWire) *Elevation {
	if w.Format == nil && w.ElevMax == nil && w.ElevMin == nil {
		return nil
	}
	e := &Elevation{}
	if w.Format != nil {
		e.Format = *w.Format
	}
	if w.ElevMax != nil {
		e.ElevMax = *w.ElevMax
	}
	if w.ElevMin != nil && w.ElevMax != nil {
		hi := max(*w.ElevMax, *w.ElevMin)
		lo := min(*w.ElevMax, *w.ElevMin)
		e.ElevMax = hi
		e.ElevMin = &lo
	}
	return e
}

// Expositions is a set of compass directions.
type Expositions struct {
	set [8]bool
}

// NewExpositions builds an exposition set from directions.
func NewExpositions(directions ...Direction) Expositions {
	var e Expositions
	for _, d := range directions {
		if d >= 0 && d < 8 {
			e.set[d] = true
		}
	}
	return e
}

// Contains reports whether the set includes a direction.
func (e Expositions) Contains(d Direction) bool {
	return d >= 0 && d < 8 && e.set[d]
}

// Directions returns the included directions, N first.
func (e Expositions) Directions() []Direction {
	var out []Direction
	for i, ok := range e.set {
		if ok {
			out = append(out, Direction(i))
		}
	}
	return out
}

// Empty reports whether no direction is included.
func (e Expositions) Empty() bool {
	return e.set == [8]bool{}
}

// MarshalJSON encodes the set as an eight character string of zeroes
// and ones, N first.
func (e Expositions) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e Expositions) String() string {
	b := []byte("00000000")
	for i, ok := range e.set {
		if ok {
			b[i] = '1'
		}
	}
	return string(b)
}

// UnmarshalJSON decodes the wire string. Strings shorter than eight
// characters leave the remaining directions excluded; longer strings
// are rejected.
func (e *Expositions) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseExpositions(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// ParseExpositions parses a wire exposition string.
func ParseExpositions(s string) (Expositions, error) {
	if len(s) > 8 {
		return Expositions{}, fmt.Errorf("%w: %q", ErrInvalidExpositions, s)
	}
	var e Expositions
	for i := 0; i < len(s); i++ {
		e.set[i] = s[i] != '0'
	}
	return e, nil
}

// Url is a link with a description, attachable to several observation
// kinds.
type Url struct {
	Url         string
	Description string
}

type urlWire struct {
	Line        *string `json:"UrlLine,omitempty"`
	Description *string `json:"UrlDescription,omitempty"`
}

func (u Url) MarshalJSON() ([]byte, error) {
	var w urlWire
	if u.Url != "" {
		w.Line = &u.Url
	}
	if u.Description != "" {
		w.Description = &u.Description
	}
	return json.Marshal(w)
}

func (u *Url) UnmarshalJSON(data []byte) error {
	var w urlWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Line != nil {
		u.Url = *w.Line
	}
	if w.Description != nil {
		u.Description = *w.Description
	}
	return nil
}
