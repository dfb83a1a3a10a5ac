package regobs

import (
	"errors"
	"testing"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewPosition(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		wantErr  error
	}{
		{"valid", 60.5, 7.5, nil},
		{"north pole", 90, 0, nil},
		{"latitude too high", 90.1, 0, ErrInvalidLatitude},
		{"latitude too low", -90.1, 0, ErrInvalidLatitude},
		{"longitude too high", 0, 180.1, ErrInvalidLongitude},
		{"longitude too low", 0, -180.1, ErrInvalidLongitude},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPosition(tt.lat, tt.lon)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewPosition(%f, %f) error = %v, want %v", tt.lat, tt.lon, err, tt.wantErr)
			}
		})
	}
}

func TestNewElevationRounding(t *testing.T) {
	tests := []struct {
		name      string
		format    ElevationFormat
		elev      int
		secondary *int
		wantMax   int
		wantMin   *int
		wantErr   bool
	}{
		{"above keeps exact threshold", Above, 733, nil, 733, nil, false},
		{"below keeps exact threshold", Below, 1260, nil, 1260, nil, false},
		{"middle rounds to hundreds", Middle, 733, ptr(1260), 1300, ptr(700), false},
		{"sandwich reorders thresholds", Sandwich, 1260, ptr(733), 1300, ptr(700), false},
		{"ties round to the even hundred", Middle, 750, ptr(650), 800, ptr(600), false},
		{"equal after rounding pushes lower down", Middle, 730, ptr(670), 700, ptr(600), false},
		{"above rejects second threshold", Above, 700, ptr(400), 0, nil, true},
		{"middle requires second threshold", Middle, 700, nil, 0, nil, true},
		{"negative elevation", Above, -1, nil, 0, nil, true},
		{"above coverage area", Below, 4809, nil, 0, nil, true},
		{"unknown format", ElevationFormat(9), 700, nil, 0, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewElevation(tt.format, tt.elev, tt.secondary)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if e.ElevMax != tt.wantMax {
				t.Errorf("ElevMax = %d, want %d", e.ElevMax, tt.wantMax)
			}
			switch {
			case tt.wantMin == nil && e.ElevMin != nil:
				t.Errorf("ElevMin = %d, want nil", *e.ElevMin)
			case tt.wantMin != nil && (e.ElevMin == nil || *e.ElevMin != *tt.wantMin):
				t.Errorf("ElevMin = %v, want %d", e.ElevMin, *tt.wantMin)
			}
		})
	}
}

func TestReceivedElevationKeepsStoredValues(t *testing.T) {
	// Values already stored by the service must not be re-rounded.
	e := ReceivedElevation(ptr(Middle), ptr(433), ptr(667))
	if e == nil {
		t.Fatal("expected an elevation")
	}
	if e.Format != Middle || e.ElevMax != 667 || e.ElevMin == nil || *e.ElevMin != 433 {
		t.Errorf("got %+v, want the face values with max/min ordered", e)
	}

	if got := ReceivedElevation(nil, nil, nil); got != nil {
		t.Errorf("expected nil for an absent band, got %+v", got)
	}
}

func TestExpositionsString(t *testing.T) {
	tests := []struct {
		name       string
		directions []Direction
		want       string
	}{
		{"none", nil, "00000000"},
		{"north and southeast", []Direction{N, SE}, "10010000"},
		{"all", []Direction{N, NE, E, SE, S, SW, W, NW}, "11111111"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExpositions(tt.directions...)
			if got := e.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseExpositions(t *testing.T) {
	e, err := ParseExpositions("10010000")
	if err != nil {
		t.Fatal(err)
	}
	if !e.Contains(N) || !e.Contains(SE) || e.Contains(S) {
		t.Errorf("parsed set %s does not match input", e)
	}

	// Shorter strings leave the remaining directions excluded.
	e, err = ParseExpositions("11")
	if err != nil {
		t.Fatal(err)
	}
	if !e.Contains(N) || !e.Contains(NE) || e.Contains(E) {
		t.Errorf("parsed set %s does not match short input", e)
	}

	if _, err := ParseExpositions("110100001"); err == nil {
		t.Error("expected an error for more than eight directions")
	}
}

func TestDirectionFromDegrees(t *testing.T) {
	tests := []struct {
		degrees float64
		want    Direction
	}{
		{0, N},
		{22, N},
		{22.5, N},
		{23, NE},
		{45, NE},
		{67.5, E},
		{112.5, E},
		{180, S},
		{292.5, W},
		{337, NW},
		{338.5, N},
		{359, N},
	}
	for _, tt := range tests {
		if got := DirectionFromDegrees(tt.degrees); got != tt.want {
			t.Errorf("DirectionFromDegrees(%f) = %s, want %s", tt.degrees, got, tt.want)
		}
	}
}
