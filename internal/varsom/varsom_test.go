package varsom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

const forecastPayload = `[
	{
		"RegionId": 3022,
		"RegionTypeName": "A",
		"ValidFrom": "2021-03-14T00:00:00",
		"DangerLevel": "3",
		"EmergencyWarning": "Naturlig utløste skred",
		"AvalancheProblems": [
			{
				"AvalancheProblemTypeId": 10,
				"DestructiveSizeId": 2,
				"AvalTriggerSensitivityId": 30,
				"AvalPropagationId": 2,
				"ValidExpositions": "10000011",
				"ExposedHeight1": 600,
				"ExposedHeight2": 0,
				"ExposedHeightFill": 1
			},
			{
				"AvalancheProblemTypeId": 37,
				"DestructiveSizeId": 3,
				"AvalTriggerSensitivityId": 50,
				"AvalPropagationId": 3,
				"ValidExpositions": "11111111",
				"ExposedHeight1": 0,
				"ExposedHeight2": 0,
				"ExposedHeightFill": 0
			}
		]
	},
	{
		"RegionId": 3022,
		"RegionTypeName": "A",
		"ValidFrom": "2021-03-15T00:00:00",
		"DangerLevel": "0",
		"EmergencyWarning": "Ikke vurdert",
		"AvalancheProblems": []
	},
	{
		"RegionId": 3032,
		"RegionTypeName": "B",
		"ValidFrom": "2021-03-14T00:00:00",
		"DangerLevel": "2",
		"EmergencyWarning": "",
		"AvalancheProblems": []
	}
]`

func TestDeserialize(t *testing.T) {
	varsom, err := Deserialize([]byte(forecastPayload))
	require.NoError(t, err)
	require.Equal(t, 2, varsom.Regions.Len())

	timeline, ok := varsom.Regions.Get(3022)
	require.True(t, ok)
	// The level-zero day is dropped.
	require.Equal(t, 1, timeline.Forecasts.Len())

	forecast, ok := timeline.Forecasts.Get(regobs.NewDate(2021, 3, 14))
	require.True(t, ok)
	assert.Equal(t, region.SnowRegion(3022), forecast.Region)
	assert.True(t, forecast.PrimaryRegion)
	assert.Equal(t, regobs.DangerLevel(3), forecast.DangerLevel)
	require.NotNil(t, forecast.EmergencyWarning)
	assert.True(t, *forecast.EmergencyWarning)

	other, ok := varsom.Regions.Get(3032)
	require.True(t, ok)
	side, ok := other.Forecasts.Get(regobs.NewDate(2021, 3, 14))
	require.True(t, ok)
	assert.False(t, side.PrimaryRegion)
	assert.Nil(t, side.EmergencyWarning)
}

func TestDeserializeProblems(t *testing.T) {
	varsom, err := Deserialize([]byte(forecastPayload))
	require.NoError(t, err)
	timeline, _ := varsom.Regions.Get(3022)
	forecast, _ := timeline.Forecasts.Get(regobs.NewDate(2021, 3, 14))
	require.Len(t, forecast.Problems, 2)

	wind := forecast.Problems[0]
	require.NotNil(t, wind.Type)
	assert.Equal(t, WindSlab, *wind.Type)
	require.NotNil(t, wind.Size)
	assert.Equal(t, regobs.SizeD2, *wind.Size)
	require.NotNil(t, wind.Sensitivity)
	assert.Equal(t, Easy, *wind.Sensitivity)
	require.NotNil(t, wind.Distribution)
	assert.Equal(t, regobs.DistributionSpecific, *wind.Distribution)
	require.NotNil(t, wind.Expositions)
	assert.True(t, wind.Expositions.Contains(regobs.N))
	assert.True(t, wind.Expositions.Contains(regobs.NW))
	assert.False(t, wind.Expositions.Contains(regobs.S))
	require.NotNil(t, wind.Elevation)
	assert.Equal(t, regobs.Above, wind.Elevation.Format)
	assert.Equal(t, 600, wind.Elevation.ElevMax)

	// The retired deep slab code maps onto the persistent slab type,
	// and its retired sensitivity code onto spontaneous release.
	pwl := forecast.Problems[1]
	require.NotNil(t, pwl.Type)
	assert.Equal(t, PWLSlab, *pwl.Type)
	require.NotNil(t, pwl.Sensitivity)
	assert.Equal(t, Spontaneous, *pwl.Sensitivity)
}

func TestNormalizeSensitivity(t *testing.T) {
	assert.Nil(t, normalizeSensitivity(0))
	for _, code := range []int{35, 50, 60, 70, 80} {
		s := normalizeSensitivity(code)
		require.NotNil(t, s)
		assert.Equal(t, Spontaneous, *s, "code %d", code)
	}
	s := normalizeSensitivity(20)
	require.NotNil(t, s)
	assert.Equal(t, Difficult, *s)
}

func TestElevationBand(t *testing.T) {
	roof := 2000
	mid := 600
	intPtr := func(v int) *int { return &v }
	tests := []struct {
		name      string
		elevation *regobs.Elevation
		wantMin   *int
		wantMax   *int
	}{
		{
			name:      "above",
			elevation: &regobs.Elevation{Format: regobs.Above, ElevMax: 600},
			wantMin:   intPtr(600),
			wantMax:   intPtr(roof),
		},
		{
			name:      "below",
			elevation: &regobs.Elevation{Format: regobs.Below, ElevMax: 600},
			wantMin:   intPtr(0),
			wantMax:   intPtr(600),
		},
		{
			name:      "sandwich",
			elevation: &regobs.Elevation{Format: regobs.Sandwich, ElevMax: 1200, ElevMin: &mid},
			wantMin:   intPtr(0),
			wantMax:   intPtr(roof),
		},
		{
			name:      "middle",
			elevation: &regobs.Elevation{Format: regobs.Middle, ElevMax: 1200, ElevMin: &mid},
			wantMin:   intPtr(600),
			wantMax:   intPtr(1200),
		},
		{
			name:      "no elevation",
			elevation: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Problem{Elevation: tt.elevation}
			lo, hi := p.ElevationBand(roof)
			assert.Equal(t, tt.wantMin, lo)
			assert.Equal(t, tt.wantMax, hi)
		})
	}
}

func TestTimelineRegion(t *testing.T) {
	_, err := NewTimeline().Region()
	assert.ErrorIs(t, err, ErrNoRegion)

	varsom, err := Deserialize([]byte(forecastPayload))
	require.NoError(t, err)
	timeline, _ := varsom.Regions.Get(3022)
	reg, err := timeline.Region()
	require.NoError(t, err)
	assert.Equal(t, region.SnowRegion(3022), reg)
}

func TestAssimilatePrefersPresentForecast(t *testing.T) {
	full := Forecast{Region: 3022, Date: regobs.NewDate(2021, 3, 14), DangerLevel: 3}
	empty := Forecast{Region: 3022, Date: regobs.NewDate(2021, 3, 14)}

	merged, err := full.Assimilate(empty)
	require.NoError(t, err)
	assert.Equal(t, regobs.DangerLevel(3), merged.DangerLevel)

	merged, err = empty.Assimilate(full)
	require.NoError(t, err)
	assert.Equal(t, regobs.DangerLevel(3), merged.DangerLevel)
}

func TestSliceAndSelect(t *testing.T) {
	varsom, err := Deserialize([]byte(forecastPayload))
	require.NoError(t, err)

	start := regobs.NewDate(2021, 3, 15)
	sliced := varsom.Slice(&start, nil)
	assert.True(t, sliced.Empty())

	selected := varsom.Select([]region.SnowRegion{3032})
	require.Equal(t, 1, selected.Regions.Len())
	_, ok := selected.Regions.Get(3032)
	assert.True(t, ok)
}
