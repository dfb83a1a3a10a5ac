package aps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

const tempPayload = `{
	"TimeLine": [
		{
			"FormattedDate": "2021-03-15T06:00:00",
			"Regions": [
				{
					"RegionId": 3022.0,
					"ElevationData": [
						{
							"ElevationBottom": 0, "ElevationTop": 600, "ElevationBand": 1,
							"Minimum": -8, "Perc05": -7, "FirstQuartile": -6,
							"Median": -4.5, "ThirdQuartile": -3, "Perc95": -2, "Maximum": -1
						},
						{
							"ElevationBottom": 600, "ElevationTop": 1200, "ElevationBand": 2,
							"Minimum": -12, "Perc05": -11, "FirstQuartile": -10,
							"Median": -8, "ThirdQuartile": -7, "Perc95": -6, "Maximum": -5
						}
					]
				}
			]
		}
	]
}`

func TestDeserializeTimeline(t *testing.T) {
	timeline, err := DeserializeTimeline([]byte(tempPayload), Temp)
	require.NoError(t, err)
	require.Equal(t, 1, timeline.Days.Len())

	// Entries are keyed by the aggregation cut-off but describe the
	// day before it.
	day, ok := timeline.Days.Get(regobs.NewDate(2021, 3, 15))
	require.True(t, ok)
	assert.Equal(t, regobs.NewDate(2021, 3, 14), day.Date)
	assert.Equal(t, region.SnowRegion(3022), day.Region)

	require.Len(t, day.Levels, 2)
	assert.Equal(t, "0-600", day.Levels[0].Name())
	assert.Equal(t, "600-1200", day.Levels[1].Name())
	temp := day.Levels[0].Data(Temp)
	require.NotNil(t, temp)
	require.NotNil(t, temp.Percs[3])
	assert.Equal(t, -4.5, *temp.Percs[3])
	assert.Nil(t, day.Levels[0].Data(Precip))
}

func TestDeserializeSingleRegionProduct(t *testing.T) {
	product, err := Deserialize([]byte(tempPayload), Temp)
	require.NoError(t, err)
	require.Equal(t, 1, product.Regions.Len())

	timeline, ok := product.Regions.Get(3022)
	require.True(t, ok)
	assert.False(t, timeline.Empty())
}

const windPayload = `{
	"RegionId": 3022,
	"AltitudeDivider": 900,
	"TimeLine": [
		{
			"FormattedDate": "2021-03-15T06:00:00",
			"DistributionBelowTreeline": {
				"Calm": [2], "Breeze": [4], "Gale": [2]
			},
			"DistributionAboveTreeline": {
				"StrongBreeze": [0, 0, 0, 0, 4]
			}
		}
	]
}`

func TestDeserializeWindTimeline(t *testing.T) {
	timeline, err := DeserializeTimeline([]byte(windPayload), Wind)
	require.NoError(t, err)
	assert.Equal(t, 900, timeline.Treeline)

	day, ok := timeline.Days.Get(regobs.NewDate(2021, 3, 15))
	require.True(t, ok)
	require.Len(t, day.Levels, 2)

	below := day.Levels[0]
	assert.Equal(t, 0, below.Floor)
	assert.Equal(t, 900, below.Roof)
	require.NotNil(t, below.Wind)

	// Bucket masses 2/4/2 make the calm bucket cover the lowest
	// quartile, breeze the median and third quartile, gale the rest.
	wantSpeeds := []float64{0, 0, 0, 4, 4, 19, 19}
	for i, want := range wantSpeeds {
		require.NotNil(t, below.Wind.Percs[i], "percentile %d", Percentiles[i])
		assert.Equal(t, want, *below.Wind.Percs[i], "percentile %d", Percentiles[i])
	}
	assert.Equal(t, 0.25, below.Wind.Fractions[0][0])
	assert.Equal(t, 0.5, below.Wind.Fractions[1][0])

	above := day.Levels[1]
	assert.Equal(t, 900, above.Floor)
	assert.Equal(t, region.Roof(3022), above.Roof)
	require.NotNil(t, above.Wind)
	assert.Equal(t, 1.0, above.Wind.Fractions[3][4])
}

func TestDeserializeRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		param   Param
	}{
		{
			name:    "no regions in entry",
			payload: `{"TimeLine": [{"FormattedDate": "2021-03-15T06:00:00", "Regions": []}]}`,
			param:   Temp,
		},
		{
			name:    "short date",
			payload: `{"TimeLine": [{"FormattedDate": "2021", "Regions": [{"RegionId": 3022, "ElevationData": []}]}]}`,
			param:   Temp,
		},
		{
			name:    "wind day without distribution",
			payload: `{"RegionId": 3022, "AltitudeDivider": 900, "TimeLine": [{"FormattedDate": "2021-03-15T06:00:00"}]}`,
			param:   Wind,
		},
		{
			name: "empty wind distribution",
			payload: `{"RegionId": 3022, "AltitudeDivider": 900, "TimeLine": [
				{"FormattedDate": "2021-03-15T06:00:00", "DistributionBelowTreeline": {"Calm": [0]}}
			]}`,
			param: Wind,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeserializeTimeline([]byte(tt.payload), tt.param)
			assert.ErrorIs(t, err, ErrBadPayload)
		})
	}
}

func TestDeserializeAssimilatedParams(t *testing.T) {
	temps, err := DeserializeTimeline([]byte(tempPayload), Temp)
	require.NoError(t, err)
	wind, err := DeserializeTimeline([]byte(windPayload), Wind)
	require.NoError(t, err)

	merged, err := temps.Assimilate(wind)
	require.NoError(t, err)
	assert.Equal(t, 900, merged.Treeline)

	day, ok := merged.Days.Get(regobs.NewDate(2021, 3, 15))
	require.True(t, ok)
	require.Len(t, day.Levels, 2)
	assert.NotNil(t, day.Levels[0].Temp)
	assert.NotNil(t, day.Levels[0].Wind)
	assert.NotNil(t, day.Levels[1].Wind)
}
