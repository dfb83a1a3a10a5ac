package aps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

func testProduct(t *testing.T) *Aps {
	t.Helper()
	timeline := NewTimeline()
	for day := 14; day <= 15; day++ {
		date := regobs.NewDate(2021, 3, day)
		timeline.Days.Set(date, Day{
			Date:   date,
			Region: 3022,
			Levels: []Level{
				{Floor: 0, Roof: 600, Index: 1, Temp: median(-1), Wind: flatWind(4, 0)},
				{Floor: 600, Roof: 1200, Index: 2, Temp: median(-4)},
			},
		})
	}
	product := New()
	product.Regions.Set(3022, timeline)
	return product
}

func TestFrameLayout(t *testing.T) {
	f, err := testProduct(t).Frame(FrameOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"region", "date", "elevation"}, f.IndexNames)
	// Seven percentile columns per parameter.
	assert.Len(t, f.Columns, len(Params)*len(Percentiles))
	require.Equal(t, 4, f.Len())
	assert.Equal(t, []string{"3022", "2021-03-14", "0-600"}, f.Index(0))
	assert.Equal(t, []string{"3022", "2021-03-15", "600-1200"}, f.Index(3))
}

func TestFrameWindDirColumns(t *testing.T) {
	f, err := testProduct(t).Frame(FrameOptions{WithWindDir: true})
	require.NoError(t, err)
	assert.Len(t, f.Columns, len(Params)*len(Percentiles)+8)

	last := f.Columns[len(f.Columns)-1]
	assert.Equal(t, "wind_dir", last.Group)
	assert.Equal(t, "NW", last.Name)

	// The first level blows from the north, the second has no wind.
	northCol := len(Params) * len(Percentiles)
	v := f.Value(0, northCol)
	require.NotNil(t, v)
	assert.Equal(t, 1.0, *v)
	assert.Nil(t, f.Value(1, northCol))
}

func TestFrameElevationFilter(t *testing.T) {
	elev := 800
	f, err := testProduct(t).Frame(FrameOptions{Elevation: &elev})
	require.NoError(t, err)
	require.Equal(t, 2, f.Len())
	assert.Equal(t, "600-1200", f.Index(0)[2])
}

func TestFrameLevelIndexFilter(t *testing.T) {
	idx := 1
	f, err := testProduct(t).Frame(FrameOptions{LevelIndex: &idx})
	require.NoError(t, err)
	require.Equal(t, 2, f.Len())
	assert.Equal(t, "0-600", f.Index(0)[2])
}

func TestFrameRejectsDoubleFilter(t *testing.T) {
	elev, idx := 800, 1
	_, err := testProduct(t).Frame(FrameOptions{Elevation: &elev, LevelIndex: &idx})
	assert.ErrorIs(t, err, ErrFrameFilter)
}

func TestTimelineFrameCSV(t *testing.T) {
	timeline, ok := testProduct(t).Regions.Get(3022)
	require.True(t, ok)

	f, err := timeline.Frame(FrameOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"date", "elevation"}, f.IndexNames)

	var sb strings.Builder
	require.NoError(t, f.WriteCSV(&sb))
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2+f.Len())
	assert.True(t, strings.HasPrefix(lines[0], "date;elevation;precip;"))
	assert.True(t, strings.HasPrefix(lines[2], "2021-03-14;0-600;"))
}

func TestDayFrameDropsGroundBand(t *testing.T) {
	date := regobs.NewDate(2021, 3, 14)
	day := Day{Date: date, Region: region.SnowRegion(3022), Levels: []Level{
		{Floor: 0, Roof: 0, Index: 0, Temp: median(-1)},
		{Floor: 0, Roof: 600, Index: 1, Temp: median(-2)},
		{Floor: 600, Roof: 1200, Index: 2},
	}}

	f, err := day.Frame(FrameOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, f.Len())
	assert.Equal(t, []string{"0-600"}, f.Index(0))
}
