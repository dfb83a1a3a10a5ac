package varsom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

func testVarsom(t *testing.T) *SnowVarsom {
	t.Helper()
	varsom, err := Deserialize([]byte(forecastPayload))
	require.NoError(t, err)
	return varsom
}

func TestProblemFrameLayout(t *testing.T) {
	f, err := testVarsom(t).ProblemFrame(false)
	require.NoError(t, err)

	assert.Equal(t, []string{"region", "date"}, f.IndexNames)
	// Every problem type gets the same attribute block, present or not.
	perProblem := attrsPerProblem(false)
	assert.Len(t, f.Columns, perProblem*len(ProblemTypes))

	// One row per non-empty forecast over both regions.
	require.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"3022", "2021-03-14"}, f.Index(0))
	assert.Equal(t, []string{"3032", "2021-03-14"}, f.Index(1))
}

func TestProblemFrameSlots(t *testing.T) {
	f, err := testVarsom(t).ProblemFrame(false)
	require.NoError(t, err)
	perProblem := attrsPerProblem(false)

	slot := func(pt ProblemType) int {
		for i, t := range ProblemTypes {
			if t == pt {
				return i * perProblem
			}
		}
		return -1
	}

	// The wind slab problem lands in its own slot with its size.
	size := f.Value(0, slot(WindSlab))
	require.NotNil(t, size)
	assert.Equal(t, 2.0, *size)

	// Elevation of the wind slab resolves against the region roof.
	elevMin := f.Value(0, slot(WindSlab)+3)
	elevMax := f.Value(0, slot(WindSlab)+4)
	require.NotNil(t, elevMin)
	require.NotNil(t, elevMax)
	assert.Equal(t, 600.0, *elevMin)
	assert.Equal(t, float64(region.Roof(3022)), *elevMax)

	// North is a valid exposition of the wind slab, south is not.
	north := f.Value(0, slot(WindSlab)+len(problemAttrs))
	south := f.Value(0, slot(WindSlab)+len(problemAttrs)+4)
	require.NotNil(t, north)
	require.NotNil(t, south)
	assert.Equal(t, 1.0, *north)
	assert.Equal(t, 0.0, *south)

	// Slots of problem types the forecast does not carry stay empty.
	assert.Nil(t, f.Value(0, slot(GlideSlab)))
	assert.Nil(t, f.Value(1, slot(WindSlab)))
}

func TestProblemFramePriorities(t *testing.T) {
	f, err := testVarsom(t).ProblemFrame(true)
	require.NoError(t, err)
	perProblem := attrsPerProblem(true)
	assert.Len(t, f.Columns, perProblem*len(ProblemTypes))

	slot := func(pt ProblemType) int {
		for i, t := range ProblemTypes {
			if t == pt {
				return i * perProblem
			}
		}
		return -1
	}

	// Priority follows the order the problems were published in.
	wind := f.Value(0, slot(WindSlab))
	require.NotNil(t, wind)
	assert.Equal(t, 1.0, *wind)
	pwl := f.Value(0, slot(PWLSlab))
	require.NotNil(t, pwl)
	assert.Equal(t, 2.0, *pwl)
}

func TestTimelineProblemFrame(t *testing.T) {
	timeline, ok := testVarsom(t).Regions.Get(3022)
	require.True(t, ok)

	f, err := timeline.ProblemFrame(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"date"}, f.IndexNames)
	require.Equal(t, 1, f.Len())
	assert.Equal(t, []string{"2021-03-14"}, f.Index(0))
}

func TestDangerLevelFrame(t *testing.T) {
	f, err := testVarsom(t).DangerLevelFrame()
	require.NoError(t, err)

	require.Len(t, f.Columns, 1)
	assert.Equal(t, "danger_level", f.Columns[0].Name)
	require.Equal(t, 2, f.Len())

	v := f.Value(0, 0)
	require.NotNil(t, v)
	assert.Equal(t, 3.0, *v)
	v = f.Value(1, 0)
	require.NotNil(t, v)
	assert.Equal(t, 2.0, *v)
}

func TestRowSkipsUnknownProblemTypes(t *testing.T) {
	size := regobs.SizeD3
	forecast := Forecast{
		Region:      3022,
		Date:        regobs.NewDate(2021, 3, 14),
		DangerLevel: 2,
		Problems:    []Problem{{Size: &size}},
	}
	cells := forecast.row(false)
	for i, c := range cells {
		assert.Nil(t, c, "cell %d", i)
	}
}
