package benchmark

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableExpected_Interpolation(t *testing.T) {
	table := NewTable(map[int]float64{100: 2.87, 150: 3.00, 200: 3.19})

	// Midpoint between 100 and 150
	assert.InDelta(t, 2.935, table.Expected(125), 1e-9)

	// Uneven position between 150 and 200
	assert.InDelta(t, 3.00+0.5*(3.19-3.00), table.Expected(175), 1e-9)
}

func TestTableExpected_FlatExtrapolation(t *testing.T) {
	table := NewTable(map[int]float64{100: 2.87, 150: 3.00, 200: 3.19})

	assert.Equal(t, 2.87, table.Expected(0), "below range should clamp to min sample")
	assert.Equal(t, 2.87, table.Expected(100), "at min key returns the sample")
	assert.Equal(t, 3.19, table.Expected(200), "at max key returns the sample")
	assert.Equal(t, 3.19, table.Expected(500), "above range should clamp to max sample")
}

func TestTableExpected_ExactKeysHaveNoDrift(t *testing.T) {
	samples := map[int]float64{20: 2.40, 40: 2.60, 100: 2.80, 160: 2.98, 300: 3.71}
	table := NewTable(samples)

	for distance, strokes := range samples {
		assert.Equal(t, strokes, table.Expected(float64(distance)),
			"sample at %d should be returned exactly", distance)
	}
}

func TestTableExpected_EmptyTable(t *testing.T) {
	var table Table
	assert.Equal(t, 0.0, table.Expected(150))
	assert.Equal(t, 0, table.Len())
}

func TestDefaultSet_AllLiesPopulated(t *testing.T) {
	set := DefaultSet()

	for _, lie := range Lies {
		assert.Greater(t, set.Table(lie).Len(), 0, "default table for %s should not be empty", lie)
	}

	// Expected strokes should rise with distance within each curve.
	assert.Greater(t, set.Expected(LieFairway, 300), set.Expected(LieFairway, 20))
	assert.Greater(t, set.Expected(LiePutting, 60), set.Expected(LiePutting, 3))

	// Rough always plays harder than fairway at the same distance.
	for _, d := range []float64{50, 100, 150, 200, 250} {
		assert.Greater(t, set.Expected(LieRough, d), set.Expected(LieFairway, d),
			"rough should cost more than fairway at %v yards", d)
	}
}

func TestLoad_MergesOverridesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmarks.json")
	overrides := map[Lie]map[int]float64{
		LieFairway: {100: 2.87, 150: 3.00, 200: 3.19},
	}
	data, err := json.Marshal(overrides)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	set, err := Load(path)
	require.NoError(t, err)

	// Overridden curve replaces the default wholesale.
	assert.Equal(t, 3, set.Table(LieFairway).Len())
	assert.InDelta(t, 2.935, set.Expected(LieFairway, 125), 1e-9)

	// Untouched lies keep the defaults.
	assert.Equal(t, DefaultSet().Table(LiePutting).Len(), set.Table(LiePutting).Len())
	assert.Equal(t, DefaultSet().Expected(LieRough, 150), set.Expected(LieRough, 150))
}

func TestLoad_RejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("unknown lie", func(t *testing.T) {
		path := filepath.Join(dir, "lie.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"water": {"10": 3.0}}`), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "unknown lie category")
	})

	t.Run("empty table", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"fairway": {}}`), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "empty table")
	})
}
