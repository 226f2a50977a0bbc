package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff_IdenticalConfigsAreEmpty(t *testing.T) {
	cfg := Config{"ColumnLimit": "80", "UseTab": "Never"}

	assert.Empty(t, Diff(cfg, cfg))
}

func TestDiff_ReportsChangedAndMissingKeys(t *testing.T) {
	preset := Config{"ColumnLimit": "80", "UseTab": "Never", "Standard": "Latest"}
	target := Config{"ColumnLimit": "120", "UseTab": "Never"}

	// ColumnLimit differs by value, Standard is missing from the target.
	assert.Equal(t, []string{"ColumnLimit", "Standard"}, Diff(preset, target))
}

func TestDiff_IsPresetRelative(t *testing.T) {
	preset := Config{"x": "1"}
	target := Config{"x": "1", "z": "4"}

	// Keys only the target sets are not part of the diff.
	assert.Empty(t, Diff(preset, target))
}

func TestDiff_SubsetOfPresetKeys(t *testing.T) {
	preset := Config{"a": "1", "b": "2"}
	target := Config{"c": "3", "d": "4", "e": "5"}

	diff := Diff(preset, target)
	for _, k := range diff {
		_, ok := preset[k]
		assert.True(t, ok, "diff key %q must come from the preset", k)
	}
	assert.Equal(t, []string{"a", "b"}, diff)
}

func TestDiff_SortedOutput(t *testing.T) {
	preset := Config{"Zeta": "1", "Alpha": "2", "Mid": "3"}
	target := Config{}

	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, Diff(preset, target))
}

func TestClosest_PicksMinimumDiff(t *testing.T) {
	presets := map[string]Config{
		"A": {"x": "1", "y": "2"},
		"B": {"x": "1", "y": "3"},
	}
	target := Config{"x": "1", "y": "3", "z": "4"}

	diffs := map[string][]string{
		"A": Diff(presets["A"], target),
		"B": Diff(presets["B"], target),
	}

	name, diff, ok := Closest([]string{"A", "B"}, diffs)
	assert.True(t, ok)
	assert.Equal(t, "B", name)
	assert.Empty(t, diff)
}

func TestClosest_TieBreaksByOrder(t *testing.T) {
	diffs := map[string][]string{
		"First":  {"x"},
		"Second": {"x"},
	}

	name, diff, ok := Closest([]string{"First", "Second"}, diffs)
	assert.True(t, ok)
	assert.Equal(t, "First", name)
	assert.Equal(t, []string{"x"}, diff)
}

func TestClosest_SkipsUnloadedPresets(t *testing.T) {
	diffs := map[string][]string{
		"Loaded": {},
	}

	name, _, ok := Closest([]string{"Rejected", "Loaded"}, diffs)
	assert.True(t, ok)
	assert.Equal(t, "Loaded", name)
}

func TestClosest_NoPresets(t *testing.T) {
	_, _, ok := Closest(nil, nil)
	assert.False(t, ok)
}
