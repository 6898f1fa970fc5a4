package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/daygrid/geom"
)

// TestEqualWithin_RoundingNoise verifies that values differing only by
// division rounding compare equal, while genuinely different values do not.
func TestEqualWithin_RoundingNoise(t *testing.T) {
	// 100/3 recombined in two different orders drifts by a few ulps.
	a := 100.0 / 3.0 * 2.0
	b := 100.0 - 100.0/3.0
	assert.True(t, geom.EqualWithin(a, b), "ulp-level drift must compare equal")

	assert.True(t, geom.EqualWithin(0, 1e-13), "near-zero noise compares equal")
	assert.False(t, geom.EqualWithin(33.3, 33.4), "distinct values must differ")
}

// TestPlacement_Equal checks both fields participate in equality.
func TestPlacement_Equal(t *testing.T) {
	p := geom.Placement{X: 50, Width: 50}
	assert.True(t, p.Equal(geom.Placement{X: 50 + 1e-13, Width: 50 - 1e-13}))
	assert.False(t, p.Equal(geom.Placement{X: 0, Width: 50}), "X differs")
	assert.False(t, p.Equal(geom.Placement{X: 50, Width: 25}), "Width differs")
}

// TestDedupPlacements removes tolerance-equal duplicates and preserves
// first-occurrence order.
func TestDedupPlacements(t *testing.T) {
	third := 100.0 / 3.0
	ps := []geom.Placement{
		{X: 0, Width: 50},
		{X: 2 * third, Width: third},
		{X: 100 - third, Width: third}, // same slot, rounding noise
		{X: 0, Width: 50},              // exact duplicate
		{X: 50, Width: 50},
	}

	out := geom.DedupPlacements(ps)
	assert.Len(t, out, 3)
	assert.True(t, out[0].Equal(geom.Placement{X: 0, Width: 50}))
	assert.True(t, out[1].Equal(geom.Placement{X: 2 * third, Width: third}))
	assert.True(t, out[2].Equal(geom.Placement{X: 50, Width: 50}))

	// The input is not consumed: every original entry is still in place.
	assert.Equal(t, geom.Placement{X: 2 * third, Width: third}, ps[1])
	assert.Equal(t, geom.Placement{X: 100 - third, Width: third}, ps[2])
	assert.Equal(t, geom.Placement{X: 0, Width: 50}, ps[3])
}

// TestFrame_ApplyKeepsVertical ensures Apply only touches X and Width.
func TestFrame_ApplyKeepsVertical(t *testing.T) {
	f := geom.NewFrame(7, 0, 120, 400, 80)
	f.Apply(geom.Placement{X: 200, Width: 100})

	assert.Equal(t, 200.0, f.X)
	assert.Equal(t, 100.0, f.Width)
	assert.Equal(t, 120.0, f.Top(), "Y is fixed after construction")
	assert.Equal(t, 200.0, f.Bottom(), "Height is fixed after construction")
}
