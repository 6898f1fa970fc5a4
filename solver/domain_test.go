package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/daygrid/geom"
	"github.com/katalvlaran/daygrid/solver"
)

const colWidth = 100.0

// TestDomain_FullWidthFrame: a frame that fills the column gets exactly one
// candidate, the full column.
func TestDomain_FullWidthFrame(t *testing.T) {
	d := solver.Domain(colWidth, colWidth)

	require.Len(t, d, 1)
	assert.True(t, d[0].Equal(geom.Placement{X: 0, Width: colWidth}))
}

// TestDomain_HalfWidthFrame: count 2 starts at 2 columns, so the only
// partition is two half-width slots.
func TestDomain_HalfWidthFrame(t *testing.T) {
	d := solver.Domain(colWidth/2, colWidth)

	require.Len(t, d, 2)
	assert.True(t, d[0].Equal(geom.Placement{X: 0, Width: 50}))
	assert.True(t, d[1].Equal(geom.Placement{X: 50, Width: 50}))
}

// TestDomain_ThirdWidthFrame: count 3 → column counts 2 and 3, giving
// 2 + 3 = 5 distinct candidates, widest first.
func TestDomain_ThirdWidthFrame(t *testing.T) {
	d := solver.Domain(colWidth/3, colWidth)

	require.Len(t, d, 5)
	assert.True(t, d[0].Equal(geom.Placement{X: 0, Width: 50}))
	assert.True(t, d[1].Equal(geom.Placement{X: 50, Width: 50}))
	third := colWidth / 3
	assert.True(t, d[2].Equal(geom.Placement{X: 0, Width: third}))
	assert.True(t, d[3].Equal(geom.Placement{X: third, Width: third}))
	assert.True(t, d[4].Equal(geom.Placement{X: 2 * third, Width: third}))
}

// TestDomain_StartHeuristic pins the starting-column-count table through
// the candidate totals: sum of c over [start..count].
func TestDomain_StartHeuristic(t *testing.T) {
	cases := []struct {
		count int
		want  int // total candidates, no dedupe collisions across counts
	}{
		{1, 1},         // start 1
		{2, 2},         // start 2
		{4, 2 + 3 + 4}, // start 2
		{5, 3 + 4 + 5}, // start count-2
		{6, 4 + 5 + 6}, // start count-2
		{7, 6 + 7},     // start count-1
		{8, 8},         // start count
		{11, 11},       // start count
	}
	for _, tc := range cases {
		d := solver.Domain(colWidth/float64(tc.count), colWidth)
		assert.Len(t, d, tc.want, "count=%d", tc.count)
	}
}

// TestDomain_FloorGuard: a width produced by dividing the column (and thus
// carrying rounding noise) must still report the intended column count.
func TestDomain_FloorGuard(t *testing.T) {
	// 100/(100/3) evaluates just below 3 in floating point.
	d := solver.Domain(colWidth/3, colWidth)
	widest := d[0].Width
	assert.InDelta(t, 50, widest, 1e-9, "count 3 must include the 2-column partition")
}

// TestDomain_Ordering: descending width, ascending x within equal widths.
func TestDomain_Ordering(t *testing.T) {
	d := solver.Domain(colWidth/5, colWidth)

	for i := 1; i < len(d); i++ {
		prev, cur := d[i-1], d[i]
		if geom.EqualWithin(prev.Width, cur.Width) {
			assert.Less(t, prev.X, cur.X, "ties ordered by ascending x")
		} else {
			assert.Greater(t, prev.Width, cur.Width, "widths descend")
		}
	}
}
