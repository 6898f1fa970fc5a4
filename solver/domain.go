package solver

import (
	"math"
	"sort"

	"github.com/katalvlaran/daygrid/geom"
)

// countGuard absorbs division noise in floor(W/w): a frame shrunk to
// exactly W/k must report k columns even when W/(W/k) lands a few ulps
// below k.
const countGuard = 1e-9

// startColumns chooses the first column count to try for a frame that fits
// `count` times into the column. The fixed thresholds trade completeness
// for search-space size: for small counts nearly all partitions are kept,
// for large counts only the finest ones.
func startColumns(count int) int {
	switch {
	case count == 1:
		return 1
	case count <= 4:
		return 2
	case count <= 6:
		return count - 2
	case count <= 7:
		return count - 1
	default:
		return count
	}
}

// Domain generates the ordered candidate placements for a frame of the
// given (possibly sweep-shrunk) width inside a column of columnWidth.
//
// For every column count c from startColumns(count) to count = floor(W/w)
// and every slot k in [0, c), the candidate (x = k·W/c, width = W/c) is
// emitted. Tolerance-equal duplicates are removed, and the result is
// ordered by descending width, then ascending x: widest-first,
// leftmost-first, which biases the search toward using the available
// space before finer slices.
func Domain(width, columnWidth float64) []geom.Placement {
	count := int(math.Floor(columnWidth/width + countGuard))
	if count < 1 {
		count = 1
	}

	var out []geom.Placement
	for c := startColumns(count); c <= count; c++ {
		share := columnWidth / float64(c)
		for k := 0; k < c; k++ {
			out = append(out, geom.Placement{X: float64(k) * share, Width: share})
		}
	}
	out = geom.DedupPlacements(out)

	sort.SliceStable(out, func(i, j int) bool {
		if !geom.EqualWithin(out[i].Width, out[j].Width) {
			return out[i].Width > out[j].Width
		}

		return out[i].X < out[j].X
	})

	return out
}
