package geom

import "math"

// PlacementEpsilon is the relative tolerance under which two placement
// coordinates are considered equal. Candidates are generated by repeated
// division of the column width, so values that are mathematically identical
// may differ by a few ulps; this tolerance absorbs that noise.
const PlacementEpsilon = 1e-12

// Placement is one candidate horizontal extent (offset and width) for a
// frame. The vertical extent is not part of a placement: it never changes.
type Placement struct {
	X     float64
	Width float64
}

// EqualWithin reports whether a and b differ by less than PlacementEpsilon
// in relative terms (absolute terms for values near zero).
func EqualWithin(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) < PlacementEpsilon*scale
}

// Equal reports whether p and q denote the same placement under the
// tolerance of EqualWithin.
func (p Placement) Equal(q Placement) bool {
	return EqualWithin(p.X, q.X) && EqualWithin(p.Width, q.Width)
}

// DedupPlacements returns a new slice with tolerance-equal duplicates
// removed, preserving first-occurrence order; ps is left untouched.
// Domains are small (tens of entries at most), so the quadratic scan is
// cheaper than any keyed structure and avoids hashing floats that only
// compare equal under tolerance.
func DedupPlacements(ps []Placement) []Placement {
	out := make([]Placement, 0, len(ps))
	for _, p := range ps {
		dup := false
		for _, q := range out {
			if p.Equal(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}

	return out
}
