package sweep

import (
	"sort"

	"github.com/katalvlaran/daygrid/geom"
)

// Detect runs one sweep-line pass over frames and returns the finishing
// order, the collision matrix, and the collided flag. Frames flagged as
// concurrent have their widths shrunk in place to an equal share of
// columnWidth (a width never grows back).
//
// Contracts:
//   - frames must have distinct IDs; Y/Height are read, X is untouched,
//     Width may shrink.
//   - columnWidth must be positive (enforced by the caller's config).
//   - Deterministic: equal coordinates order bottom-before-top, then by
//     frame id ascending, so identical inputs always produce identical
//     results.
//
// Complexity: O(n log n) sort + O(k²) pair bookkeeping (k = max overlap).
func Detect(frames []*geom.Frame, columnWidth float64) Result {
	res := Result{
		Order:  make([]*geom.Frame, 0, len(frames)),
		Matrix: NewCollisionMatrix(),
	}

	points := make([]endPoint, 0, 2*len(frames))
	for _, f := range frames {
		points = append(points,
			endPoint{y: f.Top(), frame: f, start: true},
			endPoint{y: f.Bottom(), frame: f, start: false},
		)
	}

	// Bottom edges sort before top edges at the same coordinate: touching
	// intervals (A ends exactly where B starts) must not collide.
	sort.Slice(points, func(i, j int) bool {
		a, b := points[i], points[j]
		if a.y != b.y {
			return a.y < b.y
		}
		if a.start != b.start {
			return !a.start
		}

		return a.frame.ID < b.frame.ID
	})

	var active []*geom.Frame
	retired := make(map[int]bool, len(frames))
	for _, pt := range points {
		if pt.start {
			if len(active) > 0 {
				res.Collided = true
				share := columnWidth / float64(len(active)+1)
				for _, af := range active {
					if share < af.Width {
						af.Width = share
					}
					res.Matrix.Mark(af.ID, pt.frame.ID)
				}
				pt.frame.Width = share
			}
			// A zero-height frame's bottom edge sorts before its own top
			// edge, so the frame is already retired here: it still shares
			// width with whatever is active, but must never (re)enter the
			// active set — it would stay there for the rest of the day.
			if !retired[pt.frame.ID] {
				active = append(active, pt.frame)
			}
			continue
		}

		// Bottom edge: retire the frame into the finishing order. Only
		// active frames shrink, so once retired a width can change just
		// one more time: a zero-height frame's own start point, which
		// sorts right after this edge.
		retired[pt.frame.ID] = true
		for i, af := range active {
			if af.ID == pt.frame.ID {
				active = append(active[:i], active[i+1:]...)
				break
			}
		}
		res.Order = append(res.Order, pt.frame)
	}

	return res
}
