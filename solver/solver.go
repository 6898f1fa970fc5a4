package solver

import (
	"context"
	"time"

	"github.com/katalvlaran/daygrid/geom"
	"github.com/katalvlaran/daygrid/sweep"
)

// engine holds all search data for one Solve call. A dedicated struct
// (instead of closures) keeps hot-path state predictable and the abort
// paths explicit.
type engine struct {
	order   []*geom.Frame
	domains [][]geom.Placement
	matrix  *sweep.CollisionMatrix
	eps     float64

	// Assignment table indexed by depth. Candidates are written here, not
	// to the frames, so a failed or aborted search never leaves stale
	// partial placements behind.
	assign []geom.Placement
	set    []bool

	// Budget and external cancellation, both checked once per candidate.
	useDeadline bool
	deadline    time.Time
	ctx         context.Context
	abortErr    error
}

// expired reports whether the search must stop, recording the reason.
func (e *engine) expired() bool {
	if e.abortErr != nil {
		return true
	}
	if err := e.ctx.Err(); err != nil {
		e.abortErr = err
		return true
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.abortErr = ErrTimeLimit
		return true
	}

	return false
}

// overlaps reports whether two horizontal ranges [x, x+w) intersect by more
// than the tolerance. Touching ranges do not overlap.
func (e *engine) overlaps(a, b geom.Placement) bool {
	return a.X < b.X+b.Width-e.eps && b.X < a.X+a.Width-e.eps
}

// consistent checks the candidate at depth against every earlier-assigned
// variable the matrix flags as possibly colliding.
func (e *engine) consistent(depth int) bool {
	id := e.order[depth].ID
	for j := 0; j < depth; j++ {
		if e.matrix.Collides(id, e.order[j].ID) && e.overlaps(e.assign[depth], e.assign[j]) {
			return false
		}
	}

	return true
}

// dfs tries every candidate at depth in domain order, recursing on the
// first consistent one. Success propagates upward without trying further
// candidates; an abort (deadline or cancellation) unwinds the whole search.
func (e *engine) dfs(depth int) bool {
	if depth == len(e.order) {
		return true
	}
	for _, cand := range e.domains[depth] {
		if e.expired() {
			return false
		}
		e.assign[depth] = cand
		e.set[depth] = true
		if e.consistent(depth) {
			if e.dfs(depth + 1) {
				return true
			}
			if e.abortErr != nil {
				return false
			}
		}
		e.set[depth] = false
	}

	return false
}

// Solve assigns a placement to every frame in res.Order so that all pairs
// flagged by res.Matrix get disjoint horizontal ranges, then writes the
// assignment to the frames.
//
// Contracts:
//   - res must come from sweep.Detect over frames inside a column of
//     columnWidth; res.Order and widths are trusted as-is.
//   - Deterministic for a given res, columnWidth and options (modulo the
//     wall clock): fixed variable order, fixed domain order.
//
// Returns:
//   - nil on success (full assignment applied);
//   - Options.Ctx's error on cancellation (consistent prefix applied);
//   - ErrTimeLimit on budget expiry (consistent prefix applied);
//   - ErrUnsolvable on exhaustion (nothing applied — the frames keep their
//     sweep-shrunk, left-aligned state, which may overlap).
//
// Complexity: worst case exponential in len(res.Order); domains are kept
// small by the generation heuristic and the budget caps the damage.
func Solve(res sweep.Result, columnWidth float64, opts Options) error {
	opts = opts.normalize()

	n := len(res.Order)
	e := engine{
		order:   res.Order,
		domains: make([][]geom.Placement, n),
		matrix:  res.Matrix,
		eps:     opts.Eps,
		assign:  make([]geom.Placement, n),
		set:     make([]bool, n),
		ctx:     opts.Ctx,
	}
	for i, f := range res.Order {
		e.domains[i] = Domain(f.Width, columnWidth)
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	if e.expired() {
		return e.abortErr
	}
	if e.dfs(0) {
		for i, f := range e.order {
			f.Apply(e.assign[i])
		}

		return nil
	}
	if e.abortErr != nil {
		// Apply the consistent prefix of the current path: a best-effort
		// layout beats discarding everything the search already settled.
		for i, f := range e.order {
			if e.set[i] {
				f.Apply(e.assign[i])
			}
		}

		return e.abortErr
	}

	return ErrUnsolvable
}
