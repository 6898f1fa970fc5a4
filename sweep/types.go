package sweep

import "github.com/katalvlaran/daygrid/geom"

// endPoint is a transient sweep event: one edge of one frame. It exists
// only while Detect runs.
type endPoint struct {
	y     float64
	frame *geom.Frame
	start bool // true for a top edge, false for a bottom edge
}

// CollisionMatrix is a symmetric boolean relation over frame ids marking
// pairs the sweep found possibly overlapping. It is keyed by id, never by
// frame identity, so structurally equal frames always agree.
type CollisionMatrix struct {
	pairs map[int]map[int]struct{}
}

// NewCollisionMatrix returns an empty matrix.
func NewCollisionMatrix() *CollisionMatrix {
	return &CollisionMatrix{pairs: make(map[int]map[int]struct{})}
}

// Mark records that frames a and b possibly collide, in both directions.
func (m *CollisionMatrix) Mark(a, b int) {
	m.markOne(a, b)
	m.markOne(b, a)
}

func (m *CollisionMatrix) markOne(a, b int) {
	row, ok := m.pairs[a]
	if !ok {
		row = make(map[int]struct{})
		m.pairs[a] = row
	}
	row[b] = struct{}{}
}

// Collides reports whether the pair (a, b) was marked.
func (m *CollisionMatrix) Collides(a, b int) bool {
	_, ok := m.pairs[a][b]

	return ok
}

// Result is the outcome of one sweep pass.
type Result struct {
	// Order lists the frames in finishing order (ascending bottom edge,
	// ids ascending on ties). This is the solver's variable order.
	Order []*geom.Frame

	// Matrix holds the possibly-colliding pairs discovered by the sweep.
	Matrix *CollisionMatrix

	// Collided is true if any two frames overlapped in time. When false,
	// every frame still has full column width and no solving is needed.
	Collided bool
}
