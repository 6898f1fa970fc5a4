package geom

// Rect is an axis-aligned rectangle in column coordinates: X grows to the
// right, Y grows downward, and both dimensions are in the same unit as the
// column width/height supplied by the embedding layout.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Frame is the mutable layout rectangle of one event for the lifetime of a
// single calculation. Y and Height are fixed at construction; X and Width
// are adjusted by the collision sweep and the placement solver.
type Frame struct {
	// ID is the owning event's id, unique within one calculation.
	ID int

	Rect
}

// NewFrame constructs a frame for event id covering the given rectangle.
func NewFrame(id int, x, y, width, height float64) *Frame {
	return &Frame{ID: id, Rect: Rect{X: x, Y: y, Width: width, Height: height}}
}

// Top returns the upper edge of the frame.
func (f *Frame) Top() float64 { return f.Y }

// Bottom returns the lower edge of the frame.
func (f *Frame) Bottom() float64 { return f.Y + f.Height }

// Apply overwrites the frame's horizontal extent with the given placement.
func (f *Frame) Apply(p Placement) {
	f.X = p.X
	f.Width = p.Width
}
