// Package geom defines the geometric value types used by the day-column
// layout pipeline: Rect, the mutable per-event Frame, and the Placement
// candidate with tolerance-based floating-point equality.
//
// Design notes:
//   - Frames are identified by their integer ID, never by pointer identity;
//     two frames are the same frame iff their IDs match.
//   - Placement values are produced by repeated division of the column
//     width, so exact float comparison is meaningless; Equal and
//     DedupPlacements compare under a fixed relative tolerance instead.
//   - Only X and Width of a Frame mutate after construction; Y and Height
//     are fixed by the event's time interval.
package geom
