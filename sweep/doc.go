// Package sweep detects time-overlaps between event frames in a single
// vertical day column with one sweep-line pass.
//
// The sweep walks the top and bottom edges of every frame in ascending
// vertical order. While a frame is "active" (its top edge seen, its bottom
// edge not yet), any newly starting frame overlaps it in time: the column
// width is re-shared equally among the concurrent frames (widths only ever
// shrink) and the pair is recorded in a symmetric collision matrix keyed by
// frame id. The matrix is a conservative superset of the pairs that still
// overlap after placement; it decides which pairs the solver must check.
//
// Boundary policy: at equal vertical coordinates a bottom edge is processed
// before a top edge, so back-to-back events that merely touch never count
// as colliding. The same ordering retires a zero-height frame before its
// own top edge is seen; such a frame still shares width with whatever is
// active at its instant, but never joins the active set itself and so
// never collides with anything merely touching it.
//
// Complexity: O(n log n) for the endpoint sort plus O(k²) bookkeeping where
// k is the largest number of simultaneously active frames.
package sweep
