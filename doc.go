// Package daygrid computes non-overlapping horizontal placements for
// time-interval events rendered in a single vertical day column.
//
// 🚀 What is daygrid?
//
//	Each event's vertical position and height are fixed by its start/end
//	time; daygrid partitions the column width among events that overlap in
//	time so that no two rectangles intersect, and leaves full-width frames
//	untouched when nothing overlaps. It favors a fast, good-enough
//	partition over a provably minimal one, and every calculation can be
//	cancelled mid-flight because layouts are recomputed on every content
//	change.
//
// ✨ Pipeline:
//   - frame building — time interval → rectangle (geom)
//   - sweep-line collision detection — concurrent frames share the column
//     width and land in a symmetric collision matrix (sweep)
//   - candidate generation + backtracking search — one (x, width) per
//     frame, widest-first, under a soft wall-clock budget (solver)
//   - asynchronous Job — one goroutine per calculation, idempotent
//     Cancel, exactly-once result delivery through a pluggable executor
//
// ⚙️ Usage:
//
//	job, err := daygrid.NewJob(
//		daygrid.Config{ColumnWidth: 400, ColumnHeight: 2400},
//		func(j *daygrid.Job, sol daygrid.Solution) {
//			if sol == nil {
//				return // cancelled
//			}
//			for id, r := range sol {
//				draw(id, r)
//			}
//		},
//	)
//	if err != nil { ... }
//	job.Start(events) // map[int]daygrid.Event
//	// later, e.g. when the content changes again:
//	job.Cancel()
//
// Outcomes are limited to a full solution map, an empty map (no events),
// or a nil map (cancelled). A search that times out or exhausts its
// candidates still delivers a best-effort layout that may contain
// overlaps; that case surfaces only as a diagnostic log line.
package daygrid
