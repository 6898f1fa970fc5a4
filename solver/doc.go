// Package solver assigns one horizontal placement per frame so that every
// pair flagged by the collision sweep ends up with disjoint horizontal
// ranges.
//
// The search is a plain depth-first backtracking over a fixed variable
// order (the sweep's finishing order). Each variable's candidate domain is
// generated by slicing the column into c equal parts for a heuristic range
// of column counts c, ordered widest-first then leftmost-first so the
// search spends the available space before reaching for finer slices.
//
// The search is deliberately approximate and bounded:
//   - the domain heuristic omits some valid finer partitions to keep the
//     search space small (a quality/performance tradeoff, not a bug);
//   - a soft wall-clock budget (Options.TimeLimit) and an external context
//     (Options.Ctx) are both checked once per candidate trial; either one
//     aborts the whole search.
//
// On success the full assignment is written to the frames. On abort the
// consistent prefix of the current search path is written, so the caller
// still gets a best-effort layout. On exhaustion nothing is written and
// the frames keep their sweep-shrunk, left-aligned state.
package solver
