package solver

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for the placement search.
var (
	// ErrTimeLimit is returned when the wall-clock budget expired before
	// the search finished. Frames hold the best-effort prefix assignment.
	ErrTimeLimit = errors.New("solver: time limit exceeded")

	// ErrUnsolvable is returned when the search exhausted every candidate
	// combination without finding a consistent assignment. Frames are left
	// in their sweep state and may still overlap.
	ErrUnsolvable = errors.New("solver: no consistent assignment")
)

// DefaultTimeLimit is the wall-clock budget applied when Options.TimeLimit
// is left at its default.
const DefaultTimeLimit = 15 * time.Second

// DefaultEpsilon is the absolute tolerance used when testing two horizontal
// ranges for overlap: ranges that merely touch (shared boundary within the
// tolerance) do not overlap.
const DefaultEpsilon = 1e-9

// Options configures one placement search.
//
// Fields:
//   - TimeLimit — soft wall-clock budget; values ≤ 0 disable the deadline.
//   - Eps       — overlap tolerance; values ≤ 0 fall back to DefaultEpsilon.
//   - Ctx       — external cancellation; nil defaults to context.Background().
type Options struct {
	TimeLimit time.Duration
	Eps       float64
	Ctx       context.Context
}

// DefaultOptions returns the options used by the calculation job unless
// overridden: DefaultTimeLimit budget, DefaultEpsilon tolerance.
func DefaultOptions() Options {
	return Options{TimeLimit: DefaultTimeLimit, Eps: DefaultEpsilon}
}

// normalize fills zero values with their documented defaults.
func (o Options) normalize() Options {
	if o.Eps <= 0 {
		o.Eps = DefaultEpsilon
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return o
}
