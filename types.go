package daygrid

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/daygrid/geom"
)

// Sentinel errors for job construction.
var (
	// ErrNonPositiveColumn indicates a Config with a zero or negative
	// column dimension.
	ErrNonPositiveColumn = errors.New("daygrid: column width and height must be positive")

	// ErrNilCallback indicates a nil completion callback.
	ErrNilCallback = errors.New("daygrid: completion callback must not be nil")
)

// HoursPerDay fixes the vertical scale: one column spans a full day.
const HoursPerDay = 24

// Event is the read-only input record for one calendar entry. Start and
// End are instants on the same day; End at or after midnight of the next
// day is handled by carrying the duration past the start offset.
type Event struct {
	ID    int
	Start time.Time
	End   time.Time
}

// Config carries the column dimensions, constant for the duration of one
// job. Units are the embedding layout's (typically points or pixels).
type Config struct {
	ColumnWidth  float64
	ColumnHeight float64
}

// Solution maps event ids to their final rectangles. A nil Solution means
// the job was cancelled before completion; an empty one means the job had
// no events. A delivered Solution is owned by the receiver.
type Solution map[int]geom.Rect

// Callback receives the outcome of one job, exactly once per job.
type Callback func(job *Job, sol Solution)

// Executor runs the completion callback in the caller's execution context.
// The worker blocks until run returns, so delivery is a synchronous
// hand-off. The default executor runs the callback inline on the worker
// goroutine.
type Executor func(run func())

// Option configures a Job at construction time.
type Option func(*Job)

// WithLogger attaches a diagnostic logger. The job stamps its id on every
// line. Without this option the job logs nothing.
func WithLogger(logger zerolog.Logger) Option {
	return func(j *Job) {
		j.log = logger
	}
}

// WithExecutor replaces the delivery executor, e.g. to marshal the
// callback onto a UI loop.
func WithExecutor(exec Executor) Option {
	return func(j *Job) {
		if exec != nil {
			j.exec = exec
		}
	}
}

// WithTimeLimit overrides the solver's wall-clock budget. Values ≤ 0
// disable the deadline entirely.
func WithTimeLimit(d time.Duration) Option {
	return func(j *Job) {
		j.solverOpts.TimeLimit = d
	}
}
