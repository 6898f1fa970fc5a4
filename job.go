package daygrid

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/daygrid/geom"
	"github.com/katalvlaran/daygrid/solver"
	"github.com/katalvlaran/daygrid/sweep"
)

// Job is one asynchronous layout calculation. A job owns its frames,
// matrix and solver state exclusively for its whole lifetime, runs on a
// dedicated goroutine, and delivers exactly one result through its
// callback. Issuing a new calculation for the same logical column while a
// previous one is outstanding is a caller error unless the previous one
// was cancelled first; the job itself does not enforce that.
type Job struct {
	id  uuid.UUID
	cfg Config
	cb  Callback

	exec Executor
	log  zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	solverOpts solver.Options
}

// NewJob validates the configuration and prepares a job. The callback will
// be invoked exactly once after Start, with a nil Solution if the job was
// cancelled first.
func NewJob(cfg Config, cb Callback, opts ...Option) (*Job, error) {
	if cfg.ColumnWidth <= 0 || cfg.ColumnHeight <= 0 {
		return nil, ErrNonPositiveColumn
	}
	if cb == nil {
		return nil, ErrNilCallback
	}

	ctx, cancel := context.WithCancel(context.Background())
	j := &Job{
		id:         uuid.New(),
		cfg:        cfg,
		cb:         cb,
		exec:       func(run func()) { run() },
		log:        zerolog.Nop(),
		ctx:        ctx,
		cancel:     cancel,
		solverOpts: solver.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(j)
	}
	j.log = j.log.With().Str("job", j.id.String()).Logger()

	return j, nil
}

// ID returns the job's identity, stamped on its log lines.
func (j *Job) ID() uuid.UUID { return j.id }

// Start launches the calculation on a background goroutine and returns
// immediately. Call it once per job.
func (j *Job) Start(events map[int]Event) {
	go j.run(events)
}

// Cancel requests early termination. It is idempotent, safe to call
// concurrently with the running job, and a no-op after completion. The
// worker observes the flag at coarse granularity (before starting and once
// per candidate trial), so a late observation can at worst deliver one
// stale result, never corrupt state.
func (j *Job) Cancel() {
	j.cancel()
}

// run executes the whole pipeline: build frames, sweep, solve if needed,
// deliver once.
func (j *Job) run(events map[int]Event) {
	if j.ctx.Err() != nil {
		j.deliver(nil)
		return
	}
	if len(events) == 0 {
		j.deliver(Solution{})
		return
	}

	// Frames are built in ascending event-id order so the whole pipeline
	// is deterministic for a given input map.
	ids := make([]int, 0, len(events))
	for id := range events {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	frames := make([]*geom.Frame, 0, len(events))
	for _, id := range ids {
		frames = append(frames, buildFrame(events[id], j.cfg))
	}

	res := sweep.Detect(frames, j.cfg.ColumnWidth)
	if res.Collided {
		opts := j.solverOpts
		opts.Ctx = j.ctx
		err := solver.Solve(res, j.cfg.ColumnWidth, opts)
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			j.log.Debug().Msg("layout cancelled mid-search")
			j.deliver(nil)
			return
		default:
			// Timeout or exhaustion: still deliver what we have. The
			// layout may contain overlapping rectangles.
			j.log.Warn().Err(err).Int("events", len(frames)).
				Msg("placement search incomplete, delivering best-effort layout")
		}
	}

	if j.ctx.Err() != nil {
		j.deliver(nil)
		return
	}

	sol := make(Solution, len(frames))
	for _, f := range frames {
		sol[f.ID] = f.Rect
	}
	j.deliver(sol)
}

// deliver hands the result to the callback exactly once, blocking until
// the executor has run it.
func (j *Job) deliver(sol Solution) {
	j.once.Do(func() {
		j.exec(func() { j.cb(j, sol) })
	})
}
