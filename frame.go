package daygrid

import (
	"time"

	"github.com/katalvlaran/daygrid/geom"
)

// hourOfDay converts an instant to a fractional hour offset in [0, 24).
// The conversion is deterministic: it reads the wall clock of t in its own
// location, so the same instant always maps to the same offset.
func hourOfDay(t time.Time) float64 {
	return float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/(3600*1e9)
}

// buildFrame converts one event into its initial frame: full column width,
// vertical extent fixed by the event's times. Duration is taken as
// End−Start rather than the difference of day offsets, so an event ending
// on midnight of the next day keeps its real height instead of collapsing
// to zero. Zero-duration events produce zero-height frames and flow
// through the pipeline like any other.
func buildFrame(ev Event, cfg Config) *geom.Frame {
	hourHeight := cfg.ColumnHeight / HoursPerDay
	startHour := hourOfDay(ev.Start)
	duration := ev.End.Sub(ev.Start).Hours()

	return geom.NewFrame(
		ev.ID,
		0,
		hourHeight*startHour,
		cfg.ColumnWidth,
		hourHeight*duration,
	)
}
