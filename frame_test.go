package daygrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// day anchors test events on an arbitrary date; only the time of day
// matters for layout.
var day = time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func TestHourOfDay(t *testing.T) {
	assert.Equal(t, 0.0, hourOfDay(at(0, 0)))
	assert.Equal(t, 9.5, hourOfDay(at(9, 30)))
	assert.InDelta(t, 23.999, hourOfDay(at(23, 59).Add(56400*time.Millisecond)), 1e-3)
}

// TestBuildFrame maps a 9:30–11:00 event into a 2400-high, 400-wide column:
// hourHeight 100, so y=950, height=150.
func TestBuildFrame(t *testing.T) {
	cfg := Config{ColumnWidth: 400, ColumnHeight: 2400}
	f := buildFrame(Event{ID: 3, Start: at(9, 30), End: at(11, 0)}, cfg)

	assert.Equal(t, 3, f.ID)
	assert.Equal(t, 0.0, f.X)
	assert.Equal(t, 400.0, f.Width)
	assert.InDelta(t, 950, f.Y, 1e-9)
	assert.InDelta(t, 150, f.Height, 1e-9)
}

// TestBuildFrame_ZeroDuration: zero-length events become zero-height frames
// and are still valid pipeline input.
func TestBuildFrame_ZeroDuration(t *testing.T) {
	cfg := Config{ColumnWidth: 400, ColumnHeight: 2400}
	f := buildFrame(Event{ID: 1, Start: at(12, 0), End: at(12, 0)}, cfg)

	assert.Equal(t, 0.0, f.Height)
	assert.InDelta(t, 1200, f.Y, 1e-9)
}

// TestBuildFrame_MidnightEnd: an event ending at 0:00 next day keeps its
// real duration instead of wrapping to zero.
func TestBuildFrame_MidnightEnd(t *testing.T) {
	cfg := Config{ColumnWidth: 400, ColumnHeight: 2400}
	f := buildFrame(Event{ID: 1, Start: at(23, 0), End: day.AddDate(0, 0, 1)}, cfg)

	assert.InDelta(t, 2300, f.Y, 1e-9)
	assert.InDelta(t, 100, f.Height, 1e-9)
}
