package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/emersion/go-ical"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/daygrid"
)

// schedule is the renderer's input: column dimensions, the event set keyed
// by id, and display titles.
type schedule struct {
	Column struct {
		Width  float64
		Height float64
	}
	Events map[int]daygrid.Event
	Titles map[int]string
}

// yamlSchedule mirrors the on-disk YAML layout:
//
//	column:
//	  width: 400
//	  height: 1440
//	events:
//	  - id: 1
//	    title: Standup
//	    start: 2026-08-31T09:00:00Z
//	    end: 2026-08-31T09:30:00Z
type yamlSchedule struct {
	Column struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"column"`
	Events []struct {
		ID    int       `yaml:"id"`
		Title string    `yaml:"title"`
		Start time.Time `yaml:"start"`
		End   time.Time `yaml:"end"`
	} `yaml:"events"`
}

func loadYAMLSchedule(path string) (*schedule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	var doc yamlSchedule
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}

	s := &schedule{
		Events: make(map[int]daygrid.Event, len(doc.Events)),
		Titles: make(map[int]string, len(doc.Events)),
	}
	s.Column.Width = doc.Column.Width
	s.Column.Height = doc.Column.Height
	for _, ev := range doc.Events {
		if ev.End.Before(ev.Start) {
			return nil, fmt.Errorf("event %d ends before it starts", ev.ID)
		}
		if _, dup := s.Events[ev.ID]; dup {
			return nil, fmt.Errorf("duplicate event id %d", ev.ID)
		}
		s.Events[ev.ID] = daygrid.Event{ID: ev.ID, Start: ev.Start, End: ev.End}
		s.Titles[ev.ID] = ev.Title
	}

	return s, nil
}

// icsEvent is one VEVENT reduced to what the layout needs.
type icsEvent struct {
	uid   string
	title string
	start time.Time
	end   time.Time
}

// loadICSSchedule decodes an iCalendar file and keeps the events that
// intersect the given calendar day. Integer ids are assigned in (start,
// uid) order so repeated runs over the same file are identical.
func loadICSSchedule(path string, day time.Time) (*schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ics: %w", err)
	}
	defer f.Close()

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var kept []icsEvent
	dec := ical.NewDecoder(f)
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode ics: %w", err)
		}
		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			ev, ok := parseVEvent(comp)
			if !ok {
				continue
			}
			if !ev.start.Before(dayEnd) || !ev.end.After(dayStart) {
				continue
			}
			// Clamp to the rendered day; the column only spans 24h.
			if ev.start.Before(dayStart) {
				ev.start = dayStart
			}
			if ev.end.After(dayEnd) {
				ev.end = dayEnd
			}
			kept = append(kept, ev)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		if !kept[i].start.Equal(kept[j].start) {
			return kept[i].start.Before(kept[j].start)
		}

		return kept[i].uid < kept[j].uid
	})

	s := &schedule{
		Events: make(map[int]daygrid.Event, len(kept)),
		Titles: make(map[int]string, len(kept)),
	}
	for i, ev := range kept {
		id := i + 1
		s.Events[id] = daygrid.Event{ID: id, Start: ev.start, End: ev.end}
		s.Titles[id] = ev.title
	}

	return s, nil
}

func parseVEvent(comp *ical.Component) (icsEvent, bool) {
	var ev icsEvent
	if p := comp.Props.Get(ical.PropUID); p != nil {
		ev.uid = p.Value
	}
	if p := comp.Props.Get(ical.PropSummary); p != nil {
		ev.title = p.Value
	}
	if p := comp.Props.Get(ical.PropDateTimeStart); p != nil {
		if t, err := p.DateTime(time.Local); err == nil {
			ev.start = t
		}
	}
	if p := comp.Props.Get(ical.PropDateTimeEnd); p != nil {
		if t, err := p.DateTime(time.Local); err == nil {
			ev.end = t
		}
	}
	if ev.start.IsZero() || ev.end.IsZero() || ev.end.Before(ev.start) {
		return icsEvent{}, false
	}

	return ev, true
}
