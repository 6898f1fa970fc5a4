package daygrid_test

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/daygrid"
)

// ExampleNewJob lays out three staircase events: A and B overlap, B and C
// overlap, A and C merely touch.
func ExampleNewJob() {
	day := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	done := make(chan daygrid.Solution, 1)
	job, err := daygrid.NewJob(
		daygrid.Config{ColumnWidth: 400, ColumnHeight: 2400},
		func(_ *daygrid.Job, sol daygrid.Solution) { done <- sol },
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	job.Start(map[int]daygrid.Event{
		1: {ID: 1, Start: at(9, 0), End: at(10, 0)},
		2: {ID: 2, Start: at(9, 30), End: at(10, 30)},
		3: {ID: 3, Start: at(10, 0), End: at(11, 0)},
	})
	sol := <-done

	ids := make([]int, 0, len(sol))
	for id := range sol {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		r := sol[id]
		fmt.Printf("event %d: x=%.0f width=%.0f\n", id, r.X, r.Width)
	}

	// Output:
	// event 1: x=0 width=200
	// event 2: x=200 width=200
	// event 3: x=0 width=200
}
