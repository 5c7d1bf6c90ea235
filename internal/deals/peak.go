package deals

import (
	"sort"

	"dealfinder/internal/restaurant"
	"dealfinder/internal/timeofday"
)

// boundaryEvent marks a deal starting or ending.
type boundaryEvent struct {
	at    timeofday.TimeOfDay
	start bool
}

// sortEvents orders by time; at the same minute ends come before starts so
// a deal ending exactly when another begins never counts as an overlap.
func sortEvents(events []boundaryEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].at != events[j].at {
			return events[i].at < events[j].at
		}
		return !events[i].start && events[j].start
	})
}

// FindPeakWindow returns the earliest window in which the largest number of
// deals run at the same time. It returns nil when the snapshot has no deals.
//
// Quantity is not considered: a sold-out deal still has a published window.
func FindPeakWindow(snap *restaurant.Snapshot) (*PeakWindow, error) {
	if snap == nil {
		return nil, nil
	}

	events := make([]boundaryEvent, 0, 2*snap.DealCount())
	for _, r := range snap.Restaurants {
		for _, d := range r.Deals {
			interval, err := ResolveInterval(r, d)
			if err != nil {
				return nil, err
			}
			// deals spanning midnight are not supported
			if interval.Inverted() {
				continue
			}
			events = append(events,
				boundaryEvent{at: interval.Start, start: true},
				boundaryEvent{at: interval.End, start: false},
			)
		}
	}

	sortEvents(events)
	return sweep(events), nil
}

// sweep walks sorted events and keeps the first window recorded at the
// highest overlap level seen.
func sweep(events []boundaryEvent) *PeakWindow {
	var (
		active, peak int
		openedAt     *timeofday.TimeOfDay
		best         *PeakWindow
	)

	for _, e := range events {
		if e.start {
			active++
			switch {
			case active > peak:
				// a higher level invalidates anything recorded so far
				peak = active
				at := e.at
				openedAt = &at
				best = nil
			case active == peak && openedAt == nil:
				at := e.at
				openedAt = &at
			}
			continue
		}

		if active == peak && openedAt != nil {
			if best == nil {
				best = &PeakWindow{Start: *openedAt, End: e.at, Overlap: peak}
			}
			openedAt = nil
		}
		active--
	}

	return best
}
