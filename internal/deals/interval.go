package deals

import (
	"strings"

	"dealfinder/internal/restaurant"
	"dealfinder/internal/timeofday"
)

// ResolveInterval works out when a deal runs.
//
//	start: deal start -> deal open -> restaurant open
//	end:   deal end   -> deal close -> restaurant close
//
// Each bound is resolved on its own and only the chosen value is parsed.
func ResolveInterval(r restaurant.Restaurant, d restaurant.Deal) (Interval, error) {
	start, err := timeofday.Parse(firstPresent(d.Start, d.Open, r.Open))
	if err != nil {
		return Interval{}, err
	}

	end, err := timeofday.Parse(firstPresent(d.End, d.Close, r.Close))
	if err != nil {
		return Interval{}, err
	}

	return Interval{Start: start, End: end}, nil
}

// firstPresent returns the first non-blank value, or the last one
// so that a blank fallback still surfaces as a parse error.
func firstPresent(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return values[len(values)-1]
}
