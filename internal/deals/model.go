package deals

import "dealfinder/internal/timeofday"

// Interval is a deal's effective window, [Start, End) in local time of day.
type Interval struct {
	Start timeofday.TimeOfDay
	End   timeofday.TimeOfDay
}

// Inverted reports whether the interval ends before it starts, i.e. it
// would span midnight.
func (i Interval) Inverted() bool {
	return i.Start.After(i.End)
}

// --------------------------------------------------
// ACTIVE DEALS (READ-ONLY)
// --------------------------------------------------

// ActiveDeal is the flattened restaurant + deal view of one active deal.
type ActiveDeal struct {
	RestaurantObjectID string `json:"restaurantObjectId"`
	RestaurantName     string `json:"restaurantName"`
	RestaurantAddress1 string `json:"restaurantAddress1"`
	RestaurantSuburb   string `json:"restaurantSuburb"`
	RestaurantOpen     string `json:"restaurantOpen"`
	RestaurantClose    string `json:"restaurantClose"`

	DealObjectID string `json:"dealObjectId"`
	Discount     string `json:"discount"`
	DineIn       bool   `json:"dineIn"`
	Lightning    bool   `json:"lightning"`
	QtyLeft      int64  `json:"qtyLeft"`
}

type ActiveDealsResponse struct {
	Deals []ActiveDeal `json:"deals"`
}

// --------------------------------------------------
// PEAK WINDOW (READ-ONLY)
// --------------------------------------------------

// PeakWindow is the first window with the highest number of
// simultaneously running deals.
type PeakWindow struct {
	Start   timeofday.TimeOfDay
	End     timeofday.TimeOfDay
	Overlap int
}

// PeakWindowResponse is empty ({}) when there is no window.
type PeakWindowResponse struct {
	PeakTimeStart *timeofday.TimeOfDay `json:"peakTimeStart,omitempty"`
	PeakTimeEnd   *timeofday.TimeOfDay `json:"peakTimeEnd,omitempty"`
}

func NewPeakWindowResponse(w *PeakWindow) PeakWindowResponse {
	if w == nil {
		return PeakWindowResponse{}
	}
	start, end := w.Start, w.End
	return PeakWindowResponse{PeakTimeStart: &start, PeakTimeEnd: &end}
}
