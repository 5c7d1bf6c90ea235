package restaurant

// Snapshot is one immutable copy of the upstream feed.
// The JSON shape matches the upstream document.
type Snapshot struct {
	Restaurants []Restaurant `json:"restaurants"`
}

type Restaurant struct {
	ObjectID  string   `json:"objectId"`
	Name      string   `json:"name"`
	Address1  string   `json:"address1"`
	Suburb    string   `json:"suburb"`
	Cuisines  []string `json:"cuisines"`
	ImageLink string   `json:"imageLink"`

	// Operating hours, local time-of-day strings such as "3:00pm".
	Open  string `json:"open"`
	Close string `json:"close"`

	Deals []Deal `json:"deals"`
}

// Deal belongs to exactly one restaurant.
// Start/End/Open/Close are optional overrides; blank means absent.
type Deal struct {
	ObjectID  string `json:"objectId"`
	Discount  string `json:"discount"`
	DineIn    bool   `json:"dineIn"`
	Lightning bool   `json:"lightning"`
	QtyLeft   int64  `json:"qtyLeft"`

	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
	Open  string `json:"open,omitempty"`
	Close string `json:"close,omitempty"`
}

// DealCount returns the number of deals across all restaurants.
func (s *Snapshot) DealCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, r := range s.Restaurants {
		n += len(r.Deals)
	}
	return n
}
