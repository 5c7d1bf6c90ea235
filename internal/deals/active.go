package deals

import (
	"dealfinder/internal/restaurant"
	"dealfinder/internal/timeofday"
)

// IsActive reports whether a deal can be claimed at the given time.
//
// The decision rests on the resolved deal interval alone, and its
// boundaries are exclusive: a deal is not active at the exact minute it
// starts or ends. Restaurant hours only matter when the deal falls back
// to them.
func IsActive(r restaurant.Restaurant, d restaurant.Deal, at timeofday.TimeOfDay) (bool, error) {
	// sold out
	if d.QtyLeft <= 0 {
		return false, nil
	}

	interval, err := ResolveInterval(r, d)
	if err != nil {
		return false, err
	}

	return within(interval, at), nil
}

// ActiveDeals flattens the snapshot into the deals active at the given time,
// keeping restaurant order and then deal order.
func ActiveDeals(snap *restaurant.Snapshot, at timeofday.TimeOfDay) ([]ActiveDeal, error) {
	active := []ActiveDeal{}
	if snap == nil {
		return active, nil
	}

	for _, r := range snap.Restaurants {
		for _, d := range r.Deals {
			ok, err := IsActive(r, d, at)
			if err != nil {
				return nil, err
			}
			if ok {
				active = append(active, toActiveDeal(r, d))
			}
		}
	}

	return active, nil
}

func within(i Interval, at timeofday.TimeOfDay) bool {
	return i.Start.Before(at) && at.Before(i.End)
}

func toActiveDeal(r restaurant.Restaurant, d restaurant.Deal) ActiveDeal {
	return ActiveDeal{
		RestaurantObjectID: r.ObjectID,
		RestaurantName:     r.Name,
		RestaurantAddress1: r.Address1,
		RestaurantSuburb:   r.Suburb,
		RestaurantOpen:     r.Open,
		RestaurantClose:    r.Close,
		DealObjectID:       d.ObjectID,
		Discount:           d.Discount,
		DineIn:             d.DineIn,
		Lightning:          d.Lightning,
		QtyLeft:            d.QtyLeft,
	}
}
