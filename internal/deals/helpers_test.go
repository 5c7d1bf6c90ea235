package deals

import (
	"dealfinder/internal/restaurant"
	"dealfinder/internal/timeofday"
)

func createRestaurant(name, opens, closes string, deals ...restaurant.Deal) restaurant.Restaurant {
	return restaurant.Restaurant{
		ObjectID: name + "-id",
		Name:     name,
		Address1: "1 Test Street",
		Suburb:   "Testville",
		Open:     opens,
		Close:    closes,
		Deals:    deals,
	}
}

func createDeal(start, end, opens, closes string, qty int64) restaurant.Deal {
	return restaurant.Deal{
		ObjectID: "deal-" + start + opens,
		Discount: "20",
		Start:    start,
		End:      end,
		Open:     opens,
		Close:    closes,
		QtyLeft:  qty,
	}
}

func snapshotOf(restaurants ...restaurant.Restaurant) *restaurant.Snapshot {
	return &restaurant.Snapshot{Restaurants: restaurants}
}

func at(s string) timeofday.TimeOfDay {
	return timeofday.MustParse(s)
}
