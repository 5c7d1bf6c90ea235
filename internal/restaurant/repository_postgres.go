package restaurant

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List restaurants with their deals (feed order)
// --------------------------------------------------
func (r *PostgresRepository) ListWithDeals(ctx context.Context) ([]Restaurant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			object_id,
			name,
			address1,
			suburb,
			cuisines,
			image_link,
			open_time,
			close_time
		FROM feed_restaurants
		ORDER BY position, object_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []Restaurant{}
	index := map[string]int{}

	for rows.Next() {
		var res Restaurant
		if err := rows.Scan(
			&res.ObjectID,
			&res.Name,
			&res.Address1,
			&res.Suburb,
			&res.Cuisines,
			&res.ImageLink,
			&res.Open,
			&res.Close,
		); err != nil {
			return nil, err
		}
		index[res.ObjectID] = len(restaurants)
		restaurants = append(restaurants, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	deals, err := r.db.Query(ctx, `
		SELECT
			restaurant_id,
			object_id,
			discount,
			dine_in,
			lightning,
			qty_left,
			start_time,
			end_time,
			open_time,
			close_time
		FROM feed_deals
		ORDER BY restaurant_id, position, object_id
	`)
	if err != nil {
		return nil, err
	}
	defer deals.Close()

	for deals.Next() {
		var (
			restaurantID  string
			d             Deal
			start, end    *string
			opens, closes *string
		)
		if err := deals.Scan(
			&restaurantID,
			&d.ObjectID,
			&d.Discount,
			&d.DineIn,
			&d.Lightning,
			&d.QtyLeft,
			&start,
			&end,
			&opens,
			&closes,
		); err != nil {
			return nil, err
		}

		i, ok := index[restaurantID]
		if !ok {
			// orphaned deal, FK should prevent this
			continue
		}

		d.Start = deref(start)
		d.End = deref(end)
		d.Open = deref(opens)
		d.Close = deref(closes)

		restaurants[i].Deals = append(restaurants[i].Deals, d)
	}

	return restaurants, deals.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
