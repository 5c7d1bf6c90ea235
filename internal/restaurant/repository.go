package restaurant

import "context"

// Repository is the read side of a stored feed.
type Repository interface {
	// ListWithDeals returns every restaurant with its deals, in feed order.
	ListWithDeals(ctx context.Context) ([]Restaurant, error)
}
