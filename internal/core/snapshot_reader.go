package core

import (
	"context"

	"dealfinder/internal/restaurant"
)

// SnapshotReader hands out a consistent copy of the restaurant feed.
// Callers must treat the returned snapshot as read-only.
type SnapshotReader interface {
	Snapshot(ctx context.Context) (*restaurant.Snapshot, error)
}
