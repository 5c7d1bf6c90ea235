package feed

import (
	"context"
	"log"
	"time"

	"dealfinder/internal/core"
	"dealfinder/internal/restaurant"

	"github.com/maypok86/otter/v2"
)

const snapshotKey = "restaurants"

// CachingReader keeps the last snapshot for a TTL. Concurrent misses share
// one load from the source; a failed load is not cached.
type CachingReader struct {
	source core.SnapshotReader
	cache  *otter.Cache[string, *restaurant.Snapshot]
	loader otter.LoaderFunc[string, *restaurant.Snapshot]
	ttl    time.Duration
}

func NewCachingReader(source core.SnapshotReader, ttl time.Duration) *CachingReader {
	c := &CachingReader{
		source: source,
		ttl:    ttl,
		cache: otter.Must(&otter.Options[string, *restaurant.Snapshot]{
			MaximumSize:      16,
			ExpiryCalculator: otter.ExpiryWriting[string, *restaurant.Snapshot](ttl),
		}),
	}

	c.loader = func(ctx context.Context, _ string) (*restaurant.Snapshot, error) {
		snap, err := c.source.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		log.Printf("[FEED] cached snapshot restaurants=%d deals=%d ttl=%s",
			len(snap.Restaurants), snap.DealCount(), c.ttl)
		return snap, nil
	}

	return c
}

// Snapshot returns the cached snapshot, loading it on a miss.
func (c *CachingReader) Snapshot(ctx context.Context) (*restaurant.Snapshot, error) {
	return c.cache.Get(ctx, snapshotKey, c.loader)
}

// Refresh reloads the snapshot from the source and replaces the cached copy.
// On failure the previous copy stays in place until it expires.
func (c *CachingReader) Refresh(ctx context.Context) error {
	snap, err := c.source.Snapshot(ctx)
	if err != nil {
		return err
	}
	c.cache.Set(snapshotKey, snap)
	log.Printf("[FEED] refreshed snapshot restaurants=%d deals=%d",
		len(snap.Restaurants), snap.DealCount())
	return nil
}

// Invalidate drops the cached snapshot.
func (c *CachingReader) Invalidate() {
	c.cache.Invalidate(snapshotKey)
}
