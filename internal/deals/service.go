package deals

import (
	"context"
	"log"

	"dealfinder/internal/core"
	"dealfinder/internal/timeofday"
)

type Service struct {
	snapshots core.SnapshotReader
}

func NewService(snapshots core.SnapshotReader) *Service {
	return &Service{snapshots: snapshots}
}

// --------------------------------------------------
// Active deals at a time of day
// --------------------------------------------------
func (s *Service) ActiveDealsAt(
	ctx context.Context,
	at timeofday.TimeOfDay,
) (*ActiveDealsResponse, error) {

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	active, err := ActiveDeals(snap, at)
	if err != nil {
		log.Printf("[DEALS] active deals at %s failed: %v", at, err)
		return nil, err
	}

	log.Printf(
		"[DEALS] active at %s → %d of %d deals",
		at, len(active), snap.DealCount(),
	)

	return &ActiveDealsResponse{Deals: active}, nil
}

// --------------------------------------------------
// Peak deal window
// --------------------------------------------------
func (s *Service) PeakWindow(ctx context.Context) (*PeakWindow, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	window, err := FindPeakWindow(snap)
	if err != nil {
		log.Printf("[DEALS] peak window failed: %v", err)
		return nil, err
	}

	if window == nil {
		log.Printf("[DEALS] peak window: no deals in feed")
		return nil, nil
	}

	log.Printf(
		"[DEALS] peak window %s-%s overlap=%d",
		window.Start, window.End, window.Overlap,
	)

	return window, nil
}
