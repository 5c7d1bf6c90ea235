package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"

	"dealfinder/internal/restaurant"

	"github.com/cockroachdb/errors"
)

// ErrUpstream marks a non-2xx answer from the upstream feed.
var ErrUpstream = errors.New("upstream feed error")

// decodeSnapshot reads the upstream document shape.
func decodeSnapshot(r io.Reader) (*restaurant.Snapshot, error) {
	var snap restaurant.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, errors.Wrap(err, "decode restaurant feed")
	}
	if snap.Restaurants == nil {
		snap.Restaurants = []restaurant.Restaurant{}
	}
	return &snap, nil
}

// --------------------------------------------------
// File source (local development, dealctl)
// --------------------------------------------------

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Snapshot(ctx context.Context) (*restaurant.Snapshot, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "open feed file %s", s.path)
	}
	defer f.Close()

	return decodeSnapshot(f)
}

// --------------------------------------------------
// Repository source (Postgres)
// --------------------------------------------------

type RepositorySource struct {
	repo restaurant.Repository
}

func NewRepositorySource(repo restaurant.Repository) *RepositorySource {
	return &RepositorySource{repo: repo}
}

func (s *RepositorySource) Snapshot(ctx context.Context) (*restaurant.Snapshot, error) {
	restaurants, err := s.repo.ListWithDeals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load restaurants from repository")
	}
	if restaurants == nil {
		restaurants = []restaurant.Restaurant{}
	}
	return &restaurant.Snapshot{Restaurants: restaurants}, nil
}

// --------------------------------------------------
// Object source (R2 / S3)
// --------------------------------------------------

// ObjectGetter is the slice of the object store the feed needs.
type ObjectGetter interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

type ObjectSource struct {
	store ObjectGetter
	key   string
}

func NewObjectSource(store ObjectGetter, key string) *ObjectSource {
	return &ObjectSource{store: store, key: key}
}

func (s *ObjectSource) Snapshot(ctx context.Context) (*restaurant.Snapshot, error) {
	body, err := s.store.Download(ctx, s.key)
	if err != nil {
		return nil, errors.Wrapf(err, "download feed object %s", s.key)
	}
	return decodeSnapshot(bytes.NewReader(body))
}
