package feed

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"dealfinder/internal/restaurant"

	"github.com/cockroachdb/errors"
	"github.com/codeGROOVE-dev/retry"
)

const (
	defaultAttempts   = 3
	defaultRetryDelay = 500 * time.Millisecond
	maxErrorBody      = 512
)

// HTTPSource fetches the restaurant feed from the upstream service.
// Transport errors and 5xx answers are retried with backoff, 4xx are not.
type HTTPSource struct {
	url        string
	client     *http.Client
	attempts   uint
	retryDelay time.Duration
}

func NewHTTPSource(url string, timeout time.Duration, attempts uint) *HTTPSource {
	if attempts == 0 {
		attempts = defaultAttempts
	}
	return &HTTPSource{
		url:        url,
		client:     &http.Client{Timeout: timeout},
		attempts:   attempts,
		retryDelay: defaultRetryDelay,
	}
}

func (s *HTTPSource) Snapshot(ctx context.Context) (*restaurant.Snapshot, error) {
	var snap *restaurant.Snapshot

	err := retry.Do(
		func() error {
			decoded, err := s.fetch(ctx)
			if err != nil {
				return err
			}
			snap = decoded
			return nil
		},
		retry.Attempts(s.attempts),
		retry.Delay(s.retryDelay),
		retry.MaxDelay(10*time.Second),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("[FEED] retrying %s attempt=%d error=%v", s.url, n+1, err)
		}),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch restaurant feed from %s", s.url)
	}

	log.Printf("[FEED] fetched %d restaurants from upstream", len(snap.Restaurants))
	return snap, nil
}

func (s *HTTPSource) fetch(ctx context.Context) (*restaurant.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := errors.Wrapf(
			ErrUpstream,
			"status %d: %s",
			resp.StatusCode,
			strings.TrimSpace(string(body)),
		)
		if resp.StatusCode < http.StatusInternalServerError {
			return nil, retry.Unrecoverable(statusErr)
		}
		return nil, statusErr
	}

	snap, err := decodeSnapshot(resp.Body)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}
	return snap, nil
}
