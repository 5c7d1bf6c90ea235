package feed

import (
	"context"
	"log"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
)

// Refresher reloads the cached snapshot on a cron schedule so requests
// rarely wait on the upstream feed.
type Refresher struct {
	cron    *cron.Cron
	reader  *CachingReader
	spec    string
	timeout time.Duration
}

func NewRefresher(reader *CachingReader, spec string, timeout time.Duration) *Refresher {
	return &Refresher{
		cron:    cron.New(),
		reader:  reader,
		spec:    spec,
		timeout: timeout,
	}
}

// Start registers the refresh job and starts the scheduler.
func (r *Refresher) Start() error {
	if _, err := r.cron.AddFunc(r.spec, r.refresh); err != nil {
		return errors.Wrapf(err, "register feed refresh %q", r.spec)
	}
	r.cron.Start()
	log.Printf("[CRON] feed refresh scheduled (%s)", r.spec)
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	log.Println("[CRON] feed refresh stopped")
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.reader.Refresh(ctx); err != nil {
		log.Printf("[CRON] feed refresh failed, keeping cached snapshot: %v", err)
	}
}
