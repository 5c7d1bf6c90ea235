package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealfinder/internal/config"
	"dealfinder/internal/core"
	"dealfinder/internal/db"
	"dealfinder/internal/deals"
	"dealfinder/internal/feed"
	"dealfinder/internal/restaurant"
	"dealfinder/internal/router"
	"dealfinder/internal/storage"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── FEED ─────────────────────────
	source, closeSource := newSource(ctx, cfg)
	defer closeSource()

	reader := feed.NewCachingReader(source, cfg.Feed.CacheTTL)

	refresher := feed.NewRefresher(reader, cfg.Feed.RefreshCron, cfg.Feed.Timeout)
	if err := refresher.Start(); err != nil {
		closeSource()
		log.Fatalf("❌ Feed refresher failed: %v", err)
	}
	defer refresher.Stop()

	// ───────────────────────── SERVICES ─────────────────────────
	dealService := deals.NewService(reader)

	// ───────────────────────── HANDLERS ─────────────────────────
	dealHandler := deals.NewHandler(dealService)
	feedHandler := feed.NewHandler(reader)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.NewRouter(cfg.CORSOrigins, dealHandler, feedHandler),
	}

	// ───────────────────────── START ─────────────────────────
	serveErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API running at http://localhost:%s (feed source: %s)", cfg.Port, cfg.Feed.Source)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ Server stopped: %v", err)
		}
	case <-ctx.Done():
		log.Println("🛑 Shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Graceful shutdown failed: %v", err)
	}
}

// --------------------------------------------------
// newSource picks the feed source and returns a func releasing what it holds.
func newSource(ctx context.Context, cfg *config.Config) (core.SnapshotReader, func()) {
	noop := func() {}

	switch cfg.Feed.Source {
	case config.SourcePostgres:
		pgDB := db.ConnectPostgres(cfg.Database.URL)
		return feed.NewRepositorySource(restaurant.NewPostgresRepository(pgDB)), pgDB.Close

	case config.SourceObject:
		r2Client, err := storage.NewR2Client(ctx, storage.R2Config{
			Endpoint:      cfg.R2.Endpoint,
			AccessKey:     cfg.R2.AccessKey,
			SecretKey:     cfg.R2.SecretKey,
			Bucket:        cfg.R2.Bucket,
			PublicBaseURL: cfg.R2.PublicBaseURL,
		})
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		return feed.NewObjectSource(r2Client, cfg.R2.FeedKey), noop

	case config.SourceFile:
		return feed.NewFileSource(cfg.Feed.File), noop

	default:
		return feed.NewHTTPSource(cfg.Feed.URL, cfg.Feed.Timeout, cfg.Feed.RetryAttempts), noop
	}
}
