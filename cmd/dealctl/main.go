package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"dealfinder/internal/config"
	"dealfinder/internal/core"
	"dealfinder/internal/deals"
	"dealfinder/internal/feed"
	"dealfinder/internal/storage"
	"dealfinder/internal/timeofday"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	dealColor   = color.New(color.FgGreen)
	mutedColor  = color.New(color.FgHiBlack)
	peakColor   = color.New(color.FgYellow, color.Bold)
)

func main() {
	file := flag.StringP("file", "f", "", "Read the snapshot from a local JSON file")
	url := flag.StringP("url", "u", "", "Fetch the snapshot from an upstream URL")
	object := flag.StringP("object", "o", "", "Read the snapshot from the object store under this key")
	atFlag := flag.StringP("at", "a", "", "List deals active at this time of day (e.g. 3:00pm)")
	peak := flag.BoolP("peak", "p", false, "Print the peak deal window")
	useColor := flag.Bool("color", true, "Colorize output")
	publish := flag.Bool("publish", false, "Upload --file to the object store as the current feed")
	timeout := flag.Duration("timeout", 10*time.Second, "Timeout for remote reads")

	flag.Parse()
	color.NoColor = !*useColor

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *publish {
		cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
		if err != nil {
			log.Fatalf("❌ config: %v", err)
		}
		if err := publishFile(ctx, cfg, *file); err != nil {
			log.Fatalf("❌ publish failed: %v", err)
		}
		return
	}

	source, err := pickSource(ctx, *file, *url, *object, *timeout)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	snap, err := source.Snapshot(ctx)
	if err != nil {
		log.Fatalf("❌ load snapshot: %v", err)
	}

	if *atFlag == "" && !*peak {
		fmt.Printf("Loaded %d restaurants, %d deals\n", len(snap.Restaurants), snap.DealCount())
		return
	}

	if *atFlag != "" {
		at, err := timeofday.Parse(*atFlag)
		if err != nil {
			log.Fatalf("❌ --at: %v", err)
		}
		active, err := deals.ActiveDeals(snap, at)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		printActiveDeals(os.Stdout, at, active)
	}

	if *peak {
		window, err := deals.FindPeakWindow(snap)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		printPeakWindow(os.Stdout, window)
	}
}

func pickSource(ctx context.Context, file, url, object string, timeout time.Duration) (core.SnapshotReader, error) {
	chosen := 0
	for _, v := range []string{file, url, object} {
		if v != "" {
			chosen++
		}
	}
	if chosen != 1 {
		return nil, errors.New("pick exactly one of --file, --url or --object")
	}

	switch {
	case file != "":
		return feed.NewFileSource(file), nil
	case url != "":
		return feed.NewHTTPSource(url, timeout, 3), nil
	default:
		cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
		if err != nil {
			return nil, err
		}
		r2Client, err := newR2Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return feed.NewObjectSource(r2Client, object), nil
	}
}

func newR2Client(ctx context.Context, cfg *config.Config) (*storage.R2Client, error) {
	if err := cfg.ValidateR2(); err != nil {
		return nil, err
	}

	client, err := storage.NewR2Client(ctx, storage.R2Config{
		Endpoint:      cfg.R2.Endpoint,
		AccessKey:     cfg.R2.AccessKey,
		SecretKey:     cfg.R2.SecretKey,
		Bucket:        cfg.R2.Bucket,
		PublicBaseURL: cfg.R2.PublicBaseURL,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// publishFile checks the snapshot parses, then uploads it under the
// configured feed key.
func publishFile(ctx context.Context, cfg *config.Config, path string) error {
	if path == "" {
		return errors.New("--publish needs --file")
	}

	snap, err := feed.NewFileSource(path).Snapshot(ctx)
	if err != nil {
		return err
	}
	if _, err := deals.FindPeakWindow(snap); err != nil {
		return errors.Wrap(err, "refusing to publish")
	}

	client, err := newR2Client(ctx, cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open snapshot")
	}
	defer f.Close()

	url, err := client.Upload(ctx, cfg.R2.FeedKey, f, "application/json")
	if err != nil {
		return err
	}

	fmt.Printf("✅ Published %d restaurants, %d deals to %s\n", len(snap.Restaurants), snap.DealCount(), url)
	return nil
}

// --------------------------------------------------
// Output
// --------------------------------------------------

func printActiveDeals(w io.Writer, at timeofday.TimeOfDay, active []deals.ActiveDeal) {
	headerColor.Fprintf(w, "Active deals at %s: %d\n", at, len(active))
	for _, d := range active {
		dealColor.Fprintf(w, "  %-24s %3s%% off", d.RestaurantName, d.Discount)
		mutedColor.Fprintf(w, "  %s-%s  qty %d", d.RestaurantOpen, d.RestaurantClose, d.QtyLeft)
		if d.Lightning {
			peakColor.Fprint(w, "  ⚡")
		}
		fmt.Fprintln(w)
	}
}

func printPeakWindow(w io.Writer, window *deals.PeakWindow) {
	if window == nil {
		mutedColor.Fprintln(w, "No peak window: the feed has no deals")
		return
	}
	peakColor.Fprintf(w, "Peak window %s - %s", window.Start, window.End)
	mutedColor.Fprintf(w, " (%d deals)\n", window.Overlap)
}
