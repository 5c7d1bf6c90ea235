package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dealfinder/internal/config"
	"dealfinder/internal/deals"
	"dealfinder/internal/timeofday"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickSource_RequiresExactlyOne(t *testing.T) {
	ctx := context.Background()

	_, err := pickSource(ctx, "", "", "", time.Second)
	assert.Error(t, err)

	_, err = pickSource(ctx, "feed.json", "https://feed.example.com", "", time.Second)
	assert.Error(t, err)

	src, err := pickSource(ctx, "feed.json", "", "", time.Second)
	require.NoError(t, err)
	assert.NotNil(t, src)
}

func TestPublishFile_RequiresFile(t *testing.T) {
	assert.Error(t, publishFile(context.Background(), &config.Config{}, ""))
}

func TestPublishFile_UsesGivenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"restaurants":[]}`), 0o600))

	// settings come from the config passed in, not from the environment
	t.Setenv("R2_ENDPOINT", "https://r2.example.com")
	t.Setenv("R2_ACCESS_KEY", "key")
	t.Setenv("R2_SECRET_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "feeds")

	err := publishFile(context.Background(), &config.Config{}, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing object store settings")
}

func TestPrintActiveDeals(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printActiveDeals(&buf, timeofday.MustParse("5:00pm"), []deals.ActiveDeal{
		{RestaurantName: "Masala Kitchen", Discount: "50", RestaurantOpen: "3:00pm", RestaurantClose: "9:00pm", QtyLeft: 5},
	})

	out := buf.String()
	assert.Contains(t, out, "Active deals at 5:00pm: 1")
	assert.Contains(t, out, "Masala Kitchen")
	assert.Contains(t, out, "50% off")
	assert.Contains(t, out, "qty 5")
}

func TestPrintPeakWindow(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printPeakWindow(&buf, &deals.PeakWindow{
		Start:   timeofday.MustParse("12:00pm"),
		End:     timeofday.MustParse("2:00pm"),
		Overlap: 3,
	})
	assert.Equal(t, "Peak window 12:00pm - 2:00pm (3 deals)\n", buf.String())

	buf.Reset()
	printPeakWindow(&buf, nil)
	assert.Contains(t, buf.String(), "No peak window")
}
