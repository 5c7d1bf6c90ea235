package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dealfinder/internal/deals"
	"dealfinder/internal/feed"
	"dealfinder/internal/middleware"
	"dealfinder/internal/restaurant"

	"github.com/gin-gonic/gin"
)

type staticSource struct {
	snap *restaurant.Snapshot
}

func (s *staticSource) Snapshot(ctx context.Context) (*restaurant.Snapshot, error) {
	return s.snap, nil
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	src := &staticSource{snap: &restaurant.Snapshot{Restaurants: []restaurant.Restaurant{
		{
			ObjectID: "r1",
			Name:     "Masala Kitchen",
			Open:     "9:00am",
			Close:    "10:00pm",
			Deals: []restaurant.Deal{
				{ObjectID: "d1", Discount: "20", QtyLeft: 5, Start: "10:00am", End: "2:00pm"},
				{ObjectID: "d2", Discount: "30", QtyLeft: 5, Start: "12:00pm", End: "4:00pm"},
			},
		},
	}}}

	reader := feed.NewCachingReader(src, time.Minute)
	dealHandler := deals.NewHandler(deals.NewService(reader))
	feedHandler := feed.NewHandler(reader)

	return NewRouter([]string{"http://localhost:3000"}, dealHandler, feedHandler)
}

func TestHealthCheck(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected request id header")
	}
}

func TestActiveDealsRoute(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/active-deals?timeOfDay=1:00pm", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"dealObjectId":"d1"`) ||
		!strings.Contains(w.Body.String(), `"dealObjectId":"d2"`) {
		t.Errorf("expected both deals, got %s", w.Body.String())
	}
}

func TestPeakTimeWindowRoute(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/peak-time-window", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	want := `{"peakTimeStart":"12:00pm","peakTimeEnd":"2:00pm"}`
	if w.Body.String() != want {
		t.Errorf("expected %s, got %s", want, w.Body.String())
	}
}

func TestFeedRefreshRoute(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/admin/feed/refresh", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/active-deals", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected allowed origin, got %q", got)
	}
}
