package router

import (
	"time"

	"dealfinder/internal/deals"
	"dealfinder/internal/feed"
	"dealfinder/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(corsOrigins []string, dealHandler *deals.Handler, feedHandler *feed.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  corsOrigins,
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	r.Use(middleware.RequestID())

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── DEALS ─────────────────────────
	r.GET("/active-deals", dealHandler.ActiveDeals())
	r.GET("/peak-time-window", dealHandler.PeakTimeWindow())

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	{
		admin.POST("/feed/refresh", feedHandler.Refresh)
	}

	return r
}
