package deals

import (
	"errors"
	"net/http"

	"dealfinder/internal/timeofday"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// GET /active-deals?timeOfDay=3:00pm
// --------------------------------------------------
//

func (h *Handler) ActiveDeals() gin.HandlerFunc {
	return func(c *gin.Context) {

		raw := c.Query("timeOfDay")
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "timeOfDay is required"})
			return
		}

		at, err := timeofday.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timeOfDay: " + err.Error()})
			return
		}

		resp, err := h.service.ActiveDealsAt(c.Request.Context(), at)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

//
// --------------------------------------------------
// GET /peak-time-window
// --------------------------------------------------
//

func (h *Handler) PeakTimeWindow() gin.HandlerFunc {
	return func(c *gin.Context) {

		window, err := h.service.PeakWindow(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, NewPeakWindowResponse(window))
	}
}

// writeError maps bad feed data to 500 and anything else to 502,
// since the only other failure is loading the feed.
func writeError(c *gin.Context, err error) {
	var malformed *timeofday.MalformedTimeError
	if errors.As(err, &malformed) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "feed contains malformed time: " + malformed.Value})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": "restaurant feed unavailable"})
}
