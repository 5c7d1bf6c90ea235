package feed

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	reader *CachingReader
}

func NewHandler(reader *CachingReader) *Handler {
	return &Handler{reader: reader}
}

// POST /admin/feed/refresh
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.reader.Refresh(c.Request.Context()); err != nil {
		log.Printf("[FEED] manual refresh failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "restaurant feed unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
