package search

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Restaurant search with tiered fallback
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	lat := parseCoord(c.Query("lat"))
	lng := parseCoord(c.Query("lng"))

	if query == "" && lat == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide a search query or location"})
		return
	}

	result, err := h.service.Search(c.Request.Context(), query, lat, lng)
	if err != nil {
		log.Println("Restaurant search error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Restaurant search failed",
			"restaurant": nil,
		})
		return
	}

	if result == nil {
		c.JSON(http.StatusOK, gin.H{
			"error":      "No restaurant found. Try a different search term.",
			"restaurant": nil,
		})
		return
	}

	if result.FromCache {
		c.JSON(http.StatusOK, gin.H{
			"restaurant": result.Cached,
			"fromCache":  true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":      result.Candidate,
		"fromCache":       false,
		"needsExtraction": result.NeedsExtraction,
	})
}

func parseCoord(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
