package dishes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Extract top dishes from reviews
// --------------------------------------------------
func (h *Handler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.ExtractTopDishes(c.Request.Context(), &req)
	if err != nil {
		log.Println("Extract dishes error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to extract dishes from reviews",
			"topDishes": []TopDish{},
		})
		return
	}

	if result.NoReviews {
		c.JSON(http.StatusOK, gin.H{
			"error":     "No reviews to analyze",
			"topDishes": []TopDish{},
		})
		return
	}

	if result.LimitReached {
		c.JSON(http.StatusOK, gin.H{
			"error":        "Daily exploration limit reached. Showing cached popular restaurants.",
			"topDishes":    []TopDish{},
			"limitReached": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"topDishes": result.TopDishes,
		"fromCache": result.FromCache,
		"source":    result.Source,
	})
}
