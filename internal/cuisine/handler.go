package cuisine

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
// Signature dishes for a cuisine
// --------------------------------------------------
func (h *Handler) Lookup(c *gin.Context) {
	cuisineName := c.Query("cuisine")
	language := c.DefaultQuery("lang", "English")
	langCode := c.DefaultQuery("langCode", "en")

	if cuisineName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cuisine parameter is required"})
		return
	}

	result, err := h.service.Lookup(c.Request.Context(), cuisineName, language, langCode)
	if err != nil {
		log.Println("Cuisine lookup error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "Failed to fetch cuisine data",
			"dishes": []*GenericDish{},
		})
		return
	}

	if result.LimitReached {
		c.JSON(http.StatusOK, gin.H{
			"error":        "Daily exploration limit reached. Showing cached popular restaurants.",
			"dishes":       []*GenericDish{},
			"limitReached": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dishes":    result.Dishes,
		"fromCache": result.FromCache,
	})
}
