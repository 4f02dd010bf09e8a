package usage

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	limiter *Limiter
}

func NewHandler(limiter *Limiter) *Handler {
	return &Handler{limiter: limiter}
}

// --------------------------------------------------
// Today's usage per provider
// --------------------------------------------------
func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.limiter.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load usage"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
