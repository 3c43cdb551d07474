package handlers

import (
	"net/http"

	"engagemate/internal/engage"
	"engagemate/internal/models"
	"engagemate/internal/store"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	products store.ProductStore
	manager  *engage.Manager
}

func NewStatsHandler(products store.ProductStore, manager *engage.Manager) *StatsHandler {
	return &StatsHandler{products: products, manager: manager}
}

// Get returns the dashboard counters.
func (h *StatsHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := h.products.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	comments, err := h.manager.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	posted := 0
	for _, comment := range comments {
		if comment.Status == models.CommentPosted {
			posted++
		}
	}

	engagement := 0.0
	if len(comments) > 0 {
		engagement = float64(posted) / float64(len(comments)) * 100
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"products":        len(products),
			"comments":        len(comments),
			"posted":          posted,
			"engagement_rate": engagement,
		},
	})
}
