package handlers

import (
	"net/http"
	"sync/atomic"

	"engagemate/internal/discovery"
	"engagemate/internal/logger"
	"engagemate/internal/models"
	"engagemate/internal/settings"
	"engagemate/internal/store"

	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct {
	products store.ProductStore
	settings *settings.Service
	searcher discovery.Searcher
	logger   *logger.Logger
	inFlight atomic.Bool
}

func NewDiscoveryHandler(products store.ProductStore, st *settings.Service, searcher discovery.Searcher, log *logger.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		products: products,
		settings: st,
		searcher: searcher,
		logger:   log,
	}
}

type searchRequest struct {
	ProductID  string   `json:"product_id"`
	Subreddits []string `json:"subreddits"`
	Keywords   []string `json:"keywords,omitempty"`
}

// Search runs candidate discovery for a product. Preconditions are checked
// eagerly, before the simulated network call starts, and overlapping searches
// are rejected while one is in flight.
func (h *DiscoveryHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	if err := h.settings.RequireConfigured(ctx); err != nil {
		respondError(c, err)
		return
	}

	product, err := h.products.Get(ctx, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	if !h.inFlight.CompareAndSwap(false, true) {
		respondError(c, models.ErrOperationInFlight)
		return
	}
	defer h.inFlight.Store(false)

	posts, err := h.searcher.FindCandidates(ctx, *product, req.Subreddits, req.Keywords)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": posts})
}
