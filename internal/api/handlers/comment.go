package handlers

import (
	"net/http"

	"engagemate/internal/engage"
	"engagemate/internal/logger"
	"engagemate/internal/models"
	"engagemate/internal/store"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	manager  *engage.Manager
	products store.ProductStore
	logger   *logger.Logger
}

func NewCommentHandler(manager *engage.Manager, products store.ProductStore, log *logger.Logger) *CommentHandler {
	return &CommentHandler{
		manager:  manager,
		products: products,
		logger:   log,
	}
}

type generateRequest struct {
	ProductID string                 `json:"product_id"`
	Posts     []models.CandidatePost `json:"posts"`
}

// Generate synthesizes one comment per supplied candidate post. On a
// mid-batch failure the already-persisted prefix is returned alongside the
// error so the caller can see how many comments were produced.
func (h *CommentHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	product, err := h.products.Get(ctx, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	comments, err := h.manager.Generate(ctx, *product, req.Posts)
	if err != nil {
		if len(comments) > 0 {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     err.Error(),
				"data":      comments,
				"generated": len(comments),
				"requested": len(req.Posts),
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":      comments,
		"generated": len(comments),
		"requested": len(req.Posts),
	})
}

func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.manager.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comments})
}

func (h *CommentHandler) MarkPosted(c *gin.Context) {
	comment, err := h.manager.MarkPosted(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comment})
}

func (h *CommentHandler) MarkFailed(c *gin.Context) {
	comment, err := h.manager.MarkFailed(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comment})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if _, err := h.manager.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
