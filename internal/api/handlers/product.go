package handlers

import (
	"net/http"

	"engagemate/internal/events"
	"engagemate/internal/logger"
	"engagemate/internal/models"
	"engagemate/internal/store"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	products  store.ProductStore
	publisher events.Publisher
	logger    *logger.Logger
}

func NewProductHandler(products store.ProductStore, publisher events.Publisher, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		products:  products,
		publisher: publisher,
		logger:    log,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var params models.CreateProductParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Create(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	h.publisher.Publish(c.Request.Context(), events.TypeProductCreated, product.ID, nil)
	c.JSON(http.StatusCreated, gin.H{"data": product})
}

func (h *ProductHandler) Update(c *gin.Context) {
	var params models.UpdateProductParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondError(c, err)
		return
	}
	if product == nil {
		// The store signals a failed write with a nil product.
		c.JSON(http.StatusBadGateway, gin.H{"error": "product update had no effect"})
		return
	}

	h.publisher.Publish(c.Request.Context(), events.TypeProductUpdated, product.ID, nil)
	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.products.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if removed {
		h.publisher.Publish(c.Request.Context(), events.TypeProductDeleted, id, nil)
	}

	// Deletes are idempotent; a missing product is still a 204.
	c.JSON(http.StatusNoContent, nil)
}
