package handlers

import (
	"net/http"

	"engagemate/internal/logger"
	"engagemate/internal/models"
	"engagemate/internal/settings"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settings *settings.Service
	logger   *logger.Logger
}

func NewSettingsHandler(svc *settings.Service, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{settings: svc, logger: log}
}

// Get returns the stored configuration with the secret redacted.
func (h *SettingsHandler) Get(c *gin.Context) {
	cfg, err := h.settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       cfg.Redacted(),
		"configured": cfg.Configured(),
	})
}

func (h *SettingsHandler) Save(c *gin.Context) {
	var cfg models.RedditSettings
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.settings.Save(c.Request.Context(), cfg); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cfg.Redacted()})
}
