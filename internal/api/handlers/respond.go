package handlers

import (
	"errors"
	"net/http"

	"engagemate/internal/models"

	"github.com/gin-gonic/gin"
)

// respondError maps domain error codes onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var dErr *models.Error
	if errors.As(err, &dErr) {
		switch dErr.Code {
		case models.ErrCodeValidation:
			status = http.StatusBadRequest
		case models.ErrCodeNotFound:
			status = http.StatusNotFound
		case models.ErrCodeInvalidRequest:
			status = http.StatusUnprocessableEntity
		case models.ErrCodePrecondition:
			status = http.StatusPreconditionFailed
		case models.ErrCodeConflict:
			status = http.StatusConflict
		case models.ErrCodePersistence:
			status = http.StatusInternalServerError
		}
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
