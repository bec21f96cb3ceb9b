package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kujivinjari/backend/internal/models"
)

// detail is the error body shape of the public API.
func detail(msg string) gin.H {
	return gin.H{"detail": msg}
}

// writeError maps domain errors to status codes at the request boundary.
// There is no retry and no special logging: the request either completes or
// fails outright.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, detail(err.Error()))
	case errors.Is(err, models.ErrInvalidID):
		c.JSON(http.StatusBadRequest, detail("Invalid id"))
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, detail("Not found"))
	case errors.Is(err, models.ErrStorageUnavailable):
		c.JSON(http.StatusInternalServerError, detail("Database not configured"))
	default:
		c.JSON(http.StatusInternalServerError, detail(err.Error()))
	}
}
