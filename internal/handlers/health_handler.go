package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kujivinjari/backend/internal/services"
)

// TestDatabase reports database connectivity for operational visibility.
// Always responds 200; failures are surfaced inside the report body.
func TestDatabase(hs *services.HealthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, hs.Report(c.Request.Context()))
	}
}
