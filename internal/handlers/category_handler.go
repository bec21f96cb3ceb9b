package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kujivinjari/backend/internal/services"
)

// SeedCategories inserts the default category set when the collection is
// empty. Safe to call repeatedly.
func SeedCategories(cs *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		inserted, total, err := cs.Seed(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"inserted": inserted, "total": total})
	}
}
