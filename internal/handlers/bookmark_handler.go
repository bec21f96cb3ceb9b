package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kujivinjari/backend/internal/helpers"
	"github.com/kujivinjari/backend/internal/models"
	"github.com/kujivinjari/backend/internal/services"
)

func SaveBookmark(bs *services.BookmarkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bm models.Bookmark
		if err := c.ShouldBindJSON(&bm); err != nil {
			c.JSON(http.StatusBadRequest, detail(err.Error()))
			return
		}

		id, exists, err := bs.Save(c.Request.Context(), &bm)
		if err != nil {
			writeError(c, err)
			return
		}
		if exists {
			c.JSON(http.StatusOK, gin.H{"status": "exists"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func ListBookmarks(bs *services.BookmarkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("user_email")
		if email == "" {
			c.JSON(http.StatusBadRequest, detail("user_email is required"))
			return
		}

		items, err := bs.ListByEmail(c.Request.Context(), email)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.PublicDocuments(items))
	}
}
