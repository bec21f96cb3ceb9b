package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kujivinjari/backend/internal/helpers"
	"github.com/kujivinjari/backend/internal/models"
	"github.com/kujivinjari/backend/internal/services"
)

func CreateVenue(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var venue models.Venue
		if err := c.ShouldBindJSON(&venue); err != nil {
			c.JSON(http.StatusBadRequest, detail(err.Error()))
			return
		}

		id, err := vs.Create(c.Request.Context(), &venue)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func ListVenues(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := helpers.ParseLimit(c.Query("limit"))
		if err != nil {
			c.JSON(http.StatusBadRequest, detail("invalid limit parameter"))
			return
		}

		items, err := vs.List(c.Request.Context(), services.VenueFilter{
			Category: c.Query("category"),
			Query:    c.Query("q"),
			Limit:    limit,
		})
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.PublicDocuments(items))
	}
}
