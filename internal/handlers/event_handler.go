package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kujivinjari/backend/internal/helpers"
	"github.com/kujivinjari/backend/internal/models"
	"github.com/kujivinjari/backend/internal/services"
)

func CreateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, detail(err.Error()))
			return
		}

		id, err := es.Create(c.Request.Context(), &event)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func ListEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := helpers.ParseLimit(c.Query("limit"))
		if err != nil {
			c.JSON(http.StatusBadRequest, detail("invalid limit parameter"))
			return
		}

		filter := services.EventFilter{
			Category: c.Query("category"),
			Query:    c.Query("q"),
			Limit:    limit,
		}
		if raw := c.Query("free"); raw != "" {
			free, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, detail("invalid free parameter"))
				return
			}
			filter.Free = &free
		}

		items, err := es.List(c.Request.Context(), filter)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.PublicDocuments(items))
	}
}

func GetEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := es.GetByID(c.Request.Context(), c.Param("event_id"))
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, detail("Event not found"))
			return
		}
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.PublicDocument(doc))
	}
}
