package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kujivinjari/backend/internal/helpers"
	"github.com/kujivinjari/backend/internal/models"
	"github.com/kujivinjari/backend/internal/services"
)

func CreateUser(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, detail(err.Error()))
			return
		}

		id, err := us.Create(c.Request.Context(), &user)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func ListUsers(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := helpers.ParseLimit(c.Query("limit"))
		if err != nil {
			c.JSON(http.StatusBadRequest, detail("invalid limit parameter"))
			return
		}

		items, err := us.List(c.Request.Context(), limit)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.PublicDocuments(items))
	}
}
