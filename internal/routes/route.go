package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kujivinjari/backend/internal/container"
	"github.com/kujivinjari/backend/internal/handlers"
	"github.com/kujivinjari/backend/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(ctn *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	// Fully open CORS: the API is consumed by arbitrary web clients.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(ctn.Logger))
	r.Use(gin.Recovery())

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Kujivinjari API is running"})
	})

	// Diagnostics
	r.GET("/test", handlers.TestDatabase(ctn.HealthService))

	r.POST("/seed/categories", handlers.SeedCategories(ctn.CategoryService))

	r.POST("/venues", handlers.CreateVenue(ctn.VenueService))
	r.GET("/venues", handlers.ListVenues(ctn.VenueService))

	r.POST("/events", handlers.CreateEvent(ctn.EventService))
	r.GET("/events", handlers.ListEvents(ctn.EventService))
	r.GET("/events/:event_id", handlers.GetEvent(ctn.EventService))

	r.POST("/bookmarks", handlers.SaveBookmark(ctn.BookmarkService))
	r.GET("/bookmarks", handlers.ListBookmarks(ctn.BookmarkService))

	r.POST("/users", handlers.CreateUser(ctn.UserService))
	r.GET("/users", handlers.ListUsers(ctn.UserService))

	return r
}
