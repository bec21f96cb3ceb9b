package container

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kujivinjari/backend/internal/config"
	"github.com/kujivinjari/backend/internal/models"
	"github.com/kujivinjari/backend/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger      *slog.Logger
	MongoClient *mongo.Client

	VenueService    *services.VenueService
	EventService    *services.EventService
	BookmarkService *services.BookmarkService
	CategoryService *services.CategoryService
	UserService     *services.UserService
	HealthService   *services.HealthService
}

// NewContainer creates a new dependency injection container. The mongo client
// may be nil: every service then degrades per-request instead of crashing
// the process.
func NewContainer(logger *slog.Logger, mongoClient *mongo.Client, cfg *config.Config) *Container {
	store := models.NewMongoRepo(mongoClient, cfg.DatabaseName)

	return &Container{
		Logger:          logger,
		MongoClient:     mongoClient,
		VenueService:    services.NewVenueService(store),
		EventService:    services.NewEventService(store),
		BookmarkService: services.NewBookmarkService(store),
		CategoryService: services.NewCategoryService(store),
		UserService:     services.NewUserService(store),
		HealthService:   services.NewHealthService(store, cfg.DatabaseName, cfg.DatabaseURL != ""),
	}
}
