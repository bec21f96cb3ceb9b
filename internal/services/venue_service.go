package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kujivinjari/backend/internal/models"
)

type VenueService struct {
	store models.DocumentStore
}

func NewVenueService(store models.DocumentStore) *VenueService {
	return &VenueService{store: store}
}

func (vs *VenueService) Create(ctx context.Context, venue *models.Venue) (string, error) {
	if err := models.Validate.Struct(venue); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	if venue.Location != nil && venue.Location.Type == "" {
		venue.Location.Type = "Point"
	}
	if venue.Images == nil {
		venue.Images = []string{}
	}
	return vs.store.CreateDocument(ctx, models.VenueCollection, venue)
}

// VenueFilter narrows a venue listing. Query is handed to the storage
// engine's text index untouched.
type VenueFilter struct {
	Category string
	Query    string
	Limit    int64
}

func (vs *VenueService) List(ctx context.Context, f VenueFilter) ([]bson.M, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category_slug"] = f.Category
	}
	if f.Query != "" {
		filter["$text"] = bson.M{"$search": f.Query}
	}
	return vs.store.GetDocuments(ctx, models.VenueCollection, filter, f.Limit)
}
