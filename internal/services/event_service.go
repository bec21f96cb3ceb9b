package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kujivinjari/backend/internal/models"
)

type EventService struct {
	store models.DocumentStore
}

func NewEventService(store models.DocumentStore) *EventService {
	return &EventService{store: store}
}

func (es *EventService) Create(ctx context.Context, event *models.Event) (string, error) {
	if err := models.Validate.Struct(event); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	if event.Tags == nil {
		event.Tags = []string{}
	}
	return es.store.CreateDocument(ctx, models.EventCollection, event)
}

// EventFilter narrows an event listing. Free is a tri-state: nil means the
// is_free field is not filtered at all.
type EventFilter struct {
	Category string
	Query    string
	Free     *bool
	Limit    int64
}

func (es *EventService) List(ctx context.Context, f EventFilter) ([]bson.M, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category_slug"] = f.Category
	}
	if f.Query != "" {
		filter["$text"] = bson.M{"$search": f.Query}
	}
	if f.Free != nil {
		filter["is_free"] = *f.Free
	}
	return es.store.GetDocuments(ctx, models.EventCollection, filter, f.Limit)
}

// GetByID fetches a single event. A malformed hex id yields ErrInvalidID; a
// well-formed id with no matching document yields ErrNotFound.
func (es *EventService) GetByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return es.store.GetDocument(ctx, models.EventCollection, bson.M{"_id": oid})
}
