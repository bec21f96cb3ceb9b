package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kujivinjari/backend/internal/models"
)

type CategoryService struct {
	store models.DocumentStore
}

func NewCategoryService(store models.DocumentStore) *CategoryService {
	return &CategoryService{store: store}
}

// Seed inserts the default categories only when the collection is empty.
// Calling it again is a no-op, so the total never exceeds the default set
// unless categories were created through other means.
func (cs *CategoryService) Seed(ctx context.Context) (inserted int, total int64, err error) {
	existing, err := cs.store.CountDocuments(ctx, models.CategoryCollection, bson.M{})
	if err != nil {
		return 0, 0, err
	}

	if existing == 0 {
		docs := make([]any, len(models.DefaultCategories))
		for i, category := range models.DefaultCategories {
			docs[i] = category
		}
		if _, err := cs.store.CreateDocuments(ctx, models.CategoryCollection, docs); err != nil {
			return 0, 0, err
		}
	}

	total, err = cs.store.CountDocuments(ctx, models.CategoryCollection, bson.M{})
	if err != nil {
		return 0, 0, err
	}

	inserted = len(models.DefaultCategories) - int(existing)
	if inserted < 0 {
		inserted = 0
	}
	return inserted, total, nil
}

func (cs *CategoryService) List(ctx context.Context, limit int64) ([]bson.M, error) {
	return cs.store.GetDocuments(ctx, models.CategoryCollection, bson.M{}, limit)
}
