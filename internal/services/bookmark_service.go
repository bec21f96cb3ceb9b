package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kujivinjari/backend/internal/models"
)

type BookmarkService struct {
	store models.DocumentStore
}

func NewBookmarkService(store models.DocumentStore) *BookmarkService {
	return &BookmarkService{store: store}
}

// Save stores a bookmark unless the (user_email, event_id) pair already
// exists, in which case it reports exists=true without inserting.
func (bs *BookmarkService) Save(ctx context.Context, bm *models.Bookmark) (id string, exists bool, err error) {
	if err := models.Validate.Struct(bm); err != nil {
		return "", false, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	filter := bson.M{"user_email": bm.UserEmail, "event_id": bm.EventID}
	_, err = bs.store.GetDocument(ctx, models.BookmarkCollection, filter)
	if err == nil {
		return "", true, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return "", false, err
	}

	id, err = bs.store.CreateDocument(ctx, models.BookmarkCollection, bm)
	return id, false, err
}

func (bs *BookmarkService) ListByEmail(ctx context.Context, email string) ([]bson.M, error) {
	filter := bson.M{"user_email": email}
	return bs.store.GetDocuments(ctx, models.BookmarkCollection, filter, models.MaxLimit)
}
