package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kujivinjari/backend/internal/models"
)

type UserService struct {
	store models.DocumentStore
}

func NewUserService(store models.DocumentStore) *UserService {
	return &UserService{store: store}
}

func (us *UserService) Create(ctx context.Context, user *models.User) (string, error) {
	if err := models.Validate.Struct(user); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	if user.IsActive == nil {
		active := true
		user.IsActive = &active
	}
	return us.store.CreateDocument(ctx, models.UserCollection, user)
}

func (us *UserService) List(ctx context.Context, limit int64) ([]bson.M, error) {
	return us.store.GetDocuments(ctx, models.UserCollection, bson.M{}, limit)
}
