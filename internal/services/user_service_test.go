package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kujivinjari/backend/internal/models"
)

func TestUserCreateDefaultsActive(t *testing.T) {
	store := newMemStore()
	us := NewUserService(store)

	_, err := us.Create(context.Background(), &models.User{
		Name:  "Amina",
		Email: "amina@example.com",
	})
	require.NoError(t, err)

	doc := store.cols[models.UserCollection][0]
	assert.Equal(t, true, doc["is_active"])
}

func TestUserCreateKeepsExplicitInactive(t *testing.T) {
	store := newMemStore()
	us := NewUserService(store)

	inactive := false
	_, err := us.Create(context.Background(), &models.User{
		Name:     "Amina",
		Email:    "amina@example.com",
		IsActive: &inactive,
	})
	require.NoError(t, err)

	doc := store.cols[models.UserCollection][0]
	assert.Equal(t, false, doc["is_active"])
}

func TestUserCreateValidation(t *testing.T) {
	us := NewUserService(newMemStore())

	_, err := us.Create(context.Background(), &models.User{Name: "Amina", Email: "nope"})
	assert.ErrorIs(t, err, models.ErrValidation)
}
