package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kujivinjari/backend/internal/models"
)

func TestCategorySeedPopulatesEmptyCollection(t *testing.T) {
	store := newMemStore()
	cs := NewCategoryService(store)

	inserted, total, err := cs.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, inserted)
	assert.Equal(t, int64(5), total)
}

func TestCategorySeedIsIdempotent(t *testing.T) {
	store := newMemStore()
	cs := NewCategoryService(store)

	_, _, err := cs.Seed(context.Background())
	require.NoError(t, err)

	inserted, total, err := cs.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.Equal(t, int64(5), total)
	assert.Len(t, store.cols[models.CategoryCollection], 5)
}

func TestCategorySeedSkipsNonEmptyCollection(t *testing.T) {
	store := newMemStore()
	cs := NewCategoryService(store)

	_, err := store.CreateDocument(context.Background(), models.CategoryCollection, models.Category{
		Name: "Art", Slug: "art",
	})
	require.NoError(t, err)

	inserted, total, err := cs.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.Equal(t, int64(1), total)
}

func TestCategorySeedStorageUnavailable(t *testing.T) {
	store := newMemStore()
	store.err = models.ErrStorageUnavailable
	cs := NewCategoryService(store)

	_, _, err := cs.Seed(context.Background())
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
}
