package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jerssonfuentes/geek-movies-app-main/models"
)

func strPtr(s string) *string { return &s }

func TestCategoryCreate(t *testing.T) {
	service := NewCategoryService(newMemCategoryStore())

	category, err := service.Create(context.Background(), &models.CreateCategoryRequest{
		Name:        "  Horror  ",
		Description: "Horror and suspense films",
	})
	require.NoError(t, err)
	assert.Equal(t, "Horror", category.Name)
	assert.False(t, category.ID.IsZero())

	// Case-insensitive name conflict.
	_, err = service.Create(context.Background(), &models.CreateCategoryRequest{Name: "hORROR"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCategoryValidation(t *testing.T) {
	service := NewCategoryService(newMemCategoryStore())

	tests := []struct {
		name      string
		req       models.CreateCategoryRequest
		wantField string
	}{
		{"name too short", models.CreateCategoryRequest{Name: "A"}, "name"},
		{"name too long", models.CreateCategoryRequest{Name: strings.Repeat("a", 51)}, "name"},
		{"description too long", models.CreateCategoryRequest{Name: "Ok", Description: strings.Repeat("d", 201)}, "description"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), &tt.req)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestCategoryListSorted(t *testing.T) {
	service := NewCategoryService(newMemCategoryStore())
	for _, name := range []string{"Horror", "Action", "Fantasy"} {
		_, err := service.Create(context.Background(), &models.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	categories, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Action", categories[0].Name)
	assert.Equal(t, "Fantasy", categories[1].Name)
	assert.Equal(t, "Horror", categories[2].Name)
}

func TestCategoryUpdate(t *testing.T) {
	service := NewCategoryService(newMemCategoryStore())

	first, err := service.Create(context.Background(), &models.CreateCategoryRequest{Name: "Action"})
	require.NoError(t, err)
	second, err := service.Create(context.Background(), &models.CreateCategoryRequest{Name: "Drama"})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), primitive.NewObjectID(), &models.UpdateCategoryRequest{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.Update(context.Background(), second.ID, &models.UpdateCategoryRequest{Name: strPtr("ACTION")})
	assert.ErrorIs(t, err, ErrConflict)

	// Re-casing its own name is allowed.
	updated, err := service.Update(context.Background(), first.ID, &models.UpdateCategoryRequest{Name: strPtr("ACTION")})
	require.NoError(t, err)
	assert.Equal(t, "ACTION", updated.Name)

	updated, err = service.Update(context.Background(), second.ID, &models.UpdateCategoryRequest{Description: strPtr("Dramatic films")})
	require.NoError(t, err)
	assert.Equal(t, "Drama", updated.Name)
	assert.Equal(t, "Dramatic films", updated.Description)
}

func TestCategoryDelete(t *testing.T) {
	service := NewCategoryService(newMemCategoryStore())

	category, err := service.Create(context.Background(), &models.CreateCategoryRequest{Name: "Western"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), category.ID))
	assert.ErrorIs(t, service.Delete(context.Background(), category.ID), ErrNotFound)

	_, err = service.GetByID(context.Background(), category.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
