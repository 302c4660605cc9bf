package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jerssonfuentes/geek-movies-app-main/models"
)

const (
	minCategoryName        = 2
	maxCategoryName        = 50
	maxCategoryDescription = 200
)

// CategoryService is the category directory: a flat set of named tags
// movies belong to. Deleting a category never touches movies; dangling
// references render as uncategorized.
type CategoryService struct {
	categoryStore CategoryStore
}

func NewCategoryService(categoryStore CategoryStore) *CategoryService {
	return &CategoryService{categoryStore: categoryStore}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	category, err := s.categoryStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if err := validateCategoryFields(name, description); err != nil {
		return nil, err
	}

	existing, err := s.categoryStore.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	category := &models.Category{
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	id, err := s.categoryStore.Insert(ctx, category)
	if err != nil {
		return nil, err
	}
	category.ID = id
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	name := category.Name
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	description := category.Description
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
	}
	if err := validateCategoryFields(name, description); err != nil {
		return nil, err
	}

	if !strings.EqualFold(name, category.Name) {
		other, err := s.categoryStore.FindByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, ErrConflict
		}
	}

	updated, err := s.categoryStore.Update(ctx, id, name, description)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	category, err := s.categoryStore.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return s.categoryStore.Delete(ctx, id)
}

func validateCategoryFields(name, description string) error {
	if len(name) < minCategoryName || len(name) > maxCategoryName {
		return invalidf("name", "must be %d-%d characters", minCategoryName, maxCategoryName)
	}
	if len(description) > maxCategoryDescription {
		return invalidf("description", "must be at most %d characters", maxCategoryDescription)
	}
	return nil
}
