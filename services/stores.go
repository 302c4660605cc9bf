package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jerssonfuentes/geek-movies-app-main/models"
)

// Store interfaces consumed by the engine. The data_access package provides
// the MongoDB implementations; tests provide in-memory ones. Lookups return
// (nil, nil) when no document matches.

type MovieStore interface {
	Insert(ctx context.Context, movie *models.Movie) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	// FindByTitle matches the full title, case-insensitively.
	FindByTitle(ctx context.Context, title string) (*models.Movie, error)
	Find(ctx context.Context, q models.MovieQuery) ([]models.Movie, error)
	Count(ctx context.Context, q models.MovieQuery) (int64, error)
	// Update applies the set fields, stamps updated_at and returns the
	// document as stored after the write.
	Update(ctx context.Context, id primitive.ObjectID, update models.MovieUpdate) (*models.Movie, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.MovieStatus) error
	SetAggregates(ctx context.Context, id primitive.ObjectID, rating float64, reviewCount int) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CategoryStore interface {
	Insert(ctx context.Context, category *models.Category) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	// FindByName matches the full name, case-insensitively.
	FindByName(ctx context.Context, name string) (*models.Category, error)
	// FindAll returns every category ordered by name ascending.
	FindAll(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, id primitive.ObjectID, name, description string) (*models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ReviewStore interface {
	Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	// FindByMovie returns the movie's reviews ordered newest first.
	FindByMovie(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.ReviewUpdate) (*models.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByMovie(ctx context.Context, movieID primitive.ObjectID) error
}

type UserStore interface {
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	SetLastLogin(ctx context.Context, id primitive.ObjectID) error
}
