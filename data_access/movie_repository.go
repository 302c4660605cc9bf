package data_access

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jerssonfuentes/geek-movies-app-main/models"
)

type MovieRepository struct {
	collection *mongo.Collection
}

func NewMovieRepository(db *MongoDB) *MovieRepository {
	return &MovieRepository{collection: db.Collection("movies")}
}

func (r *MovieRepository) Insert(ctx context.Context, movie *models.Movie) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, movie)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"title": exactFold(title)}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) Find(ctx context.Context, q models.MovieQuery) ([]models.Movie, error) {
	opts := options.Find().SetSort(movieSort(q.SortBy))
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := r.collection.Find(ctx, buildMovieFilter(q), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []models.Movie
	if err = cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *MovieRepository) Count(ctx context.Context, q models.MovieQuery) (int64, error) {
	return r.collection.CountDocuments(ctx, buildMovieFilter(q))
}

func (r *MovieRepository) Update(ctx context.Context, id primitive.ObjectID, update models.MovieUpdate) (*models.Movie, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.CategoryID != nil {
		set["category"] = *update.CategoryID
	}
	if update.Year != nil {
		set["year"] = *update.Year
	}
	if update.ImageURL != nil {
		set["image_url"] = *update.ImageURL
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var movie models.Movie
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status models.MovieStatus) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now().UTC()},
	})
	return err
}

func (r *MovieRepository) SetAggregates(ctx context.Context, id primitive.ObjectID, rating float64, reviewCount int) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"rating": rating, "review_count": reviewCount},
	})
	return err
}

func (r *MovieRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// buildMovieFilter translates a normalized query into the bson filter used
// by both Count and Find, so total always matches the fetched page's filter.
func buildMovieFilter(q models.MovieQuery) bson.M {
	filter := bson.M{"status": q.Status}
	if q.CategoryID != nil {
		filter["category"] = *q.CategoryID
	}
	if q.TitleSearch != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.TitleSearch), Options: "i"}
	}
	if q.OnlyRated {
		filter["review_count"] = bson.M{"$gt": 0}
	}
	return filter
}

func movieSort(sortBy models.SortBy) bson.D {
	switch sortBy {
	case models.SortByYear:
		return bson.D{{Key: "year", Value: -1}}
	case models.SortByTitle:
		return bson.D{{Key: "title", Value: 1}}
	case models.SortByNewest:
		return bson.D{{Key: "created_at", Value: -1}}
	default:
		return bson.D{{Key: "rating", Value: -1}, {Key: "review_count", Value: -1}}
	}
}

// exactFold matches a whole string case-insensitively.
func exactFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}
