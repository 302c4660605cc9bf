package services

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RatingAggregator keeps a movie's aggregate rating and review count
// consistent with the review ledger. Recompute reads the full ledger for the
// movie, so re-running it on an unchanged ledger writes the same values.
type RatingAggregator struct {
	movieStore  MovieStore
	reviewStore ReviewStore
}

func NewRatingAggregator(movieStore MovieStore, reviewStore ReviewStore) *RatingAggregator {
	return &RatingAggregator{
		movieStore:  movieStore,
		reviewStore: reviewStore,
	}
}

func (a *RatingAggregator) Recompute(ctx context.Context, movieID primitive.ObjectID) error {
	reviews, err := a.reviewStore.FindByMovie(ctx, movieID)
	if err != nil {
		return err
	}

	rating := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		rating = roundToTenth(float64(sum) / float64(len(reviews)))
	}

	return a.movieStore.SetAggregates(ctx, movieID, rating, len(reviews))
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
