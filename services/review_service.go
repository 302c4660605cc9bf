package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jerssonfuentes/geek-movies-app-main/models"
)

const (
	minReviewRating = 0
	maxReviewRating = 10
	maxCommentLen   = 1000
)

// ReviewService owns the review ledger. Every mutation re-aggregates the
// parent movie's rating and review count.
type ReviewService struct {
	reviewStore ReviewStore
	movieStore  MovieStore
	aggregator  *RatingAggregator
}

func NewReviewService(reviewStore ReviewStore, movieStore MovieStore, aggregator *RatingAggregator) *ReviewService {
	return &ReviewService{
		reviewStore: reviewStore,
		movieStore:  movieStore,
		aggregator:  aggregator,
	}
}

func (s *ReviewService) Create(ctx context.Context, movieID primitive.ObjectID, req *models.CreateReviewRequest, caller *models.Identity) (*models.Review, error) {
	movie, err := s.movieStore.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	if caller == nil {
		return nil, ErrForbidden
	}
	if req.Rating == nil || *req.Rating < minReviewRating || *req.Rating > maxReviewRating {
		return nil, invalidf("rating", "must be between %d and %d", minReviewRating, maxReviewRating)
	}
	if len(req.Comment) > maxCommentLen {
		return nil, invalidf("comment", "must be at most %d characters", maxCommentLen)
	}

	now := time.Now().UTC()
	review := &models.Review{
		MovieID:   movieID,
		AuthorID:  caller.UserID,
		Rating:    *req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := s.reviewStore.Insert(ctx, review)
	if err != nil {
		return nil, err
	}
	review.ID = id

	if err := s.aggregator.Recompute(ctx, movieID); err != nil {
		return nil, err
	}
	return review, nil
}

// ListByMovie returns a movie's reviews, newest first.
func (s *ReviewService) ListByMovie(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error) {
	movie, err := s.movieStore.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	reviews, err := s.reviewStore.FindByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

func (s *ReviewService) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateReviewRequest, caller *models.Identity) (*models.Review, error) {
	review, err := s.reviewStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	if !caller.IsAdmin() && (caller == nil || caller.UserID != review.AuthorID) {
		return nil, ErrForbidden
	}

	update := models.ReviewUpdate{}
	if req.Rating != nil {
		if *req.Rating < minReviewRating || *req.Rating > maxReviewRating {
			return nil, invalidf("rating", "must be between %d and %d", minReviewRating, maxReviewRating)
		}
		update.Rating = req.Rating
	}
	if req.Comment != nil {
		if len(*req.Comment) > maxCommentLen {
			return nil, invalidf("comment", "must be at most %d characters", maxCommentLen)
		}
		comment := strings.TrimSpace(*req.Comment)
		update.Comment = &comment
	}

	updated, err := s.reviewStore.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	if err := s.aggregator.Recompute(ctx, updated.MovieID); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ReviewService) Delete(ctx context.Context, id primitive.ObjectID, caller *models.Identity) error {
	review, err := s.reviewStore.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrNotFound
	}
	if !caller.IsAdmin() && (caller == nil || caller.UserID != review.AuthorID) {
		return ErrForbidden
	}
	if err := s.reviewStore.Delete(ctx, id); err != nil {
		return err
	}
	return s.aggregator.Recompute(ctx, review.MovieID)
}
