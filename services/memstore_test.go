package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jerssonfuentes/geek-movies-app-main/models"
)

// In-memory store implementations mirroring the MongoDB repositories'
// contracts, including the documented sort orders.

type memMovieStore struct {
	order  []primitive.ObjectID
	movies map[primitive.ObjectID]models.Movie
}

func newMemMovieStore() *memMovieStore {
	return &memMovieStore{movies: make(map[primitive.ObjectID]models.Movie)}
}

func (s *memMovieStore) Insert(_ context.Context, movie *models.Movie) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	movie.ID = id
	s.movies[id] = *movie
	s.order = append(s.order, id)
	return id, nil
}

func (s *memMovieStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Movie, error) {
	if movie, ok := s.movies[id]; ok {
		return &movie, nil
	}
	return nil, nil
}

func (s *memMovieStore) FindByTitle(_ context.Context, title string) (*models.Movie, error) {
	for _, id := range s.order {
		if movie, ok := s.movies[id]; ok && strings.EqualFold(movie.Title, title) {
			return &movie, nil
		}
	}
	return nil, nil
}

func (s *memMovieStore) matching(q models.MovieQuery) []models.Movie {
	var matched []models.Movie
	for _, id := range s.order {
		movie, ok := s.movies[id]
		if !ok || movie.Status != q.Status {
			continue
		}
		if q.CategoryID != nil && (movie.CategoryID == nil || *movie.CategoryID != *q.CategoryID) {
			continue
		}
		if q.TitleSearch != "" && !strings.Contains(strings.ToLower(movie.Title), strings.ToLower(q.TitleSearch)) {
			continue
		}
		if q.OnlyRated && movie.ReviewCount == 0 {
			continue
		}
		matched = append(matched, movie)
	}
	return matched
}

func (s *memMovieStore) Find(_ context.Context, q models.MovieQuery) ([]models.Movie, error) {
	matched := s.matching(q)

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch q.SortBy {
		case models.SortByYear:
			return a.Year > b.Year
		case models.SortByTitle:
			return a.Title < b.Title
		case models.SortByNewest:
			return a.CreatedAt.After(b.CreatedAt)
		default: // rating desc, review count desc
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return a.ReviewCount > b.ReviewCount
		}
	})

	if q.Skip > 0 {
		if q.Skip >= int64(len(matched)) {
			return nil, nil
		}
		matched = matched[q.Skip:]
	}
	if q.Limit > 0 && int64(len(matched)) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (s *memMovieStore) Count(_ context.Context, q models.MovieQuery) (int64, error) {
	return int64(len(s.matching(q))), nil
}

func (s *memMovieStore) Update(_ context.Context, id primitive.ObjectID, update models.MovieUpdate) (*models.Movie, error) {
	movie, ok := s.movies[id]
	if !ok {
		return nil, nil
	}
	if update.Title != nil {
		movie.Title = *update.Title
	}
	if update.Description != nil {
		movie.Description = *update.Description
	}
	if update.CategoryID != nil {
		movie.CategoryID = update.CategoryID
	}
	if update.Year != nil {
		movie.Year = *update.Year
	}
	if update.ImageURL != nil {
		movie.ImageURL = *update.ImageURL
	}
	movie.UpdatedAt = time.Now().UTC()
	s.movies[id] = movie
	return &movie, nil
}

func (s *memMovieStore) SetStatus(_ context.Context, id primitive.ObjectID, status models.MovieStatus) error {
	if movie, ok := s.movies[id]; ok {
		movie.Status = status
		s.movies[id] = movie
	}
	return nil
}

func (s *memMovieStore) SetAggregates(_ context.Context, id primitive.ObjectID, rating float64, reviewCount int) error {
	if movie, ok := s.movies[id]; ok {
		movie.Rating = rating
		movie.ReviewCount = reviewCount
		s.movies[id] = movie
	}
	return nil
}

func (s *memMovieStore) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(s.movies, id)
	return nil
}

type memCategoryStore struct {
	categories map[primitive.ObjectID]models.Category
}

func newMemCategoryStore() *memCategoryStore {
	return &memCategoryStore{categories: make(map[primitive.ObjectID]models.Category)}
}

func (s *memCategoryStore) Insert(_ context.Context, category *models.Category) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	category.ID = id
	s.categories[id] = *category
	return id, nil
}

func (s *memCategoryStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	if category, ok := s.categories[id]; ok {
		return &category, nil
	}
	return nil, nil
}

func (s *memCategoryStore) FindByName(_ context.Context, name string) (*models.Category, error) {
	for _, category := range s.categories {
		if strings.EqualFold(category.Name, name) {
			return &category, nil
		}
	}
	return nil, nil
}

func (s *memCategoryStore) FindAll(_ context.Context) ([]models.Category, error) {
	all := make([]models.Category, 0, len(s.categories))
	for _, category := range s.categories {
		all = append(all, category)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (s *memCategoryStore) Update(_ context.Context, id primitive.ObjectID, name, description string) (*models.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	category.Name = name
	category.Description = description
	s.categories[id] = category
	return &category, nil
}

func (s *memCategoryStore) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(s.categories, id)
	return nil
}

type memReviewStore struct {
	order   []primitive.ObjectID
	reviews map[primitive.ObjectID]models.Review
}

func newMemReviewStore() *memReviewStore {
	return &memReviewStore{reviews: make(map[primitive.ObjectID]models.Review)}
}

func (s *memReviewStore) Insert(_ context.Context, review *models.Review) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	review.ID = id
	s.reviews[id] = *review
	s.order = append(s.order, id)
	return id, nil
}

func (s *memReviewStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Review, error) {
	if review, ok := s.reviews[id]; ok {
		return &review, nil
	}
	return nil, nil
}

func (s *memReviewStore) FindByMovie(_ context.Context, movieID primitive.ObjectID) ([]models.Review, error) {
	var matched []models.Review
	for _, id := range s.order {
		if review, ok := s.reviews[id]; ok && review.MovieID == movieID {
			matched = append(matched, review)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (s *memReviewStore) Update(_ context.Context, id primitive.ObjectID, update models.ReviewUpdate) (*models.Review, error) {
	review, ok := s.reviews[id]
	if !ok {
		return nil, nil
	}
	if update.Rating != nil {
		review.Rating = *update.Rating
	}
	if update.Comment != nil {
		review.Comment = *update.Comment
	}
	review.UpdatedAt = time.Now().UTC()
	s.reviews[id] = review
	return &review, nil
}

func (s *memReviewStore) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(s.reviews, id)
	return nil
}

func (s *memReviewStore) DeleteByMovie(_ context.Context, movieID primitive.ObjectID) error {
	for id, review := range s.reviews {
		if review.MovieID == movieID {
			delete(s.reviews, id)
		}
	}
	return nil
}

type memUserStore struct {
	users map[primitive.ObjectID]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *memUserStore) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	user.ID = id
	s.users[id] = *user
	return id, nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (s *memUserStore) SetLastLogin(_ context.Context, id primitive.ObjectID) error {
	if user, ok := s.users[id]; ok {
		user.LastLogin = time.Now().UTC()
		s.users[id] = user
	}
	return nil
}
