package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jerssonfuentes/geek-movies-app-main/models"
)

const (
	defaultPage      = 1
	defaultLimit     = 12
	maxLimit         = 50
	defaultHomeLimit = 6

	minMovieYear   = 1900
	maxTitleLen    = 100
	minDescription = 10
	maxDescription = 1000
)

// CatalogService is the catalog query and moderation engine: it turns raw
// listing parameters into store queries, enforces the publish lifecycle and
// owns the movie write path.
type CatalogService struct {
	movieStore    MovieStore
	categoryStore CategoryStore
	reviewStore   ReviewStore
}

func NewCatalogService(movieStore MovieStore, categoryStore CategoryStore, reviewStore ReviewStore) *CatalogService {
	return &CatalogService{
		movieStore:    movieStore,
		categoryStore: categoryStore,
		reviewStore:   reviewStore,
	}
}

// MovieDetail is a movie with its review ledger embedded, newest first.
type MovieDetail struct {
	Movie   models.Movie    `json:"movie"`
	Reviews []models.Review `json:"reviews"`
}

// List returns the public catalog page described by params. Only approved
// movies are visible regardless of the caller's role; the moderation queue
// goes through ListPending instead.
func (s *CatalogService) List(ctx context.Context, params models.ListMoviesParams) (*models.MovieList, error) {
	return s.list(ctx, params, models.StatusApproved)
}

// ListPending is the admin moderation queue: pending movies only.
func (s *CatalogService) ListPending(ctx context.Context, params models.ListMoviesParams, caller *models.Identity) (*models.MovieList, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.list(ctx, params, models.StatusPending)
}

func (s *CatalogService) list(ctx context.Context, params models.ListMoviesParams, status models.MovieStatus) (*models.MovieList, error) {
	page, limit := normalizePage(params.Page, params.Limit)

	sortBy, err := parseSortBy(params.SortBy)
	if err != nil {
		return nil, err
	}

	query := models.MovieQuery{
		Status:      status,
		TitleSearch: strings.TrimSpace(params.Search),
		SortBy:      sortBy,
		Skip:        int64(page-1) * int64(limit),
		Limit:       int64(limit),
	}

	if raw := strings.TrimSpace(params.Category); raw != "" {
		categoryID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, invalidf("category", "malformed category id %q", raw)
		}
		category, err := s.categoryStore.FindByID(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			// Unknown category filters to nothing, by contract. Movies with
			// dangling references must not surface through a deleted id.
			return &models.MovieList{
				Movies:     []models.Movie{},
				Pagination: paginate(page, limit, 0),
			}, nil
		}
		query.CategoryID = &categoryID
	}

	// Count and fetch are issued back to back, not snapshotted; under
	// concurrent writes total may be off by the interleaved mutations.
	total, err := s.movieStore.Count(ctx, query)
	if err != nil {
		return nil, err
	}
	movies, err := s.movieStore.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	return &models.MovieList{
		Movies:     movies,
		Pagination: paginate(page, limit, total),
	}, nil
}

// GetByID returns a movie with its reviews embedded. Pending movies are
// reachable by direct id; only listings hide them.
func (s *CatalogService) GetByID(ctx context.Context, id primitive.ObjectID) (*MovieDetail, error) {
	movie, err := s.movieStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	reviews, err := s.reviewStore.FindByMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return &MovieDetail{Movie: *movie, Reviews: reviews}, nil
}

// Popular lists approved movies that have at least one review, best rated
// first (ties broken by review count).
func (s *CatalogService) Popular(ctx context.Context, limit int) ([]models.Movie, error) {
	return s.movieStore.Find(ctx, models.MovieQuery{
		Status:    models.StatusApproved,
		OnlyRated: true,
		SortBy:    models.SortByRating,
		Limit:     int64(normalizeHomeLimit(limit)),
	})
}

// Recent lists the newest approved movies.
func (s *CatalogService) Recent(ctx context.Context, limit int) ([]models.Movie, error) {
	return s.movieStore.Find(ctx, models.MovieQuery{
		Status: models.StatusApproved,
		SortBy: models.SortByNewest,
		Limit:  int64(normalizeHomeLimit(limit)),
	})
}

// Create validates and stores a new movie. Ordinary users always enter the
// moderation queue; admins may request immediate approval.
func (s *CatalogService) Create(ctx context.Context, req *models.CreateMovieRequest, caller *models.Identity) (*models.Movie, error) {
	if caller == nil {
		return nil, ErrForbidden
	}
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > maxTitleLen {
		return nil, invalidf("title", "must be 1-%d characters", maxTitleLen)
	}
	if l := len(strings.TrimSpace(req.Description)); l < minDescription || l > maxDescription {
		return nil, invalidf("description", "must be %d-%d characters", minDescription, maxDescription)
	}
	if maxYear := time.Now().Year() + 2; req.Year < minMovieYear || req.Year > maxYear {
		return nil, invalidf("year", "must be between %d and %d", minMovieYear, maxYear)
	}

	categoryID, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	existing, err := s.movieStore.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	status := models.StatusPending
	if caller.IsAdmin() && req.Approve {
		status = models.StatusApproved
	}

	now := time.Now().UTC()
	movie := &models.Movie{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		CategoryID:  categoryID,
		Year:        req.Year,
		ImageURL:    req.ImageURL,
		Status:      status,
		Rating:      0,
		ReviewCount: 0,
		LikeCount:   0,
		CreatedBy:   caller.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := s.movieStore.Insert(ctx, movie)
	if err != nil {
		return nil, err
	}
	movie.ID = id
	return movie, nil
}

// Update applies the set fields and returns the movie as stored afterwards.
// Allowed for the creator or an admin.
func (s *CatalogService) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateMovieRequest, caller *models.Identity) (*models.Movie, error) {
	movie, err := s.movieStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	if !caller.IsAdmin() && (caller == nil || caller.UserID != movie.CreatedBy) {
		return nil, ErrForbidden
	}

	update := models.MovieUpdate{
		Year:     req.Year,
		ImageURL: req.ImageURL,
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" || len(title) > maxTitleLen {
			return nil, invalidf("title", "must be 1-%d characters", maxTitleLen)
		}
		if !strings.EqualFold(title, movie.Title) {
			other, err := s.movieStore.FindByTitle(ctx, title)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != movie.ID {
				return nil, ErrConflict
			}
		}
		update.Title = &title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if l := len(description); l < minDescription || l > maxDescription {
			return nil, invalidf("description", "must be %d-%d characters", minDescription, maxDescription)
		}
		update.Description = &description
	}
	if req.Year != nil {
		if maxYear := time.Now().Year() + 2; *req.Year < minMovieYear || *req.Year > maxYear {
			return nil, invalidf("year", "must be between %d and %d", minMovieYear, maxYear)
		}
	}
	if req.Category != nil {
		categoryID, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		update.CategoryID = categoryID
	}

	updated, err := s.movieStore.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes a movie and its reviews. Admins may delete any movie; the
// creator may delete their own while it is still pending.
func (s *CatalogService) Delete(ctx context.Context, id primitive.ObjectID, caller *models.Identity) error {
	movie, err := s.movieStore.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if movie == nil {
		return ErrNotFound
	}
	if !caller.IsAdmin() {
		if caller == nil || caller.UserID != movie.CreatedBy || movie.Status != models.StatusPending {
			return ErrForbidden
		}
	}
	if err := s.movieStore.Delete(ctx, id); err != nil {
		return err
	}
	return s.reviewStore.DeleteByMovie(ctx, id)
}

// Approve transitions a movie from pending to approved. Admin only,
// idempotent: approving an approved movie is a no-op success.
func (s *CatalogService) Approve(ctx context.Context, id primitive.ObjectID, caller *models.Identity) (*models.Movie, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	movie, err := s.movieStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	if movie.Status == models.StatusApproved {
		return movie, nil
	}
	if err := s.movieStore.SetStatus(ctx, id, models.StatusApproved); err != nil {
		return nil, err
	}
	movie.Status = models.StatusApproved
	return movie, nil
}

// resolveCategory parses and validates an optional category reference.
// Empty means uncategorized.
func (s *CatalogService) resolveCategory(ctx context.Context, raw string) (*primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	categoryID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, invalidf("category", "malformed category id %q", raw)
	}
	category, err := s.categoryStore.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return &categoryID, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func normalizeHomeLimit(limit int) int {
	if limit < 1 {
		return defaultHomeLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func parseSortBy(raw string) (models.SortBy, error) {
	switch models.SortBy(raw) {
	case "":
		return models.SortByRating, nil
	case models.SortByRating, models.SortByYear, models.SortByTitle, models.SortByNewest:
		return models.SortBy(raw), nil
	default:
		return "", invalidf("sortBy", "must be one of rating, year, title, newest")
	}
}

func paginate(page, limit int, total int64) models.Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return models.Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}
