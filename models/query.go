package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SortBy names the catalog sort orders a caller may request.
type SortBy string

const (
	SortByRating SortBy = "rating" // rating desc, review count desc
	SortByYear   SortBy = "year"   // release year desc
	SortByTitle  SortBy = "title"  // title asc
	SortByNewest SortBy = "newest" // creation time desc
)

// ListMoviesParams are the raw query parameters of a catalog listing
// request, before normalization.
type ListMoviesParams struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Category string `form:"category"`
	Search   string `form:"search"`
	SortBy   string `form:"sortBy"`
}

// MovieQuery is the normalized, typed query the engine hands to the store.
type MovieQuery struct {
	Status      MovieStatus
	CategoryID  *primitive.ObjectID
	TitleSearch string
	OnlyRated   bool // review_count > 0
	SortBy      SortBy
	Skip        int64
	Limit       int64
}

type Pagination struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

type MovieList struct {
	Movies     []Movie    `json:"movies"`
	Pagination Pagination `json:"pagination"`
}
