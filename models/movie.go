package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MovieStatus tracks a movie through the moderation workflow.
type MovieStatus string

const (
	StatusPending  MovieStatus = "pending"
	StatusApproved MovieStatus = "approved"
)

type Movie struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	CategoryID  *primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	Year        int                 `bson:"year" json:"year"`
	ImageURL    string              `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Status      MovieStatus         `bson:"status" json:"status"`
	Rating      float64             `bson:"rating" json:"rating"`
	ReviewCount int                 `bson:"review_count" json:"review_count"`
	LikeCount   int                 `bson:"like_count" json:"like_count"`
	CreatedBy   primitive.ObjectID  `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}

// MovieUpdate carries the fields a caller may change on an existing movie.
// Nil pointers leave the stored value untouched.
type MovieUpdate struct {
	Title       *string
	Description *string
	CategoryID  *primitive.ObjectID
	Year        *int
	ImageURL    *string
}
