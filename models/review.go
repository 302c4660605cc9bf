package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MovieID   primitive.ObjectID `bson:"movie_id" json:"movie_id"`
	AuthorID  primitive.ObjectID `bson:"author_id" json:"author_id"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// ReviewUpdate carries the fields a review author may change.
type ReviewUpdate struct {
	Rating  *int
	Comment *string
}
