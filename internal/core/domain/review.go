package domain

import (
	"errors"
	"time"
)

var ErrReviewExists = errors.New("review already exists")
var ErrInvalidStar = errors.New("star must be between 1 and 5")
var ErrReviewNotFound = errors.New("review not found")
var ErrOwnGigReview = errors.New("cannot review own gig")

// Review is a buyer's rating of a gig. One review per user per gig.
type Review struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	GigID     string    `json:"gig_id" bson:"gig_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Star      int       `json:"star" bson:"star"`
	Desc      string    `json:"desc" bson:"desc"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
