package domain

import (
	"errors"
	"time"
)

var ErrGigNotFound = errors.New("gig not found")

// Categories is the fixed set of marketplace categories.
var Categories = []string{
	"Graphics & Design",
	"Digital Marketing",
	"Writing & Translation",
	"Video & Animation",
	"Music & Audio",
	"Programming & Tech",
	"Business",
	"Lifestyle",
}

// ValidCategory reports whether c is a known category.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// Gig is a sellable service listing owned by a seller.
//
// TotalStars and StarNumber are denormalised rating counters maintained by
// review creation: TotalStars accumulates the star values, StarNumber counts
// the reviews. The displayed rating is their quotient.
type Gig struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	UserID        string    `json:"user_id" bson:"user_id"`
	Title         string    `json:"title" bson:"title"`
	Desc          string    `json:"desc" bson:"desc"`
	Category      string    `json:"category" bson:"category"`
	Price         int       `json:"price" bson:"price"`
	Cover         string    `json:"cover" bson:"cover"`
	Images        []string  `json:"images" bson:"images"`
	Features      []string  `json:"features" bson:"features"`
	DeliveryDays  int       `json:"delivery_days" bson:"delivery_days"`
	RevisionCount int       `json:"revision_count" bson:"revision_count"`
	TotalStars    int       `json:"total_stars" bson:"total_stars"`
	StarNumber    int       `json:"star_number" bson:"star_number"`
	Sales         int       `json:"sales" bson:"sales"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// Rating returns the average star rating, or 0 when the gig has no reviews.
func (g *Gig) Rating() float64 {
	if g.StarNumber == 0 {
		return 0
	}
	return float64(g.TotalStars) / float64(g.StarNumber)
}
