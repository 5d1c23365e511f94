package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Name      string             `bson:"name" json:"name"`
	Rating    float64            `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User        primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int64              `bson:"stock" json:"stock"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"`
	Brand       string             `bson:"brand" json:"brand"`
	Rating      float64            `bson:"rating" json:"rating"`
	NumReviews  int64              `bson:"numReviews" json:"numReviews"`
	Reviews     []Review           `bson:"reviews" json:"reviews"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RecalculateRating restores the derived review fields after the review list
// changed. Rating is the arithmetic mean in list order, 0 when there are no
// reviews.
func (p *Product) RecalculateRating() {
	p.NumReviews = int64(len(p.Reviews))
	if p.NumReviews == 0 {
		p.Rating = 0
		return
	}

	var sum float64
	for _, review := range p.Reviews {
		sum += review.Rating
	}
	p.Rating = sum / float64(p.NumReviews)
}

// ReviewedBy reports whether the given user already has a review on the
// product. A user may submit at most one review per product.
func (p *Product) ReviewedBy(userID primitive.ObjectID) bool {
	for _, review := range p.Reviews {
		if review.User == userID {
			return true
		}
	}
	return false
}
