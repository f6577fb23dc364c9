package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is embedded in the entity it rates (a Project or a User), never
// stored as a standalone document. At most one review per author exists
// inside any one parent collection.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Name      string             `json:"name" bson:"name"`
	Avatar    string             `json:"avatar" bson:"avatar"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// AggregateReviews recomputes the derived rating fields for a review
// collection: the review count and the arithmetic mean of all ratings.
// An empty collection always yields a zero mean.
func AggregateReviews(reviews []Review) (ratings float64, numOfReviews int) {
	if len(reviews) == 0 {
		return 0, 0
	}

	sum := 0
	for _, rev := range reviews {
		sum += rev.Rating
	}

	return float64(sum) / float64(len(reviews)), len(reviews)
}

// UpsertReview replaces the author's existing review in place, or appends
// a new one when the author has not reviewed this parent yet. Replacing
// keeps the original review identity and creation time; only the rating
// and comment change. Returns the new collection and whether an existing
// review was replaced.
func UpsertReview(reviews []Review, incoming Review) ([]Review, bool) {
	for i, rev := range reviews {
		if rev.User == incoming.User {
			updated := make([]Review, len(reviews))
			copy(updated, reviews)
			updated[i].Rating = incoming.Rating
			updated[i].Comment = incoming.Comment
			return updated, true
		}
	}

	updated := make([]Review, 0, len(reviews)+1)
	updated = append(updated, reviews...)
	updated = append(updated, incoming)
	return updated, false
}

// RemoveReview filters the review with the given id out of the collection,
// preserving insertion order. Returns the filtered collection and whether
// the review was present.
func RemoveReview(reviews []Review, reviewID primitive.ObjectID) ([]Review, bool) {
	filtered := make([]Review, 0, len(reviews))
	found := false
	for _, rev := range reviews {
		if rev.ID == reviewID {
			found = true
			continue
		}
		filtered = append(filtered, rev)
	}
	return filtered, found
}
