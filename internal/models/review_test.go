package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func makeReview(author primitive.ObjectID, rating int) Review {
	return Review{
		ID:     primitive.NewObjectID(),
		User:   author,
		Rating: rating,
	}
}

func TestAggregateReviewsEmpty(t *testing.T) {
	ratings, count := AggregateReviews(nil)
	if ratings != 0 || count != 0 {
		t.Fatalf("expected (0, 0) for empty collection, got (%v, %d)", ratings, count)
	}

	ratings, count = AggregateReviews([]Review{})
	if ratings != 0 || count != 0 {
		t.Fatalf("expected (0, 0) for empty slice, got (%v, %d)", ratings, count)
	}
}

func TestAggregateReviewsMean(t *testing.T) {
	author := primitive.NewObjectID()
	reviews := []Review{
		makeReview(author, 4),
		makeReview(primitive.NewObjectID(), 2),
		makeReview(primitive.NewObjectID(), 3),
	}

	ratings, count := AggregateReviews(reviews)
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}
	if ratings != 3.0 {
		t.Fatalf("expected mean 3.0, got %v", ratings)
	}
}

func TestUpsertReviewAppends(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	reviews, replaced := UpsertReview(nil, makeReview(a, 4))
	if replaced {
		t.Fatal("first review must not report a replacement")
	}
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}

	reviews, replaced = UpsertReview(reviews, makeReview(b, 2))
	if replaced {
		t.Fatal("new author must not report a replacement")
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
}

func TestUpsertReviewReplacesInPlace(t *testing.T) {
	author := primitive.NewObjectID()
	original := makeReview(author, 2)
	original.Comment = "meh"

	reviews := []Review{original, makeReview(primitive.NewObjectID(), 5)}

	incoming := makeReview(author, 4)
	incoming.Comment = "better than I thought"

	updated, replaced := UpsertReview(reviews, incoming)
	if !replaced {
		t.Fatal("same author must replace the existing review")
	}
	if len(updated) != 2 {
		t.Fatalf("replacement must not grow the collection, got %d", len(updated))
	}
	if updated[0].ID != original.ID {
		t.Fatal("replacement must keep the original review identity")
	}
	if updated[0].Rating != 4 || updated[0].Comment != "better than I thought" {
		t.Fatalf("rating and comment must be updated, got %+v", updated[0])
	}
	if updated[0].CreatedAt != original.CreatedAt {
		t.Fatal("replacement must keep the original creation time")
	}

	// The input slice stays untouched.
	if reviews[0].Rating != 2 {
		t.Fatalf("input slice mutated: %+v", reviews[0])
	}
}

func TestRemoveReview(t *testing.T) {
	first := makeReview(primitive.NewObjectID(), 5)
	second := makeReview(primitive.NewObjectID(), 1)
	third := makeReview(primitive.NewObjectID(), 3)
	reviews := []Review{first, second, third}

	filtered, found := RemoveReview(reviews, second.ID)
	if !found {
		t.Fatal("expected the review to be found")
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 reviews after removal, got %d", len(filtered))
	}
	if filtered[0].ID != first.ID || filtered[1].ID != third.ID {
		t.Fatal("removal must preserve insertion order")
	}

	_, found = RemoveReview(reviews, primitive.NewObjectID())
	if found {
		t.Fatal("unknown review id must not be reported as found")
	}
}

// Walks the lifecycle of a project's rating: no reviews, one author, a
// second author, then the first author revising their rating.
func TestReviewLifecycleAggregation(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	var reviews []Review

	ratings, count := AggregateReviews(reviews)
	if ratings != 0 || count != 0 {
		t.Fatalf("start: expected (0, 0), got (%v, %d)", ratings, count)
	}

	reviews, _ = UpsertReview(reviews, makeReview(alice, 4))
	ratings, count = AggregateReviews(reviews)
	if ratings != 4.0 || count != 1 {
		t.Fatalf("after alice: expected (4, 1), got (%v, %d)", ratings, count)
	}

	reviews, _ = UpsertReview(reviews, makeReview(bob, 2))
	ratings, count = AggregateReviews(reviews)
	if ratings != 3.0 || count != 2 {
		t.Fatalf("after bob: expected (3, 2), got (%v, %d)", ratings, count)
	}

	reviews, replaced := UpsertReview(reviews, makeReview(alice, 5))
	if !replaced {
		t.Fatal("alice revising must replace, not append")
	}
	ratings, count = AggregateReviews(reviews)
	if ratings != 3.5 || count != 2 {
		t.Fatalf("after revision: expected (3.5, 2), got (%v, %d)", ratings, count)
	}
}
