package validators

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateBidStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Approved", "Rejected"} {
		if errs := ValidateBidStatus(&BidStatusRequest{Response: valid}); len(errs) != 0 {
			t.Fatalf("%q must pass, got %v", valid, errs)
		}
	}

	for _, invalid := range []string{"", "approved", "Done"} {
		if errs := ValidateBidStatus(&BidStatusRequest{Response: invalid}); len(errs) == 0 {
			t.Fatalf("%q must fail validation", invalid)
		}
	}
}

func TestValidateProjectReviewRating(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	for _, rating := range []int{1, 3, 5} {
		errs := ValidateProjectReview(&ProjectReviewRequest{ProjectID: id, Rating: rating})
		if len(errs) != 0 {
			t.Fatalf("rating %d must pass, got %v", rating, errs)
		}
	}

	for _, rating := range []int{0, -2, 6} {
		errs := ValidateProjectReview(&ProjectReviewRequest{ProjectID: id, Rating: rating})
		if len(errs) == 0 {
			t.Fatalf("rating %d must fail validation", rating)
		}
	}

	if errs := ValidateProjectReview(&ProjectReviewRequest{ProjectID: "xyz", Rating: 3}); len(errs) == 0 {
		t.Fatal("malformed project id must fail validation")
	}
}

func TestValidateBidCreate(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	if errs := ValidateBidCreate(&BidCreateRequest{Proposal: "hello", BidsItems: []string{id}}); len(errs) != 0 {
		t.Fatalf("valid bid must pass, got %v", errs)
	}

	if errs := ValidateBidCreate(&BidCreateRequest{BidsItems: []string{id}}); len(errs) == 0 {
		t.Fatal("missing proposal must fail")
	}

	if errs := ValidateBidCreate(&BidCreateRequest{Proposal: "hello"}); len(errs) == 0 {
		t.Fatal("missing projects must fail")
	}

	if errs := ValidateBidCreate(&BidCreateRequest{Proposal: "hello", BidsItems: []string{"bad-id"}}); len(errs) == 0 {
		t.Fatal("malformed project id must fail")
	}
}

func TestValidateEarningCreate(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	if errs := ValidateEarningCreate(&EarningCreateRequest{UserID: id, Amount: 50}); len(errs) != 0 {
		t.Fatalf("valid earning must pass, got %v", errs)
	}

	if errs := ValidateEarningCreate(&EarningCreateRequest{UserID: id, Amount: -5}); len(errs) == 0 {
		t.Fatal("negative amount must fail")
	}

	if errs := ValidateEarningCreate(&EarningCreateRequest{UserID: "nope", Amount: 50}); len(errs) == 0 {
		t.Fatal("malformed user id must fail")
	}
}
