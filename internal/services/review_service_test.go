package services

import (
	"context"
	"testing"

	"freelancehub/internal/utils"
	"freelancehub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newReviewServiceForTest() (ReviewService, *fakeUserRepo, *fakeProjectRepo) {
	userRepo := newFakeUserRepo()
	projectRepo := newFakeProjectRepo()
	service := NewReviewService(userRepo, projectRepo, logger.NewNopLogger())
	return service, userRepo, projectRepo
}

func TestUpsertProjectReviewAppendsAndAggregates(t *testing.T) {
	service, userRepo, projectRepo := newReviewServiceForTest()
	ctx := context.Background()

	alice := userRepo.addUser("alice")
	project := projectRepo.addProject("landing page")

	err := service.UpsertProjectReview(ctx, alice.ID, &ReviewRequest{
		ParentID: project.ID,
		Rating:   4,
		Comment:  "solid work",
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	doc := projectRepo.docs[project.ID]
	if doc.numOfReviews != 1 || doc.ratings != 4.0 {
		t.Fatalf("expected (4.0, 1), got (%v, %d)", doc.ratings, doc.numOfReviews)
	}
	if len(doc.reviews) != 1 || doc.reviews[0].Name != "alice" {
		t.Fatalf("review not stored with author identity: %+v", doc.reviews)
	}
}

func TestUpsertProjectReviewReplacesSameAuthor(t *testing.T) {
	service, userRepo, projectRepo := newReviewServiceForTest()
	ctx := context.Background()

	alice := userRepo.addUser("alice")
	bob := userRepo.addUser("bob")
	project := projectRepo.addProject("logo design")

	steps := []struct {
		author  primitive.ObjectID
		rating  int
		ratings float64
		count   int
	}{
		{alice.ID, 4, 4.0, 1},
		{bob.ID, 2, 3.0, 2},
		{alice.ID, 5, 3.5, 2},
	}

	for i, step := range steps {
		err := service.UpsertProjectReview(ctx, step.author, &ReviewRequest{
			ParentID: project.ID,
			Rating:   step.rating,
		})
		if err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}

		doc := projectRepo.docs[project.ID]
		if doc.ratings != step.ratings || doc.numOfReviews != step.count {
			t.Fatalf("step %d: expected (%v, %d), got (%v, %d)",
				i, step.ratings, step.count, doc.ratings, doc.numOfReviews)
		}
	}
}

func TestUpsertReviewRatingOutOfRange(t *testing.T) {
	service, userRepo, projectRepo := newReviewServiceForTest()
	ctx := context.Background()

	alice := userRepo.addUser("alice")
	project := projectRepo.addProject("api integration")

	for _, rating := range []int{0, -1, 6} {
		err := service.UpsertProjectReview(ctx, alice.ID, &ReviewRequest{
			ParentID: project.ID,
			Rating:   rating,
		})
		if !utils.IsInvalidInput(err) {
			t.Fatalf("rating %d: expected invalid input, got %v", rating, err)
		}
	}

	if doc := projectRepo.docs[project.ID]; len(doc.reviews) != 0 {
		t.Fatal("rejected reviews must not be stored")
	}
}

func TestUpsertReviewUnknownProject(t *testing.T) {
	service, userRepo, _ := newReviewServiceForTest()
	ctx := context.Background()

	alice := userRepo.addUser("alice")

	err := service.UpsertProjectReview(ctx, alice.ID, &ReviewRequest{
		ParentID: primitive.NewObjectID(),
		Rating:   3,
	})
	if !utils.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpsertReviewRetriesOnVersionConflict(t *testing.T) {
	service, userRepo, projectRepo := newReviewServiceForTest()
	ctx := context.Background()

	alice := userRepo.addUser("alice")
	project := projectRepo.addProject("mobile app")
	projectRepo.forcedConflicts = 2

	err := service.UpsertProjectReview(ctx, alice.ID, &ReviewRequest{
		ParentID: project.ID,
		Rating:   5,
	})
	if err != nil {
		t.Fatalf("upsert should survive transient conflicts: %v", err)
	}
	if projectRepo.replaceCalls != 3 {
		t.Fatalf("expected 3 write attempts, got %d", projectRepo.replaceCalls)
	}

	doc := projectRepo.docs[project.ID]
	if doc.numOfReviews != 1 || doc.ratings != 5.0 {
		t.Fatalf("expected (5.0, 1) after retries, got (%v, %d)", doc.ratings, doc.numOfReviews)
	}
}

func TestUpsertReviewGivesUpAfterMaxAttempts(t *testing.T) {
	service, userRepo, projectRepo := newReviewServiceForTest()
	ctx := context.Background()

	alice := userRepo.addUser("alice")
	project := projectRepo.addProject("seo audit")
	projectRepo.forcedConflicts = utils.ReviewWriteAttempts + 1

	err := service.UpsertProjectReview(ctx, alice.ID, &ReviewRequest{
		ParentID: project.ID,
		Rating:   3,
	})
	if !utils.IsConflict(err) {
		t.Fatalf("expected conflict after exhausting retries, got %v", err)
	}
}

func TestRemoveProjectReview(t *testing.T) {
	service, userRepo, projectRepo := newReviewServiceForTest()
	ctx := context.Background()

	alice := userRepo.addUser("alice")
	bob := userRepo.addUser("bob")
	project := projectRepo.addProject("data pipeline")

	for _, step := range []struct {
		author primitive.ObjectID
		rating int
	}{{alice.ID, 5}, {bob.ID, 1}} {
		if err := service.UpsertProjectReview(ctx, step.author, &ReviewRequest{
			ParentID: project.ID,
			Rating:   step.rating,
		}); err != nil {
			t.Fatalf("seed upsert failed: %v", err)
		}
	}

	doc := projectRepo.docs[project.ID]
	if err := service.RemoveProjectReview(ctx, project.ID, doc.reviews[1].ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	doc = projectRepo.docs[project.ID]
	if doc.numOfReviews != 1 || doc.ratings != 5.0 {
		t.Fatalf("expected (5.0, 1) after removal, got (%v, %d)", doc.ratings, doc.numOfReviews)
	}

	err := service.RemoveProjectReview(ctx, project.ID, primitive.NewObjectID())
	if !utils.IsNotFound(err) {
		t.Fatalf("expected not found for unknown review, got %v", err)
	}
}

func TestUpsertUserReviewSelfReviewRejected(t *testing.T) {
	service, userRepo, _ := newReviewServiceForTest()
	ctx := context.Background()

	alice := userRepo.addUser("alice")

	err := service.UpsertUserReview(ctx, alice.ID, &ReviewRequest{
		ParentID: alice.ID,
		Rating:   5,
	})
	if !utils.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for self review, got %v", err)
	}
}

func TestUpsertUserReviewAggregates(t *testing.T) {
	service, userRepo, _ := newReviewServiceForTest()
	ctx := context.Background()

	alice := userRepo.addUser("alice")
	carol := userRepo.addUser("carol")

	err := service.UpsertUserReview(ctx, alice.ID, &ReviewRequest{
		ParentID: carol.ID,
		Rating:   4,
		Comment:  "responsive and professional",
	})
	if err != nil {
		t.Fatalf("user review upsert failed: %v", err)
	}

	reviews, err := service.ListUserReviews(ctx, carol.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(reviews) != 1 || reviews[0].User != alice.ID {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}

	doc := userRepo.docs[carol.ID]
	if doc.ratings != 4.0 || doc.numOfReviews != 1 {
		t.Fatalf("expected (4.0, 1), got (%v, %d)", doc.ratings, doc.numOfReviews)
	}
}

func TestRemoveUserReview(t *testing.T) {
	service, userRepo, _ := newReviewServiceForTest()
	ctx := context.Background()

	alice := userRepo.addUser("alice")
	bob := userRepo.addUser("bob")
	carol := userRepo.addUser("carol")

	for _, step := range []struct {
		author primitive.ObjectID
		rating int
	}{{alice.ID, 2}, {bob.ID, 4}} {
		if err := service.UpsertUserReview(ctx, step.author, &ReviewRequest{
			ParentID: carol.ID,
			Rating:   step.rating,
		}); err != nil {
			t.Fatalf("seed upsert failed: %v", err)
		}
	}

	doc := userRepo.docs[carol.ID]
	if err := service.RemoveUserReview(ctx, carol.ID, doc.reviews[0].ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	doc = userRepo.docs[carol.ID]
	if doc.numOfReviews != 1 || doc.ratings != 4.0 {
		t.Fatalf("expected (4.0, 1) after removal, got (%v, %d)", doc.ratings, doc.numOfReviews)
	}
	if len(doc.reviews) != 1 || doc.reviews[0].User != bob.ID {
		t.Fatalf("wrong review removed: %+v", doc.reviews)
	}

	err := service.RemoveUserReview(ctx, carol.ID, primitive.NewObjectID())
	if !utils.IsNotFound(err) {
		t.Fatalf("expected not found for unknown review, got %v", err)
	}
}
