package services

import (
	"context"
	"fmt"
	"time"

	"freelancehub/internal/models"
	"freelancehub/internal/repositories/interfaces"
	"freelancehub/internal/utils"
	"freelancehub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewService maintains the review collections embedded in projects and
// users, keeping the derived rating fields consistent with the collection
// on every mutation.
type ReviewService interface {
	UpsertProjectReview(ctx context.Context, authorID primitive.ObjectID, request *ReviewRequest) error
	ListProjectReviews(ctx context.Context, projectID primitive.ObjectID) ([]models.Review, error)
	RemoveProjectReview(ctx context.Context, projectID, reviewID primitive.ObjectID) error

	UpsertUserReview(ctx context.Context, authorID primitive.ObjectID, request *ReviewRequest) error
	ListUserReviews(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error)
	RemoveUserReview(ctx context.Context, userID, reviewID primitive.ObjectID) error
}

type ReviewRequest struct {
	ParentID primitive.ObjectID `json:"parent_id"`
	Rating   int                `json:"rating"`
	Comment  string             `json:"comment"`
}

type reviewService struct {
	userRepo    interfaces.UserRepository
	projectRepo interfaces.ProjectRepository
	logger      *logger.Logger
}

func NewReviewService(userRepo interfaces.UserRepository, projectRepo interfaces.ProjectRepository, log *logger.Logger) ReviewService {
	return &reviewService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		logger:      log,
	}
}

func (s *reviewService) UpsertProjectReview(ctx context.Context, authorID primitive.ObjectID, request *ReviewRequest) error {
	return s.upsert(ctx, s.projectRepo, authorID, request)
}

func (s *reviewService) ListProjectReviews(ctx context.Context, projectID primitive.ObjectID) ([]models.Review, error) {
	snapshot, err := s.projectRepo.ReviewSnapshot(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return snapshot.Reviews, nil
}

func (s *reviewService) RemoveProjectReview(ctx context.Context, projectID, reviewID primitive.ObjectID) error {
	return s.remove(ctx, s.projectRepo, projectID, reviewID)
}

func (s *reviewService) UpsertUserReview(ctx context.Context, authorID primitive.ObjectID, request *ReviewRequest) error {
	if authorID == request.ParentID {
		return fmt.Errorf("users cannot review themselves: %w", utils.ErrInvalidInput)
	}
	return s.upsert(ctx, s.userRepo, authorID, request)
}

func (s *reviewService) ListUserReviews(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	snapshot, err := s.userRepo.ReviewSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return snapshot.Reviews, nil
}

func (s *reviewService) RemoveUserReview(ctx context.Context, userID, reviewID primitive.ObjectID) error {
	return s.remove(ctx, s.userRepo, userID, reviewID)
}

// upsert reads the parent's review collection, applies the replace-or-
// append rule in memory, recomputes both derived fields, and writes the
// result back conditioned on the version it read. A stale version means a
// concurrent writer got there first; the whole sequence is retried
// against a fresh snapshot.
func (s *reviewService) upsert(ctx context.Context, store interfaces.ReviewStore, authorID primitive.ObjectID, request *ReviewRequest) error {
	if request.Rating < utils.MinReviewRating || request.Rating > utils.MaxReviewRating {
		return fmt.Errorf("rating must be between %d and %d: %w", utils.MinReviewRating, utils.MaxReviewRating, utils.ErrInvalidInput)
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return err
	}

	incoming := models.Review{
		ID:        primitive.NewObjectID(),
		User:      author.ID,
		Name:      author.Name,
		Avatar:    author.Avatar,
		Rating:    request.Rating,
		Comment:   request.Comment,
		CreatedAt: time.Now(),
	}

	var lastErr error
	for attempt := 0; attempt < utils.ReviewWriteAttempts; attempt++ {
		snapshot, err := store.ReviewSnapshot(ctx, request.ParentID)
		if err != nil {
			return err
		}

		reviews, replaced := models.UpsertReview(snapshot.Reviews, incoming)
		ratings, numOfReviews := models.AggregateReviews(reviews)

		err = store.ReplaceReviews(ctx, request.ParentID, snapshot.Version, reviews, ratings, numOfReviews)
		if err == nil {
			s.logger.WithFields(map[string]interface{}{
				"parent_id": request.ParentID.Hex(),
				"author_id": authorID.Hex(),
				"replaced":  replaced,
				"ratings":   ratings,
			}).Info("review upserted")
			return nil
		}
		if !utils.IsConflict(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("review upsert contention on %s: %w", request.ParentID.Hex(), lastErr)
}

func (s *reviewService) remove(ctx context.Context, store interfaces.ReviewStore, parentID, reviewID primitive.ObjectID) error {
	var lastErr error
	for attempt := 0; attempt < utils.ReviewWriteAttempts; attempt++ {
		snapshot, err := store.ReviewSnapshot(ctx, parentID)
		if err != nil {
			return err
		}

		reviews, found := models.RemoveReview(snapshot.Reviews, reviewID)
		if !found {
			return fmt.Errorf("%s: %w", utils.MsgReviewNotFound, utils.ErrNotFound)
		}

		ratings, numOfReviews := models.AggregateReviews(reviews)

		err = store.ReplaceReviews(ctx, parentID, snapshot.Version, reviews, ratings, numOfReviews)
		if err == nil {
			s.logger.WithFields(map[string]interface{}{
				"parent_id": parentID.Hex(),
				"review_id": reviewID.Hex(),
			}).Info("review removed")
			return nil
		}
		if !utils.IsConflict(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("review removal contention on %s: %w", parentID.Hex(), lastErr)
}
