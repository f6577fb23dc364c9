package interfaces

import (
	"context"

	"freelancehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewSnapshot is one consistent read of a parent's review collection.
// Version is the value the subsequent conditional write must match.
type ReviewSnapshot struct {
	ParentID primitive.ObjectID
	Reviews  []models.Review
	Version  int64
}

// ReviewStore is implemented by any repository whose documents embed a
// review collection (users and projects). ReplaceReviews persists the
// collection together with both derived fields in a single conditional
// write: it fails with ErrConflict when the version no longer matches,
// which callers handle by re-reading and retrying.
type ReviewStore interface {
	ReviewSnapshot(ctx context.Context, parentID primitive.ObjectID) (*ReviewSnapshot, error)
	ReplaceReviews(ctx context.Context, parentID primitive.ObjectID, version int64, reviews []models.Review, ratings float64, numOfReviews int) error
}
