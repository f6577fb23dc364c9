package interfaces

import (
	"context"
	"time"

	"freelancehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BidRepository interface {
	Create(ctx context.Context, bid *models.Bid) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Bid, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Bid, error)
	GetAll(ctx context.Context) ([]*models.Bid, error)

	// UpdateStatus performs the lifecycle transition as one conditional
	// write. When status is Approved the filter excludes bids that are
	// already Approved, so a concurrent double-approval loses atomically:
	// it reports ErrConflict, never a second approval. approvedAt is set
	// only when non-nil. The write touches just the status fields and
	// deliberately skips full document validation.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BidResponse, approvedAt *time.Time) error

	Delete(ctx context.Context, id primitive.ObjectID) error
}
