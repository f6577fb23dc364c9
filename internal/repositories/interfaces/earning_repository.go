package interfaces

import (
	"context"

	"freelancehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EarningRepository is append-only: no update or delete exists.
type EarningRepository interface {
	Create(ctx context.Context, earning *models.Earning) error
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Earning, error)
	GetAll(ctx context.Context) ([]*models.Earning, error)
	TotalByUserID(ctx context.Context, userID primitive.ObjectID) (float64, error)
	TotalAll(ctx context.Context) (float64, error)
}
