package interfaces

import (
	"context"

	"freelancehub/internal/models"
	"freelancehub/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	ReviewStore

	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByResetToken matches the stored token hash against unexpired
	// reset tokens only.
	GetByResetToken(ctx context.Context, tokenHash string) (*models.User, error)
	GetSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.UserSummary, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}
