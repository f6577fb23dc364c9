package interfaces

import (
	"context"

	"freelancehub/internal/models"
	"freelancehub/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectFilter narrows project listings; zero values mean "no filter".
type ProjectFilter struct {
	Category string
	MinPrice float64
	MaxPrice float64
}

type ProjectRepository interface {
	ReviewStore

	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Project, error)
	List(ctx context.Context, filter *ProjectFilter, params *utils.PaginationParams) ([]*models.Project, int64, error)
	ListAll(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
