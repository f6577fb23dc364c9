package mongodb

import (
	"context"
	"fmt"
	"time"

	"freelancehub/internal/models"
	"freelancehub/internal/repositories/interfaces"
	"freelancehub/internal/services"
	"freelancehub/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type projectRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewProjectRepository(db *mongo.Database, cache services.CacheService) interfaces.ProjectRepository {
	return &projectRepository{
		collection: db.Collection(utils.CollectionProjects),
		cache:      cache,
	}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()
	if project.Reviews == nil {
		project.Reviews = []models.Review{}
	}

	_, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var cached models.Project
	if r.getCachedProject(ctx, id, &cached) {
		return &cached, nil
	}

	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", utils.MsgProjectNotFound, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	r.cacheProject(ctx, &project)

	return &project, nil
}

func (r *projectRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Project, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*models.Project
	for cursor.Next(ctx) {
		var project models.Project
		if err := cursor.Decode(&project); err != nil {
			return nil, fmt.Errorf("failed to decode project: %w", err)
		}
		projects = append(projects, &project)
	}

	return projects, cursor.Err()
}

func (r *projectRepository) List(ctx context.Context, filter *interfaces.ProjectFilter, params *utils.PaginationParams) ([]*models.Project, int64, error) {
	query := bson.M{}

	if params != nil && params.Search != "" {
		query["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}
	if filter != nil {
		if filter.Category != "" {
			query["category"] = filter.Category
		}
		price := bson.M{}
		if filter.MinPrice > 0 {
			price["$gte"] = filter.MinPrice
		}
		if filter.MaxPrice > 0 {
			price["$lte"] = filter.MaxPrice
		}
		if len(price) > 0 {
			query["price"] = price
		}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if params != nil {
		findOpts = params.GetFindOptions()
	}

	cursor, err := r.collection.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*models.Project
	for cursor.Next(ctx) {
		var project models.Project
		if err := cursor.Decode(&project); err != nil {
			return nil, 0, fmt.Errorf("failed to decode project: %w", err)
		}
		projects = append(projects, &project)
	}

	return projects, total, cursor.Err()
}

func (r *projectRepository) ListAll(ctx context.Context) ([]*models.Project, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*models.Project
	for cursor.Next(ctx) {
		var project models.Project
		if err := cursor.Decode(&project); err != nil {
			return nil, fmt.Errorf("failed to decode project: %w", err)
		}
		projects = append(projects, &project)
	}

	return projects, cursor.Err()
}

func (r *projectRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", utils.MsgProjectNotFound, utils.ErrNotFound)
	}

	r.invalidateProject(ctx, id)

	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", utils.MsgProjectNotFound, utils.ErrNotFound)
	}

	r.invalidateProject(ctx, id)

	return nil
}

// Review storage

func (r *projectRepository) ReviewSnapshot(ctx context.Context, parentID primitive.ObjectID) (*interfaces.ReviewSnapshot, error) {
	return reviewSnapshot(ctx, r.collection, parentID)
}

func (r *projectRepository) ReplaceReviews(ctx context.Context, parentID primitive.ObjectID, version int64, reviews []models.Review, ratings float64, numOfReviews int) error {
	err := replaceReviews(ctx, r.collection, parentID, version, reviews, ratings, numOfReviews)
	if err != nil {
		return err
	}

	r.invalidateProject(ctx, parentID)

	return nil
}

// Cache helpers

func (r *projectRepository) cacheProject(ctx context.Context, project *models.Project) {
	if r.cache == nil {
		return
	}
	r.cache.Set(ctx, utils.CacheProjectPrefix+project.ID.Hex(), project, utils.CacheTTL)
}

func (r *projectRepository) getCachedProject(ctx context.Context, id primitive.ObjectID, dest *models.Project) bool {
	if r.cache == nil {
		return false
	}
	return r.cache.Get(ctx, utils.CacheProjectPrefix+id.Hex(), dest) == nil
}

func (r *projectRepository) invalidateProject(ctx context.Context, id primitive.ObjectID) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, utils.CacheProjectPrefix+id.Hex())
}
