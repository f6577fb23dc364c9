package mongodb

import (
	"context"
	"fmt"
	"time"

	"freelancehub/internal/models"
	"freelancehub/internal/repositories/interfaces"
	"freelancehub/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type earningRepository struct {
	collection *mongo.Collection
}

func NewEarningRepository(db *mongo.Database) interfaces.EarningRepository {
	return &earningRepository{
		collection: db.Collection(utils.CollectionEarnings),
	}
}

func (r *earningRepository) Create(ctx context.Context, earning *models.Earning) error {
	earning.ID = primitive.NewObjectID()
	earning.ReceivedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, earning)
	if err != nil {
		return fmt.Errorf("failed to create earning: %w", err)
	}

	return nil
}

func (r *earningRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Earning, error) {
	return r.findEarnings(ctx, bson.M{"user": userID})
}

func (r *earningRepository) GetAll(ctx context.Context) ([]*models.Earning, error) {
	return r.findEarnings(ctx, bson.M{})
}

func (r *earningRepository) findEarnings(ctx context.Context, filter bson.M) ([]*models.Earning, error) {
	opts := options.Find().SetSort(bson.D{{Key: "received_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find earnings: %w", err)
	}
	defer cursor.Close(ctx)

	var earnings []*models.Earning
	for cursor.Next(ctx) {
		var earning models.Earning
		if err := cursor.Decode(&earning); err != nil {
			return nil, fmt.Errorf("failed to decode earning: %w", err)
		}
		earnings = append(earnings, &earning)
	}

	return earnings, cursor.Err()
}

func (r *earningRepository) TotalByUserID(ctx context.Context, userID primitive.ObjectID) (float64, error) {
	return r.sumAmount(ctx, bson.M{"user": userID})
}

func (r *earningRepository) TotalAll(ctx context.Context) (float64, error) {
	return r.sumAmount(ctx, bson.M{})
}

func (r *earningRepository) sumAmount(ctx context.Context, match bson.M) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to sum earnings: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode earning total: %w", err)
	}

	// No matching rows sums to zero.
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}
