package mongodb

import (
	"context"
	"fmt"

	"freelancehub/internal/models"
	"freelancehub/internal/repositories/interfaces"
	"freelancehub/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// reviewDocument is the projection read by ReviewSnapshot.
type reviewDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	Reviews       []models.Review    `bson:"reviews"`
	ReviewVersion int64              `bson:"review_version"`
}

func reviewSnapshot(ctx context.Context, collection *mongo.Collection, parentID primitive.ObjectID) (*interfaces.ReviewSnapshot, error) {
	opts := options.FindOne().SetProjection(bson.M{
		"reviews":        1,
		"review_version": 1,
	})

	var doc reviewDocument
	err := collection.FindOne(ctx, bson.M{"_id": parentID}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s %s: %w", collection.Name(), parentID.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read review snapshot: %w", err)
	}

	return &interfaces.ReviewSnapshot{
		ParentID: doc.ID,
		Reviews:  doc.Reviews,
		Version:  doc.ReviewVersion,
	}, nil
}

// replaceReviews writes the review collection and both derived fields in
// one update, conditional on the version observed by the snapshot. A
// matched count of zero means either the document vanished or another
// writer won the race; the two are told apart so callers can retry only
// the latter.
func replaceReviews(ctx context.Context, collection *mongo.Collection, parentID primitive.ObjectID, version int64, reviews []models.Review, ratings float64, numOfReviews int) error {
	filter := bson.M{
		"_id":            parentID,
		"review_version": version,
	}
	update := bson.M{
		"$set": bson.M{
			"reviews":        reviews,
			"ratings":        ratings,
			"num_of_reviews": numOfReviews,
		},
		"$inc": bson.M{"review_version": 1},
	}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to write reviews: %w", err)
	}

	if result.MatchedCount == 0 {
		count, err := collection.CountDocuments(ctx, bson.M{"_id": parentID})
		if err != nil {
			return fmt.Errorf("failed to check parent existence: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("%s %s: %w", collection.Name(), parentID.Hex(), utils.ErrNotFound)
		}
		return fmt.Errorf("review version %d is stale: %w", version, utils.ErrConflict)
	}

	return nil
}
