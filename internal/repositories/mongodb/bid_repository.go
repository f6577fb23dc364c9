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

type bidRepository struct {
	collection *mongo.Collection
}

func NewBidRepository(db *mongo.Database) interfaces.BidRepository {
	return &bidRepository{
		collection: db.Collection(utils.CollectionBids),
	}
}

func (r *bidRepository) Create(ctx context.Context, bid *models.Bid) error {
	bid.ID = primitive.NewObjectID()
	bid.CreatedAt = time.Now()
	bid.CompletedAt = time.Now()
	if bid.Response == "" {
		bid.Response = models.BidResponsePending
	}

	_, err := r.collection.InsertOne(ctx, bid)
	if err != nil {
		return fmt.Errorf("failed to create bid: %w", err)
	}

	return nil
}

func (r *bidRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Bid, error) {
	var bid models.Bid
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&bid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", utils.MsgBidNotFound, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get bid: %w", err)
	}

	return &bid, nil
}

func (r *bidRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Bid, error) {
	return r.findBids(ctx, bson.M{"user": userID})
}

func (r *bidRepository) GetAll(ctx context.Context) ([]*models.Bid, error) {
	return r.findBids(ctx, bson.M{})
}

func (r *bidRepository) findBids(ctx context.Context, filter bson.M) ([]*models.Bid, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bids: %w", err)
	}
	defer cursor.Close(ctx)

	var bids []*models.Bid
	for cursor.Next(ctx) {
		var bid models.Bid
		if err := cursor.Decode(&bid); err != nil {
			return nil, fmt.Errorf("failed to decode bid: %w", err)
		}
		bids = append(bids, &bid)
	}

	return bids, cursor.Err()
}

func (r *bidRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BidResponse, approvedAt *time.Time) error {
	filter := bson.M{"_id": id}
	if status == models.BidResponseApproved {
		// The re-approval guard lives in the filter so two concurrent
		// approvals cannot both match the document.
		filter["response"] = bson.M{"$ne": models.BidResponseApproved}
	}

	set := bson.M{"response": status}
	if approvedAt != nil {
		set["approved_at"] = approvedAt
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update bid status: %w", err)
	}

	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("failed to check bid existence: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("%s: %w", utils.MsgBidNotFound, utils.ErrNotFound)
		}
		return fmt.Errorf("bid is already approved: %w", utils.ErrConflict)
	}

	return nil
}

func (r *bidRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete bid: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", utils.MsgBidNotFound, utils.ErrNotFound)
	}

	return nil
}
