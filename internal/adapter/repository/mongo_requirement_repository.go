package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"procurehub/internal/domain/entity"
	"procurehub/internal/domain/repository"
	"procurehub/pkg/errors"
)

type mongoBidRepository struct {
	bids *mongo.Collection
}

func NewMongoBidRepository(db *mongo.Database) repository.BidRepository {
	return &mongoBidRepository{
		bids: db.Collection("bids"),
	}
}

func (r *mongoBidRepository) Create(ctx context.Context, bid *entity.Bid) error {
	if bid.ID == "" {
		bid.ID = uuid.New().String()
	}

	now := time.Now()
	bid.CreatedAt = now
	bid.UpdatedAt = now

	_, err := r.bids.InsertOne(ctx, bid)
	if err != nil {
		return errors.Internal("Failed to create bid", err)
	}
	return nil
}

func (r *mongoBidRepository) GetByID(ctx context.Context, id string) (*entity.Bid, error) {
	var bid entity.Bid
	err := r.bids.FindOne(ctx, bson.M{"_id": id}).Decode(&bid)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFound("Bid", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get bid", err)
	}
	return &bid, nil
}

func (r *mongoBidRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Bid, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.bids.Find(ctx, bson.M{"buyerId": buyerID}, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list bids", err)
	}
	defer cursor.Close(ctx)

	var bids []*entity.Bid
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, errors.Internal("Failed to decode bids", err)
	}
	return bids, nil
}

func (r *mongoBidRepository) Delete(ctx context.Context, id string) error {
	result, err := r.bids.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Internal("Failed to delete bid", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Bid", nil)
	}
	return nil
}

type mongoRequirementRepository struct {
	requirements *mongo.Collection
	approved     *mongo.Collection
}

func NewMongoRequirementRepository(db *mongo.Database) repository.RequirementRepository {
	return &mongoRequirementRepository{
		requirements: db.Collection("requirements"),
		approved:     db.Collection("approved_requirements"),
	}
}

func (r *mongoRequirementRepository) Create(ctx context.Context, req *entity.Requirement) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.DealStatus == "" {
		req.DealStatus = "pending"
	}

	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	_, err := r.requirements.InsertOne(ctx, req)
	if err != nil {
		return errors.Internal("Failed to create requirement", err)
	}
	return nil
}

func (r *mongoRequirementRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Requirement, error) {
	filter := bson.M{"buyerId": buyerID, "isDelete": false}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.requirements.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list requirements", err)
	}
	defer cursor.Close(ctx)

	var requirements []*entity.Requirement
	if err := cursor.All(ctx, &requirements); err != nil {
		return nil, errors.Internal("Failed to decode requirements", err)
	}
	return requirements, nil
}

func (r *mongoRequirementRepository) FindOpen(ctx context.Context, productID, buyerID, sellerID string) (*entity.Requirement, error) {
	filter := bson.M{
		"productId":        productID,
		"buyerId":          buyerID,
		"sellers.sellerId": sellerID,
		"dealStatus":       "pending",
		"isDelete":         false,
	}

	var req entity.Requirement
	err := r.requirements.FindOne(ctx, filter).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFound("Requirement", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to find requirement", err)
	}
	return &req, nil
}

func (r *mongoRequirementRepository) MarkApproved(ctx context.Context, id string) error {
	result, err := r.requirements.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"requirementApproved": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		return errors.Internal("Failed to approve requirement", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Requirement", nil)
	}
	return nil
}

func (r *mongoRequirementRepository) CreateApproved(ctx context.Context, approved *entity.ApprovedRequirement) error {
	if approved.ID == "" {
		approved.ID = uuid.New().String()
	}
	if approved.Date.IsZero() {
		approved.Date = time.Now()
	}
	approved.CreatedAt = time.Now()

	_, err := r.approved.InsertOne(ctx, approved)
	if err != nil {
		return errors.Internal("Failed to record approved requirement", err)
	}
	return nil
}
