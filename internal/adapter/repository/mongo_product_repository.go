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

type mongoProductRepository struct {
	products *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) repository.ProductRepository {
	return &mongoProductRepository{
		products: db.Collection("products"),
	}
}

func (r *mongoProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.products.InsertOne(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}
	return nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.products.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFound("Product", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get product", err)
	}
	return &product, nil
}

func (r *mongoProductRepository) List(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	filter := bson.M{"draft": false}

	total, err := r.products.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count products", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list products", err)
	}
	defer cursor.Close(ctx)

	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, errors.Internal("Failed to decode products", err)
	}
	return products, total, nil
}

func (r *mongoProductRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.products.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list products", err)
	}
	defer cursor.Close(ctx)

	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, errors.Internal("Failed to decode products", err)
	}
	return products, nil
}

func (r *mongoProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	result, err := r.products.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Product", nil)
	}
	return nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Product", nil)
	}
	return nil
}

type mongoCategoryRepository struct {
	categories *mongo.Collection
}

func NewMongoCategoryRepository(db *mongo.Database) repository.CategoryRepository {
	return &mongoCategoryRepository{
		categories: db.Collection("categories"),
	}
}

func (r *mongoCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}

	_, err := r.categories.InsertOne(ctx, category)
	if err != nil {
		return errors.Internal("Failed to create category", err)
	}
	return nil
}

func (r *mongoCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	cursor, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Internal("Failed to list categories", err)
	}
	defer cursor.Close(ctx)

	var categories []*entity.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, errors.Internal("Failed to decode categories", err)
	}
	return categories, nil
}
