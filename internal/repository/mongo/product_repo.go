package mongo

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productCollectionName = "products"

// mongoProductRepository keys products by barcode (_id), so no extra index is needed.
type mongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates the barcode catalog repository.
func NewMongoProductRepository(db *mongo.Database) repository.ProductRepository {
	return &mongoProductRepository{
		collection: db.Collection(productCollectionName),
	}
}

func (r *mongoProductRepository) GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	var product domain.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": barcode}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Upsert inserts or replaces the product with the same barcode.
func (r *mongoProductRepository) Upsert(ctx context.Context, product *domain.Product) error {
	if product.Barcode == "" {
		return errors.New("product barcode is required")
	}
	now := time.Now().UTC()
	product.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"name":          product.Name,
			"calories":      product.Calories,
			"proteins":      product.Proteins,
			"carbohydrates": product.Carbohydrates,
			"fats":          product.Fats,
			"updatedAt":     now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": product.Barcode}, update, options.Update().SetUpsert(true))
	return err
}
