package mongo

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exportCollectionName = "exports"

// mongoExportRepository implements repository.ExportRepository
type mongoExportRepository struct {
	collection *mongo.Collection
}

// NewMongoExportRepository creates a new Export repository backed by MongoDB.
func NewMongoExportRepository(db *mongo.Database) repository.ExportRepository {
	return &mongoExportRepository{
		collection: db.Collection(exportCollectionName),
	}
}

// Create inserts new export metadata into the database.
func (r *mongoExportRepository) Create(ctx context.Context, export *domain.Export) (primitive.ObjectID, error) {
	if export.UserID == primitive.NilObjectID || export.S3ObjectKey == "" {
		return primitive.NilObjectID, errors.New("export requires userId and s3ObjectKey")
	}

	export.ID = primitive.NewObjectID()
	export.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, export); err != nil {
		return primitive.NilObjectID, err
	}
	return export.ID, nil
}

// GetByUserID lists a user's exports, newest first.
func (r *mongoExportRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Export, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exports := []domain.Export{}
	if err = cursor.All(ctx, &exports); err != nil {
		return nil, err
	}
	return exports, nil
}

// EnsureExportIndexes creates necessary indexes for the exports collection.
func EnsureExportIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "s3ObjectKey", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
