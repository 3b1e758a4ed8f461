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

const mealLogCollectionName = "meal_logs"

// mongoMealLogRepository implements repository.MealLogRepository
type mongoMealLogRepository struct {
	collection *mongo.Collection
}

// NewMongoMealLogRepository creates a new meal log repository.
func NewMongoMealLogRepository(db *mongo.Database) repository.MealLogRepository {
	return &mongoMealLogRepository{
		collection: db.Collection(mealLogCollectionName),
	}
}

// Create inserts a new meal log entry.
func (r *mongoMealLogRepository) Create(ctx context.Context, entry *domain.MealLogEntry) (primitive.ObjectID, error) {
	if entry.UserID == primitive.NilObjectID || entry.MealDate == "" {
		return primitive.NilObjectID, errors.New("meal log requires userId and mealDate")
	}
	entry.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return primitive.NilObjectID, err
	}
	return entry.ID, nil
}

// GetByID retrieves one entry owned by userID.
func (r *mongoMealLogRepository) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.MealLogEntry, error) {
	var entry domain.MealLogEntry
	err := r.collection.FindOne(ctx, ownedFilter(id, userID)).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// List returns the user's entries ordered by date and time of day.
func (r *mongoMealLogRepository) List(ctx context.Context, filter repository.MealLogFilter) ([]domain.MealLogEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "mealDate", Value: 1}, {Key: "mealTime", Value: 1}})

	cursor, err := r.collection.Find(ctx, mealLogListFilter(filter), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []domain.MealLogEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Update replaces the editable fields of an entry owned by entry.UserID.
func (r *mongoMealLogRepository) Update(ctx context.Context, entry *domain.MealLogEntry) error {
	if entry.ID == primitive.NilObjectID {
		return errors.New("meal log ID is required for update")
	}
	entry.UpdatedAt = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, ownedFilter(entry.ID, entry.UserID), mealLogUpdate(entry))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an entry owned by userID.
func (r *mongoMealLogRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, ownedFilter(id, userID))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		// Not found OR not owned by this user.
		return repository.ErrNotFound
	}
	return nil
}

func ownedFilter(id, userID primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "userId": userID}
}

func mealLogListFilter(f repository.MealLogFilter) bson.M {
	filter := bson.M{"userId": f.UserID}
	if f.Date != "" {
		filter["mealDate"] = f.Date
	}
	return filter
}

func mealLogUpdate(entry *domain.MealLogEntry) bson.M {
	return bson.M{
		"$set": bson.M{
			"mealType":      entry.MealType,
			"mealDate":      entry.MealDate,
			"mealTime":      entry.MealTime,
			"calories":      entry.Calories,
			"proteins":      entry.Proteins,
			"fats":          entry.Fats,
			"carbohydrates": entry.Carbohydrates,
			"description":   entry.Description,
			"updatedAt":     entry.UpdatedAt,
		},
	}
}

// EnsureMealLogIndexes creates necessary indexes. Call during startup.
func EnsureMealLogIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Daily lookups and date-ordered listings per user
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "mealDate", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
