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

const nutritionGoalCollectionName = "nutrition_goals"

type mongoNutritionGoalRepository struct {
	collection *mongo.Collection
}

// NewMongoNutritionGoalRepository creates a new nutrition goal repository.
func NewMongoNutritionGoalRepository(db *mongo.Database) repository.NutritionGoalRepository {
	return &mongoNutritionGoalRepository{
		collection: db.Collection(nutritionGoalCollectionName),
	}
}

func (r *mongoNutritionGoalRepository) Create(ctx context.Context, goal *domain.NutritionGoal) (primitive.ObjectID, error) {
	if goal.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("nutrition goal requires userId")
	}
	goal.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	if goal.StartDate.IsZero() {
		goal.StartDate = now
	}

	if _, err := r.collection.InsertOne(ctx, goal); err != nil {
		return primitive.NilObjectID, err
	}
	return goal.ID, nil
}

func (r *mongoNutritionGoalRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.NutritionGoal, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetActiveByUserID returns the newest active goal of the user.
func (r *mongoNutritionGoalRepository) GetActiveByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.NutritionGoal, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findOne(ctx, bson.M{"userId": userID, "isActive": true}, opts)
}

func (r *mongoNutritionGoalRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*domain.NutritionGoal, error) {
	var goal domain.NutritionGoal
	if err := r.collection.FindOne(ctx, filter, opts...).Decode(&goal); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *mongoNutritionGoalRepository) DeactivateByUserID(ctx context.Context, userID primitive.ObjectID) error {
	filter := bson.M{"userId": userID, "isActive": true}
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UTC()}}
	_, err := r.collection.UpdateMany(ctx, filter, update)
	return err
}

// UpdateTargets changes only the four targets.
func (r *mongoNutritionGoalRepository) UpdateTargets(ctx context.Context, goal *domain.NutritionGoal) error {
	goal.UpdatedAt = time.Now().UTC()
	return r.updateByID(ctx, goal.ID, bson.M{
		"caloriesGoal": goal.CaloriesGoal,
		"proteinsGoal": goal.ProteinsGoal,
		"fatsGoal":     goal.FatsGoal,
		"carbsGoal":    goal.CarbsGoal,
		"updatedAt":    goal.UpdatedAt,
	})
}

func (r *mongoNutritionGoalRepository) SaveProgress(ctx context.Context, goal *domain.NutritionGoal) error {
	goal.UpdatedAt = time.Now().UTC()
	return r.updateByID(ctx, goal.ID, bson.M{
		"caloriesGoal":     goal.CaloriesGoal,
		"proteinsGoal":     goal.ProteinsGoal,
		"fatsGoal":         goal.FatsGoal,
		"carbsGoal":        goal.CarbsGoal,
		"startDate":        goal.StartDate,
		"goalAchievedDays": goal.GoalAchievedDays,
		"lastAchievedDate": goal.LastAchievedDate,
		"updatedAt":        goal.UpdatedAt,
	})
}

func (r *mongoNutritionGoalRepository) updateByID(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if id == primitive.NilObjectID {
		return errors.New("nutrition goal ID is required for update")
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureNutritionGoalIndexes creates necessary indexes. Call during startup.
func EnsureNutritionGoalIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "isActive", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
