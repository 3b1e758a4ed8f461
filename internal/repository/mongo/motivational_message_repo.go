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

const messageCollectionName = "motivational_messages"

type mongoMessageRepository struct {
	collection *mongo.Collection
}

// NewMongoMessageRepository creates a motivational message repository.
func NewMongoMessageRepository(db *mongo.Database) repository.MotivationalMessageRepository {
	return &mongoMessageRepository{
		collection: db.Collection(messageCollectionName),
	}
}

// CreateMany inserts messages in one round trip and assigns their IDs.
func (r *mongoMessageRepository) CreateMany(ctx context.Context, messages []domain.MotivationalMessage) ([]primitive.ObjectID, error) {
	if len(messages) == 0 {
		return nil, nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, len(messages))
	ids := make([]primitive.ObjectID, len(messages))
	for i := range messages {
		if messages[i].UserID == primitive.NilObjectID {
			return nil, errors.New("motivational message requires userId")
		}
		messages[i].ID = primitive.NewObjectID()
		messages[i].CreatedAt = now
		docs[i] = messages[i]
		ids[i] = messages[i].ID
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *mongoMessageRepository) List(ctx context.Context, filter repository.MessageFilter) ([]domain.MotivationalMessage, error) {
	return r.find(ctx, messageListFilter(filter))
}

func (r *mongoMessageRepository) ListTimed(ctx context.Context, userID primitive.ObjectID, timeOfDay string) ([]domain.MotivationalMessage, error) {
	return r.find(ctx, timedMessageFilter(userID, timeOfDay))
}

func (r *mongoMessageRepository) find(ctx context.Context, filter bson.M) ([]domain.MotivationalMessage, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []domain.MotivationalMessage{}
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *mongoMessageRepository) MarkRead(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx, ownedFilter(id, userID), bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoMessageRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, ownedFilter(id, userID))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func messageListFilter(f repository.MessageFilter) bson.M {
	filter := bson.M{"userId": f.UserID}
	if f.UnreadOnly {
		filter["isRead"] = false
	}
	return filter
}

func timedMessageFilter(userID primitive.ObjectID, timeOfDay string) bson.M {
	return bson.M{
		"userId": userID,
		"$or": bson.A{
			bson.M{"scheduledFor": timeOfDay},
			bson.M{"messageType": domain.MessageGeneral},
		},
	}
}

// EnsureMessageIndexes creates necessary indexes. Call during startup.
func EnsureMessageIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "isRead", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "scheduledFor", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
