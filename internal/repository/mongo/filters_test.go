package mongo

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMealLogListFilter(t *testing.T) {
	userID := primitive.NewObjectID()

	assert.Equal(t, bson.M{"userId": userID}, mealLogListFilter(repository.MealLogFilter{UserID: userID}))
	assert.Equal(t,
		bson.M{"userId": userID, "mealDate": "2024-01-10"},
		mealLogListFilter(repository.MealLogFilter{UserID: userID, Date: "2024-01-10"}),
	)
}

func TestOwnedFilter(t *testing.T) {
	id, userID := primitive.NewObjectID(), primitive.NewObjectID()
	assert.Equal(t, bson.M{"_id": id, "userId": userID}, ownedFilter(id, userID))
}

func TestMealLogUpdate(t *testing.T) {
	entry := &domain.MealLogEntry{
		MealType:      domain.MealDinner,
		MealDate:      "2024-01-10",
		MealTime:      "19:00",
		Calories:      700,
		Proteins:      40,
		Fats:          20,
		Carbohydrates: 80,
	}

	set, ok := mealLogUpdate(entry)["$set"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, domain.MealDinner, set["mealType"])
	assert.Equal(t, 700, set["calories"])
	assert.NotContains(t, set, "userId", "ownership never changes on update")
	assert.NotContains(t, set, "createdAt")
}

func TestMessageFilters(t *testing.T) {
	userID := primitive.NewObjectID()

	assert.Equal(t, bson.M{"userId": userID}, messageListFilter(repository.MessageFilter{UserID: userID}))
	assert.Equal(t,
		bson.M{"userId": userID, "isRead": false},
		messageListFilter(repository.MessageFilter{UserID: userID, UnreadOnly: true}),
	)

	timed := timedMessageFilter(userID, "12:30")
	assert.Equal(t, userID, timed["userId"])
	assert.Equal(t, bson.A{
		bson.M{"scheduledFor": "12:30"},
		bson.M{"messageType": domain.MessageGeneral},
	}, timed["$or"])
}
