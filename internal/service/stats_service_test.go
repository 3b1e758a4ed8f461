package service

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/nutrition"
	"alcyxob/nutrition-app/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStatsService_GetStats(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	entries := []domain.MealLogEntry{
		{MealDate: "2023-12-01", Calories: 900, Proteins: 10},
		{MealDate: "2024-01-08", Calories: 500, Proteins: 20, Carbohydrates: 60, Fats: 10},
		{MealDate: "2024-01-09", Calories: 600, Proteins: 30, Carbohydrates: 70, Fats: 15},
		{MealDate: "2024-01-10", Calories: 400, Proteins: 25, Carbohydrates: 40, Fats: 5},
		{MealDate: "2024-01-10", Calories: 300, Proteins: 5, Carbohydrates: 30, Fats: 5},
	}

	logs := new(MockMealLogRepository)
	logs.On("List", ctx, repository.MealLogFilter{UserID: userID}).Return(entries, nil)

	svc := NewStatsService(logs, fixedClock(now))
	report, err := svc.GetStats(ctx, userID, "bogus")
	require.NoError(t, err)

	assert.Equal(t, nutrition.PeriodWeek, report.Period)
	assert.Equal(t, nutrition.Summary{MealsLogged: 4, DaysTracked: 3, AverageCalories: 600}, report.Summary)
	require.Len(t, report.Series, 3)
	assert.Equal(t, "8/1", report.Series[0].Label)
	assert.Equal(t, 700, report.Series[2].Calories)
	assert.Equal(t, []nutrition.MacroSlice{
		{Name: "Protein", Grams: 80},
		{Name: "Carbs", Grams: 200},
		{Name: "Fat", Grams: 35},
	}, report.Macros)
	assert.Equal(t, StreakInfo{Streak: 3, Message: "You're building momentum!"}, report.Streak)
}

func TestStatsService_GetStreak(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	logs := new(MockMealLogRepository)
	logs.On("List", ctx, repository.MealLogFilter{UserID: userID}).Return([]domain.MealLogEntry{}, nil)

	svc := NewStatsService(logs, fixedClock(time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)))
	info, err := svc.GetStreak(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, &StreakInfo{Streak: 0, Message: "Start your streak today!"}, info)
}
