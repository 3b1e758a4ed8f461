package api

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/nutrition"
	"alcyxob/nutrition-app/internal/service"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMealLogHandler_Create(t *testing.T) {
	userID := primitive.NewObjectID()
	req := MealLogRequest{MealType: "lunch", MealDate: "2024-01-10", MealTime: "12:30", Calories: 650, Proteins: 35, Fats: 20, Carbohydrates: 70}

	t.Run("created entry carries display label and icon", func(t *testing.T) {
		s := newTestServer()
		token := signToken(t, userID, domain.RoleMember, time.Hour)
		entry := &domain.MealLogEntry{ID: primitive.NewObjectID(), UserID: userID, MealType: domain.MealLunch, MealDate: "2024-01-10", Calories: 650}
		s.mealLog.On("CreateMealLog", mock.Anything, userID, req.toInput()).Return(entry, nil)

		w := s.do(t, http.MethodPost, "/api/v1/meallogs", req, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp MealLogResponse
		decode(t, w, &resp)
		assert.Equal(t, entry.ID.Hex(), resp.ID)
		assert.Equal(t, "Lunch", resp.MealLabel)
		assert.Equal(t, "hamburger", resp.MealIcon)
	})

	t.Run("validation errors are 400", func(t *testing.T) {
		s := newTestServer()
		token := signToken(t, userID, domain.RoleMember, time.Hour)
		bad := req
		bad.MealType = "brunch"
		s.mealLog.On("CreateMealLog", mock.Anything, userID, bad.toInput()).
			Return(nil, fmt.Errorf("%w: unknown meal type", service.ErrInvalidMealLog))

		w := s.do(t, http.MethodPost, "/api/v1/meallogs", bad, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative calories rejected by binding", func(t *testing.T) {
		s := newTestServer()
		bad := req
		bad.Calories = -5

		w := s.do(t, http.MethodPost, "/api/v1/meallogs", bad, signToken(t, userID, domain.RoleMember, time.Hour))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		s.mealLog.AssertNotCalled(t, "CreateMealLog", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMealLogHandler_GetAndDelete(t *testing.T) {
	s := newTestServer()
	userID := primitive.NewObjectID()
	id := primitive.NewObjectID()
	token := signToken(t, userID, domain.RoleMember, time.Hour)

	s.mealLog.On("GetMealLog", mock.Anything, userID, id).Return(nil, service.ErrMealLogNotFound)
	s.mealLog.On("DeleteMealLog", mock.Anything, userID, id).Return(nil)

	w := s.do(t, http.MethodGet, "/api/v1/meallogs/"+id.Hex(), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, service.ErrMealLogNotFound.Error(), errorMessage(t, w))

	w = s.do(t, http.MethodDelete, "/api/v1/meallogs/"+id.Hex(), nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/meallogs/not-an-id", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMealLogHandler_ListByDate(t *testing.T) {
	s := newTestServer()
	userID := primitive.NewObjectID()
	entries := []domain.MealLogEntry{
		{ID: primitive.NewObjectID(), MealType: domain.MealSnack, MealDate: "2024-01-10"},
	}
	s.mealLog.On("ListMealLogs", mock.Anything, userID, "2024-01-10").Return(entries, nil)

	w := s.do(t, http.MethodGet, "/api/v1/meallogs?date=2024-01-10", nil, signToken(t, userID, domain.RoleMember, time.Hour))
	require.Equal(t, http.StatusOK, w.Code)

	var resp []MealLogResponse
	decode(t, w, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, "food-apple", resp[0].MealIcon)
}

func TestMealLogHandler_DailySummary(t *testing.T) {
	s := newTestServer()
	userID := primitive.NewObjectID()
	totals := domain.DailyTotals{Calories: 2200, Proteins: 70, Fats: 75, Carbohydrates: 220}
	goal := domain.DefaultNutritionGoal(userID)
	summary := &service.DailySummary{
		Date:     "2024-01-10",
		Entries:  []domain.MealLogEntry{},
		Totals:   totals,
		Progress: nutrition.DailyProgress(totals, &goal),
		Goal:     goal,
	}
	s.mealLog.On("GetDailySummary", mock.Anything, userID, "").Return(summary, nil)

	w := s.do(t, http.MethodGet, "/api/v1/meallogs/daily", nil, signToken(t, userID, domain.RoleMember, time.Hour))
	require.Equal(t, http.StatusOK, w.Code)

	var resp DailySummaryResponse
	decode(t, w, &resp)
	assert.Equal(t, totals, resp.Totals)
	assert.Equal(t, 2000, resp.Goal.CaloriesGoal)
	assert.Empty(t, resp.Goal.ID)
	require.Len(t, resp.Progress, 4)
	assert.True(t, resp.Progress[0].Exceeded)
	assert.Equal(t, 0, resp.Progress[0].DisplayRemaining)
}
