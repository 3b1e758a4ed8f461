package api

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/service"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProductHandler_Lookup(t *testing.T) {
	token := signToken(t, primitive.NewObjectID(), domain.RoleMember, time.Hour)

	t.Run("known barcode pre-fills a meal log", func(t *testing.T) {
		s := newTestServer()
		snickers := service.DefaultProducts()[3]
		s.barcode.On("LookupProduct", mock.Anything, snickers.Barcode).Return(&snickers, nil)

		w := s.do(t, http.MethodGet, "/api/v1/products/"+snickers.Barcode+"?mealType=snack&date=2024-01-10", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var resp ProductLookupResponse
		decode(t, w, &resp)
		assert.Equal(t, "Snickers Bar (50g)", resp.Product.Name)
		assert.Equal(t, "snack", resp.MealLog.MealType)
		assert.Equal(t, "2024-01-10", resp.MealLog.MealDate)
		assert.Equal(t, 250, resp.MealLog.Calories)
		assert.Equal(t, 5, resp.MealLog.Proteins)
		assert.Equal(t, 30, resp.MealLog.Carbohydrates)
		assert.Equal(t, 12, resp.MealLog.Fats)
	})

	t.Run("unknown barcode is 404", func(t *testing.T) {
		s := newTestServer()
		s.barcode.On("LookupProduct", mock.Anything, "4006381333931").Return(nil, service.ErrProductNotFound)

		w := s.do(t, http.MethodGet, "/api/v1/products/4006381333931", nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, service.ErrProductNotFound.Error(), errorMessage(t, w))
	})

	t.Run("malformed barcode is 400", func(t *testing.T) {
		s := newTestServer()
		s.barcode.On("LookupProduct", mock.Anything, "abc").Return(nil, service.ErrInvalidBarcode)

		w := s.do(t, http.MethodGet, "/api/v1/products/abc", nil, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
