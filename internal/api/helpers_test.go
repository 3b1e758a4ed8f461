package api

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "api-test-secret"

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	args := m.Called(ctx, name, email, password)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(1).(*domain.User)
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthService) GetJWTSecret() string { return testSecret }

type MockMealLogService struct{ mock.Mock }

func (m *MockMealLogService) CreateMealLog(ctx context.Context, userID primitive.ObjectID, in service.MealLogInput) (*domain.MealLogEntry, error) {
	args := m.Called(ctx, userID, in)
	entry, _ := args.Get(0).(*domain.MealLogEntry)
	return entry, args.Error(1)
}

func (m *MockMealLogService) GetMealLog(ctx context.Context, userID, id primitive.ObjectID) (*domain.MealLogEntry, error) {
	args := m.Called(ctx, userID, id)
	entry, _ := args.Get(0).(*domain.MealLogEntry)
	return entry, args.Error(1)
}

func (m *MockMealLogService) ListMealLogs(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.MealLogEntry, error) {
	args := m.Called(ctx, userID, date)
	entries, _ := args.Get(0).([]domain.MealLogEntry)
	return entries, args.Error(1)
}

func (m *MockMealLogService) UpdateMealLog(ctx context.Context, userID, id primitive.ObjectID, in service.MealLogInput) (*domain.MealLogEntry, error) {
	args := m.Called(ctx, userID, id, in)
	entry, _ := args.Get(0).(*domain.MealLogEntry)
	return entry, args.Error(1)
}

func (m *MockMealLogService) DeleteMealLog(ctx context.Context, userID, id primitive.ObjectID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockMealLogService) GetDailySummary(ctx context.Context, userID primitive.ObjectID, date string) (*service.DailySummary, error) {
	args := m.Called(ctx, userID, date)
	summary, _ := args.Get(0).(*service.DailySummary)
	return summary, args.Error(1)
}

type MockGoalService struct{ mock.Mock }

func (m *MockGoalService) CreateGoal(ctx context.Context, userID primitive.ObjectID, targets service.GoalTargets) (*domain.NutritionGoal, error) {
	args := m.Called(ctx, userID, targets)
	goal, _ := args.Get(0).(*domain.NutritionGoal)
	return goal, args.Error(1)
}

func (m *MockGoalService) GetActiveGoal(ctx context.Context, userID primitive.ObjectID) (*domain.NutritionGoal, error) {
	args := m.Called(ctx, userID)
	goal, _ := args.Get(0).(*domain.NutritionGoal)
	return goal, args.Error(1)
}

func (m *MockGoalService) UpdateGoal(ctx context.Context, userID, goalID primitive.ObjectID, targets service.GoalTargets) (*domain.NutritionGoal, error) {
	args := m.Called(ctx, userID, goalID, targets)
	goal, _ := args.Get(0).(*domain.NutritionGoal)
	return goal, args.Error(1)
}

func (m *MockGoalService) CheckGoalProgress(ctx context.Context, userID primitive.ObjectID) (*domain.GoalProgressResult, error) {
	args := m.Called(ctx, userID)
	result, _ := args.Get(0).(*domain.GoalProgressResult)
	return result, args.Error(1)
}

type MockStatsService struct{ mock.Mock }

func (m *MockStatsService) GetStats(ctx context.Context, userID primitive.ObjectID, period string) (*service.StatsReport, error) {
	args := m.Called(ctx, userID, period)
	report, _ := args.Get(0).(*service.StatsReport)
	return report, args.Error(1)
}

func (m *MockStatsService) GetStreak(ctx context.Context, userID primitive.ObjectID) (*service.StreakInfo, error) {
	args := m.Called(ctx, userID)
	info, _ := args.Get(0).(*service.StreakInfo)
	return info, args.Error(1)
}

type MockBarcodeService struct{ mock.Mock }

func (m *MockBarcodeService) LookupProduct(ctx context.Context, barcode string) (*domain.Product, error) {
	args := m.Called(ctx, barcode)
	product, _ := args.Get(0).(*domain.Product)
	return product, args.Error(1)
}

func (m *MockBarcodeService) SaveProduct(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockBarcodeService) SeedDefaultProducts(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockExportService struct{ mock.Mock }

func (m *MockExportService) CreateExport(ctx context.Context, userID primitive.ObjectID, format string) (*service.ExportResult, error) {
	args := m.Called(ctx, userID, format)
	result, _ := args.Get(0).(*service.ExportResult)
	return result, args.Error(1)
}

func (m *MockExportService) ListExports(ctx context.Context, userID primitive.ObjectID) ([]service.ExportResult, error) {
	args := m.Called(ctx, userID)
	results, _ := args.Get(0).([]service.ExportResult)
	return results, args.Error(1)
}

type MockMessageService struct{ mock.Mock }

func (m *MockMessageService) CreateMessage(ctx context.Context, userID primitive.ObjectID, in service.MessageInput) (*domain.MotivationalMessage, error) {
	args := m.Called(ctx, userID, in)
	msg, _ := args.Get(0).(*domain.MotivationalMessage)
	return msg, args.Error(1)
}

func (m *MockMessageService) ListMessages(ctx context.Context, userID primitive.ObjectID, unreadOnly bool) ([]domain.MotivationalMessage, error) {
	args := m.Called(ctx, userID, unreadOnly)
	msgs, _ := args.Get(0).([]domain.MotivationalMessage)
	return msgs, args.Error(1)
}

func (m *MockMessageService) GetTimedMessages(ctx context.Context, userID primitive.ObjectID) ([]domain.MotivationalMessage, error) {
	args := m.Called(ctx, userID)
	msgs, _ := args.Get(0).([]domain.MotivationalMessage)
	return msgs, args.Error(1)
}

func (m *MockMessageService) GetFeed(ctx context.Context, userID primitive.ObjectID) ([]domain.MotivationalMessage, error) {
	args := m.Called(ctx, userID)
	msgs, _ := args.Get(0).([]domain.MotivationalMessage)
	return msgs, args.Error(1)
}

func (m *MockMessageService) MarkAsRead(ctx context.Context, userID, id primitive.ObjectID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockMessageService) DeleteMessage(ctx context.Context, userID, id primitive.ObjectID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockMessageService) SeedDefaultMessages(ctx context.Context, userID primitive.ObjectID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type testServer struct {
	router  *gin.Engine
	auth    *MockAuthService
	mealLog *MockMealLogService
	goal    *MockGoalService
	stats   *MockStatsService
	barcode *MockBarcodeService
	export  *MockExportService
	message *MockMessageService
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)
	s := &testServer{
		router:  gin.New(),
		auth:    new(MockAuthService),
		mealLog: new(MockMealLogService),
		goal:    new(MockGoalService),
		stats:   new(MockStatsService),
		barcode: new(MockBarcodeService),
		export:  new(MockExportService),
		message: new(MockMessageService),
	}
	SetupRoutes(s.router, testSecret, Services{
		Auth:    s.auth,
		MealLog: s.mealLog,
		Goal:    s.goal,
		Stats:   s.stats,
		Barcode: s.barcode,
		Export:  s.export,
		Message: s.message,
	})
	return s
}

func signToken(t *testing.T, userID primitive.ObjectID, role domain.Role, ttl time.Duration) string {
	t.Helper()
	claims := &jwtClaims{
		UserID: userID.Hex(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

// do sends a request with an optional JSON body and bearer token.
func (s *testServer) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decode(t, w, &body)
	return body["error"]
}


func newRequest(t *testing.T, method, path, authorization string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", authorization)
	return req
}

func serve(s *testServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
