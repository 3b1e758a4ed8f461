package service

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/repository"
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

type MockMealLogRepository struct {
	mock.Mock
}

func (m *MockMealLogRepository) Create(ctx context.Context, entry *domain.MealLogEntry) (primitive.ObjectID, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockMealLogRepository) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.MealLogEntry, error) {
	args := m.Called(ctx, id, userID)
	entry, _ := args.Get(0).(*domain.MealLogEntry)
	return entry, args.Error(1)
}

func (m *MockMealLogRepository) List(ctx context.Context, filter repository.MealLogFilter) ([]domain.MealLogEntry, error) {
	args := m.Called(ctx, filter)
	entries, _ := args.Get(0).([]domain.MealLogEntry)
	return entries, args.Error(1)
}

func (m *MockMealLogRepository) Update(ctx context.Context, entry *domain.MealLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockMealLogRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockNutritionGoalRepository struct {
	mock.Mock
}

func (m *MockNutritionGoalRepository) Create(ctx context.Context, goal *domain.NutritionGoal) (primitive.ObjectID, error) {
	args := m.Called(ctx, goal)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockNutritionGoalRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.NutritionGoal, error) {
	args := m.Called(ctx, id)
	goal, _ := args.Get(0).(*domain.NutritionGoal)
	return goal, args.Error(1)
}

func (m *MockNutritionGoalRepository) GetActiveByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.NutritionGoal, error) {
	args := m.Called(ctx, userID)
	goal, _ := args.Get(0).(*domain.NutritionGoal)
	return goal, args.Error(1)
}

func (m *MockNutritionGoalRepository) DeactivateByUserID(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNutritionGoalRepository) UpdateTargets(ctx context.Context, goal *domain.NutritionGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockNutritionGoalRepository) SaveProgress(ctx context.Context, goal *domain.NutritionGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	args := m.Called(ctx, barcode)
	product, _ := args.Get(0).(*domain.Product)
	return product, args.Error(1)
}

func (m *MockProductRepository) Upsert(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

type MockExportRepository struct {
	mock.Mock
}

func (m *MockExportRepository) Create(ctx context.Context, export *domain.Export) (primitive.ObjectID, error) {
	args := m.Called(ctx, export)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockExportRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Export, error) {
	args := m.Called(ctx, userID)
	exports, _ := args.Get(0).([]domain.Export)
	return exports, args.Error(1)
}

// MockFileStorage records uploaded bodies by key.
type MockFileStorage struct {
	mock.Mock
	objects map[string][]byte
}

func NewMockFileStorage() *MockFileStorage {
	return &MockFileStorage{objects: make(map[string][]byte)}
}

func (m *MockFileStorage) PutObject(ctx context.Context, objectKey string, contentType string, body io.Reader) error {
	args := m.Called(ctx, objectKey, contentType)
	if args.Error(0) == nil {
		data, err := io.ReadAll(body)
		if err != nil {
			return err
		}
		m.objects[objectKey] = data
	}
	return args.Error(0)
}

func (m *MockFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expires)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	if args.Error(0) == nil {
		delete(m.objects, objectKey)
	}
	return args.Error(0)
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) CreateMany(ctx context.Context, messages []domain.MotivationalMessage) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, messages)
	ids, _ := args.Get(0).([]primitive.ObjectID)
	return ids, args.Error(1)
}

func (m *MockMessageRepository) List(ctx context.Context, filter repository.MessageFilter) ([]domain.MotivationalMessage, error) {
	args := m.Called(ctx, filter)
	messages, _ := args.Get(0).([]domain.MotivationalMessage)
	return messages, args.Error(1)
}

func (m *MockMessageRepository) ListTimed(ctx context.Context, userID primitive.ObjectID, timeOfDay string) ([]domain.MotivationalMessage, error) {
	args := m.Called(ctx, userID, timeOfDay)
	messages, _ := args.Get(0).([]domain.MotivationalMessage)
	return messages, args.Error(1)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, id, userID primitive.ObjectID) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	return m.Called(ctx, id, userID).Error(0)
}
