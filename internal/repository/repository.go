package repository

import (
	"alcyxob/nutrition-app/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// MealLogFilter narrows a meal log listing. A zero Date means all dates.
type MealLogFilter struct {
	UserID primitive.ObjectID
	Date   string
}

// MealLogRepository stores meal log entries. Every lookup is scoped to the
// owning user so one user can never read or change another's entries.
type MealLogRepository interface {
	Create(ctx context.Context, entry *domain.MealLogEntry) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.MealLogEntry, error)
	List(ctx context.Context, filter MealLogFilter) ([]domain.MealLogEntry, error)
	Update(ctx context.Context, entry *domain.MealLogEntry) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// NutritionGoalRepository stores nutrition goals.
type NutritionGoalRepository interface {
	Create(ctx context.Context, goal *domain.NutritionGoal) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.NutritionGoal, error)
	GetActiveByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.NutritionGoal, error)
	// DeactivateByUserID clears IsActive on every active goal of the user.
	DeactivateByUserID(ctx context.Context, userID primitive.ObjectID) error
	UpdateTargets(ctx context.Context, goal *domain.NutritionGoal) error
	// SaveProgress persists targets plus the achievement counter fields.
	SaveProgress(ctx context.Context, goal *domain.NutritionGoal) error
}

// ProductRepository is the barcode catalog.
type ProductRepository interface {
	GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	Upsert(ctx context.Context, product *domain.Product) error
}

// ExportRepository stores metadata about diary exports.
type ExportRepository interface {
	Create(ctx context.Context, export *domain.Export) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Export, error)
}

// MessageFilter narrows a motivational message listing.
type MessageFilter struct {
	UserID     primitive.ObjectID
	UnreadOnly bool
}

// MotivationalMessageRepository stores per-user motivational messages.
type MotivationalMessageRepository interface {
	CreateMany(ctx context.Context, messages []domain.MotivationalMessage) ([]primitive.ObjectID, error)
	List(ctx context.Context, filter MessageFilter) ([]domain.MotivationalMessage, error)
	// ListTimed returns messages scheduled for timeOfDay plus all general ones.
	ListTimed(ctx context.Context, userID primitive.ObjectID, timeOfDay string) ([]domain.MotivationalMessage, error)
	MarkRead(ctx context.Context, id, userID primitive.ObjectID) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}
