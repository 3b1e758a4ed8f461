package service

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/logger"
	"alcyxob/nutrition-app/internal/nutrition"
	"alcyxob/nutrition-app/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrMealLogNotFound = errors.New("meal log not found")
	ErrInvalidMealLog  = errors.New("invalid meal log")
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
)

// MealLogInput carries the user-editable fields of a meal log entry.
type MealLogInput struct {
	MealType      string
	MealDate      string
	MealTime      string
	Calories      int
	Proteins      int
	Fats          int
	Carbohydrates int
	Description   string
}

// DailySummary is a day's entries with totals and progress against the goal.
type DailySummary struct {
	Date     string                       `json:"date"`
	Entries  []domain.MealLogEntry        `json:"entries"`
	Totals   domain.DailyTotals           `json:"totals"`
	Progress []nutrition.NutrientProgress `json:"progress"`
	Goal     domain.NutritionGoal         `json:"goal"`
}

type MealLogService interface {
	CreateMealLog(ctx context.Context, userID primitive.ObjectID, in MealLogInput) (*domain.MealLogEntry, error)
	GetMealLog(ctx context.Context, userID, id primitive.ObjectID) (*domain.MealLogEntry, error)
	// ListMealLogs returns every entry of the user, or only those of date when it is set.
	ListMealLogs(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.MealLogEntry, error)
	UpdateMealLog(ctx context.Context, userID, id primitive.ObjectID, in MealLogInput) (*domain.MealLogEntry, error)
	DeleteMealLog(ctx context.Context, userID, id primitive.ObjectID) error
	// GetDailySummary defaults date to today.
	GetDailySummary(ctx context.Context, userID primitive.ObjectID, date string) (*DailySummary, error)
}

type mealLogService struct {
	mealLogRepo repository.MealLogRepository
	goalRepo    repository.NutritionGoalRepository
	now         Clock
	logger      *zap.Logger
}

// NewMealLogService creates a new meal log service.
func NewMealLogService(mealLogRepo repository.MealLogRepository, goalRepo repository.NutritionGoalRepository, now Clock, log *zap.Logger) MealLogService {
	return &mealLogService{
		mealLogRepo: mealLogRepo,
		goalRepo:    goalRepo,
		now:         clockOrNow(now),
		logger:      logger.OrNop(log),
	}
}

// validateMealLog checks the input and returns the normalized meal type.
func validateMealLog(in MealLogInput) (domain.MealType, error) {
	mealType, ok := domain.ParseMealType(in.MealType)
	if !ok {
		return "", fmt.Errorf("%w: unknown meal type %q", ErrInvalidMealLog, in.MealType)
	}
	if err := validateDate(in.MealDate); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMealLog, err)
	}
	if in.Calories < 0 || in.Proteins < 0 || in.Fats < 0 || in.Carbohydrates < 0 {
		return "", fmt.Errorf("%w: calories and macros must not be negative", ErrInvalidMealLog)
	}
	return mealType, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func applyMealLogInput(entry *domain.MealLogEntry, mealType domain.MealType, in MealLogInput) {
	entry.MealType = mealType
	entry.MealDate = in.MealDate
	entry.MealTime = strings.TrimSpace(in.MealTime)
	entry.Calories = in.Calories
	entry.Proteins = in.Proteins
	entry.Fats = in.Fats
	entry.Carbohydrates = in.Carbohydrates
	entry.Description = strings.TrimSpace(in.Description)
}

func (s *mealLogService) CreateMealLog(ctx context.Context, userID primitive.ObjectID, in MealLogInput) (*domain.MealLogEntry, error) {
	mealType, err := validateMealLog(in)
	if err != nil {
		return nil, err
	}

	entry := &domain.MealLogEntry{UserID: userID}
	applyMealLogInput(entry, mealType, in)

	id, err := s.mealLogRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	s.logger.Debug("meal log created",
		zap.String("userID", userID.Hex()),
		zap.String("mealLogID", id.Hex()),
		zap.String("date", entry.MealDate),
	)
	return entry, nil
}

func (s *mealLogService) GetMealLog(ctx context.Context, userID, id primitive.ObjectID) (*domain.MealLogEntry, error) {
	entry, err := s.mealLogRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealLogNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (s *mealLogService) ListMealLogs(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.MealLogEntry, error) {
	if date != "" {
		if err := validateDate(date); err != nil {
			return nil, err
		}
	}
	return s.mealLogRepo.List(ctx, repository.MealLogFilter{UserID: userID, Date: date})
}

func (s *mealLogService) UpdateMealLog(ctx context.Context, userID, id primitive.ObjectID, in MealLogInput) (*domain.MealLogEntry, error) {
	mealType, err := validateMealLog(in)
	if err != nil {
		return nil, err
	}

	entry, err := s.GetMealLog(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	applyMealLogInput(entry, mealType, in)

	if err = s.mealLogRepo.Update(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealLogNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (s *mealLogService) DeleteMealLog(ctx context.Context, userID, id primitive.ObjectID) error {
	if err := s.mealLogRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMealLogNotFound
		}
		return err
	}
	return nil
}

func (s *mealLogService) GetDailySummary(ctx context.Context, userID primitive.ObjectID, date string) (*DailySummary, error) {
	if date == "" {
		date = s.now().Format(domain.DateLayout)
	} else if err := validateDate(date); err != nil {
		return nil, err
	}

	entries, err := s.mealLogRepo.List(ctx, repository.MealLogFilter{UserID: userID, Date: date})
	if err != nil {
		return nil, err
	}

	// Read-only: a missing goal shows the default targets without creating one.
	var goal *domain.NutritionGoal
	active, err := s.goalRepo.GetActiveByUserID(ctx, userID)
	switch {
	case err == nil:
		goal = active
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	totals := nutrition.SumTotals(entries)
	resolved := nutrition.ResolveGoal(goal)
	resolved.UserID = userID
	return &DailySummary{
		Date:     date,
		Entries:  entries,
		Totals:   totals,
		Progress: nutrition.DailyProgress(totals, goal),
		Goal:     resolved,
	}, nil
}
