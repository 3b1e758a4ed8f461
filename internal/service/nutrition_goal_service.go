package service

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/logger"
	"alcyxob/nutrition-app/internal/nutrition"
	"alcyxob/nutrition-app/internal/repository"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrGoalNotFound     = errors.New("nutrition goal not found")
	ErrNoActiveGoal     = errors.New("no active nutrition goal")
	ErrGoalAccessDenied = errors.New("access denied to this nutrition goal")
	ErrInvalidGoal      = errors.New("goal targets must not be negative")
)

// GoalTargets are the daily targets a user sets on a goal.
type GoalTargets struct {
	CaloriesGoal int
	ProteinsGoal int
	FatsGoal     int
	CarbsGoal    int
}

func (t GoalTargets) validate() error {
	if t.CaloriesGoal < 0 || t.ProteinsGoal < 0 || t.FatsGoal < 0 || t.CarbsGoal < 0 {
		return ErrInvalidGoal
	}
	return nil
}

type NutritionGoalService interface {
	// CreateGoal makes a new active goal and deactivates the previous ones.
	CreateGoal(ctx context.Context, userID primitive.ObjectID, targets GoalTargets) (*domain.NutritionGoal, error)
	// GetActiveGoal creates the default goal when the user has none.
	GetActiveGoal(ctx context.Context, userID primitive.ObjectID) (*domain.NutritionGoal, error)
	UpdateGoal(ctx context.Context, userID, goalID primitive.ObjectID, targets GoalTargets) (*domain.NutritionGoal, error)
	// CheckGoalProgress evaluates today's meal logs against the active goal.
	CheckGoalProgress(ctx context.Context, userID primitive.ObjectID) (*domain.GoalProgressResult, error)
}

type nutritionGoalService struct {
	goalRepo    repository.NutritionGoalRepository
	mealLogRepo repository.MealLogRepository
	evaluator   *nutrition.Evaluator
	now         Clock
	logger      *zap.Logger
}

// NewNutritionGoalService creates a new goal service. A nil evaluator uses the default rules.
func NewNutritionGoalService(goalRepo repository.NutritionGoalRepository, mealLogRepo repository.MealLogRepository, evaluator *nutrition.Evaluator, now Clock, log *zap.Logger) NutritionGoalService {
	if evaluator == nil {
		evaluator = nutrition.NewEvaluator(nutrition.DefaultGoalRules())
	}
	return &nutritionGoalService{
		goalRepo:    goalRepo,
		mealLogRepo: mealLogRepo,
		evaluator:   evaluator,
		now:         clockOrNow(now),
		logger:      logger.OrNop(log),
	}
}

func (s *nutritionGoalService) CreateGoal(ctx context.Context, userID primitive.ObjectID, targets GoalTargets) (*domain.NutritionGoal, error) {
	if err := targets.validate(); err != nil {
		return nil, err
	}

	if err := s.goalRepo.DeactivateByUserID(ctx, userID); err != nil {
		return nil, fmt.Errorf("deactivating previous goals: %w", err)
	}

	goal := &domain.NutritionGoal{
		UserID:       userID,
		CaloriesGoal: targets.CaloriesGoal,
		ProteinsGoal: targets.ProteinsGoal,
		FatsGoal:     targets.FatsGoal,
		CarbsGoal:    targets.CarbsGoal,
		IsActive:     true,
		StartDate:    s.now(),
	}
	id, err := s.goalRepo.Create(ctx, goal)
	if err != nil {
		return nil, err
	}
	goal.ID = id
	return goal, nil
}

func (s *nutritionGoalService) GetActiveGoal(ctx context.Context, userID primitive.ObjectID) (*domain.NutritionGoal, error) {
	goal, err := s.goalRepo.GetActiveByUserID(ctx, userID)
	if err == nil {
		return goal, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	def := domain.DefaultNutritionGoal(userID)
	def.StartDate = s.now()
	id, err := s.goalRepo.Create(ctx, &def)
	if err != nil {
		return nil, fmt.Errorf("creating default goal: %w", err)
	}
	def.ID = id
	s.logger.Info("created default nutrition goal", zap.String("userID", userID.Hex()))
	return &def, nil
}

func (s *nutritionGoalService) UpdateGoal(ctx context.Context, userID, goalID primitive.ObjectID, targets GoalTargets) (*domain.NutritionGoal, error) {
	if err := targets.validate(); err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrGoalAccessDenied
	}

	goal.CaloriesGoal = targets.CaloriesGoal
	goal.ProteinsGoal = targets.ProteinsGoal
	goal.FatsGoal = targets.FatsGoal
	goal.CarbsGoal = targets.CarbsGoal
	if err = s.goalRepo.UpdateTargets(ctx, goal); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

func (s *nutritionGoalService) CheckGoalProgress(ctx context.Context, userID primitive.ObjectID) (*domain.GoalProgressResult, error) {
	goal, err := s.goalRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveGoal
		}
		return nil, err
	}

	now := s.now()
	entries, err := s.mealLogRepo.List(ctx, repository.MealLogFilter{
		UserID: userID,
		Date:   now.Format(domain.DateLayout),
	})
	if err != nil {
		return nil, err
	}

	updated, result, changed := s.evaluator.Evaluate(*goal, nutrition.SumTotals(entries), now)
	if changed {
		if err = s.goalRepo.SaveProgress(ctx, &updated); err != nil {
			return nil, fmt.Errorf("saving goal progress: %w", err)
		}
	}
	if result.GoalsIncreased {
		s.logger.Info("nutrition goals increased",
			zap.String("userID", userID.Hex()),
			zap.String("goalID", updated.ID.Hex()),
			zap.Int("caloriesGoal", updated.CaloriesGoal),
		)
	}
	return &result, nil
}
