package service

import (
	"alcyxob/nutrition-app/internal/nutrition"
	"alcyxob/nutrition-app/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StreakInfo is the current streak with its motivation text.
type StreakInfo struct {
	Streak  int    `json:"streak"`
	Message string `json:"message"`
}

// StatsReport backs the statistics view for one period.
type StatsReport struct {
	Period  nutrition.Period        `json:"period"`
	Summary nutrition.Summary       `json:"summary"`
	Series  []nutrition.SeriesPoint `json:"series"`
	Macros  []nutrition.MacroSlice  `json:"macros"`
	Streak  StreakInfo              `json:"streak"`
}

type StatsService interface {
	// GetStats accepts "week", "month" or "year"; anything else means week.
	GetStats(ctx context.Context, userID primitive.ObjectID, period string) (*StatsReport, error)
	GetStreak(ctx context.Context, userID primitive.ObjectID) (*StreakInfo, error)
}

type statsService struct {
	mealLogRepo repository.MealLogRepository
	now         Clock
}

func NewStatsService(mealLogRepo repository.MealLogRepository, now Clock) StatsService {
	return &statsService{mealLogRepo: mealLogRepo, now: clockOrNow(now)}
}

func (s *statsService) GetStats(ctx context.Context, userID primitive.ObjectID, period string) (*StatsReport, error) {
	entries, err := s.mealLogRepo.List(ctx, repository.MealLogFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	now := s.now()
	p := nutrition.ParsePeriod(period)
	inPeriod := nutrition.FilterByPeriod(entries, p, now)
	series := nutrition.BuildSeries(inPeriod, p)
	streak := nutrition.CalculateStreak(entries, now)

	return &StatsReport{
		Period:  p,
		Summary: nutrition.Summarize(inPeriod),
		Series:  series,
		Macros:  nutrition.MacroBreakdown(series),
		Streak:  StreakInfo{Streak: streak, Message: nutrition.MotivationText(streak)},
	}, nil
}

func (s *statsService) GetStreak(ctx context.Context, userID primitive.ObjectID) (*StreakInfo, error) {
	entries, err := s.mealLogRepo.List(ctx, repository.MealLogFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	streak := nutrition.CalculateStreak(entries, s.now())
	return &StreakInfo{Streak: streak, Message: nutrition.MotivationText(streak)}, nil
}
