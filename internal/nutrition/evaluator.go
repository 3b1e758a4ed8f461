package nutrition

import (
	"time"

	"alcyxob/nutrition-app/internal/domain"
)

// GoalRules parameterizes the daily goal evaluation.
type GoalRules struct {
	// Tolerance is the fraction of each target that counts as achieved.
	Tolerance float64
	// StreakDays is the number of consecutive achieved days that raises the goals.
	StreakDays int
	// IncreasePercent is applied to every target when StreakDays is reached.
	IncreasePercent float64
}

// DefaultGoalRules: 90% of every target, goals up 5% after 7 days in a row.
func DefaultGoalRules() GoalRules {
	return GoalRules{Tolerance: 0.9, StreakDays: 7, IncreasePercent: 5}
}

// Evaluator decides whether a day's totals met the goal and advances the
// goal's consecutive-day counter.
type Evaluator struct {
	rules GoalRules
}

// NewEvaluator fills zero-valued rules with the defaults.
func NewEvaluator(rules GoalRules) *Evaluator {
	def := DefaultGoalRules()
	if rules.Tolerance <= 0 {
		rules.Tolerance = def.Tolerance
	}
	if rules.StreakDays <= 0 {
		rules.StreakDays = def.StreakDays
	}
	if rules.IncreasePercent <= 0 {
		rules.IncreasePercent = def.IncreasePercent
	}
	return &Evaluator{rules: rules}
}

// Rules returns the effective rules.
func (e *Evaluator) Rules() GoalRules {
	return e.rules
}

// Achieved reports whether every nutrient reached its target within tolerance.
func (e *Evaluator) Achieved(goal domain.NutritionGoal, totals domain.DailyTotals) bool {
	reached := func(total, target int) bool {
		return float64(total) >= float64(target)*e.rules.Tolerance
	}
	return reached(totals.Calories, goal.CaloriesGoal) &&
		reached(totals.Proteins, goal.ProteinsGoal) &&
		reached(totals.Fats, goal.FatsGoal) &&
		reached(totals.Carbohydrates, goal.CarbsGoal)
}

// Evaluate checks today's totals against goal. When the day is achieved it
// returns the advanced goal and changed=true; the caller persists it. Day
// boundaries are taken in now's location.
func (e *Evaluator) Evaluate(goal domain.NutritionGoal, totals domain.DailyTotals, now time.Time) (domain.NutritionGoal, domain.GoalProgressResult, bool) {
	result := domain.GoalProgressResult{
		GoalAchieved:    e.Achieved(goal, totals),
		ConsecutiveDays: goal.GoalAchievedDays,
		CurrentTotals:   totals,
	}
	if !result.GoalAchieved {
		result.NutritionGoal = goal
		return goal, result, false
	}

	today := now.Format(domain.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(domain.DateLayout)
	if goal.LastAchievedDate == nil {
		goal.GoalAchievedDays = 1
	} else {
		last := goal.LastAchievedDate.In(now.Location()).Format(domain.DateLayout)
		if last == yesterday {
			goal.GoalAchievedDays++
		} else if last != today {
			goal.GoalAchievedDays = 1
		}
	}
	achievedAt := now
	goal.LastAchievedDate = &achievedAt
	result.ConsecutiveDays = goal.GoalAchievedDays

	if goal.GoalAchievedDays >= e.rules.StreakDays {
		factor := 1 + e.rules.IncreasePercent/100
		goal.CaloriesGoal = int(float64(goal.CaloriesGoal) * factor)
		goal.ProteinsGoal = int(float64(goal.ProteinsGoal) * factor)
		goal.FatsGoal = int(float64(goal.FatsGoal) * factor)
		goal.CarbsGoal = int(float64(goal.CarbsGoal) * factor)
		goal.GoalAchievedDays = 0
		goal.StartDate = now
		result.GoalsIncreased = true
	}

	result.NutritionGoal = goal
	return goal, result, true
}
