package nutrition

import (
	"math"

	"alcyxob/nutrition-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Progress returns current as a percentage of goal, capped at 100.
// A zero goal yields 0.
func Progress(current, goal float64) float64 {
	if goal <= 0 || math.IsNaN(goal) {
		return 0
	}
	return math.Min(current/goal*100, 100)
}

// Remaining returns the raw difference goal - current. It is negative once
// the goal is exceeded; use ClampRemaining for display.
func Remaining(goal, current int) int {
	return goal - current
}

// ClampRemaining floors a raw remaining value at zero.
func ClampRemaining(raw int) int {
	if raw < 0 {
		return 0
	}
	return raw
}

// Exceeded reports whether current is past goal.
func Exceeded(goal, current int) bool {
	return Remaining(goal, current) < 0
}

// ResolveGoal returns *goal, or the default targets when goal is nil.
func ResolveGoal(goal *domain.NutritionGoal) domain.NutritionGoal {
	if goal == nil {
		return domain.DefaultNutritionGoal(primitive.NilObjectID)
	}
	return *goal
}

// NutrientProgress is one progress bar row.
type NutrientProgress struct {
	Nutrient         string  `json:"nutrient"`
	Unit             string  `json:"unit"`
	Current          int     `json:"current"`
	Goal             int     `json:"goal"`
	Percent          float64 `json:"percent"`
	Remaining        int     `json:"remaining"`         // raw, may be negative
	DisplayRemaining int     `json:"display_remaining"` // clamped at zero
	Exceeded         bool    `json:"exceeded"`
}

// DailyProgress builds the calories, protein, carbs and fat rows for totals
// against goal. A nil goal falls back to the default targets.
func DailyProgress(totals domain.DailyTotals, goal *domain.NutritionGoal) []NutrientProgress {
	g := ResolveGoal(goal)
	rows := []struct {
		name, unit    string
		current, goal int
	}{
		{"calories", "kcal", totals.Calories, g.CaloriesGoal},
		{"proteins", "g", totals.Proteins, g.ProteinsGoal},
		{"carbohydrates", "g", totals.Carbohydrates, g.CarbsGoal},
		{"fats", "g", totals.Fats, g.FatsGoal},
	}
	out := make([]NutrientProgress, 0, len(rows))
	for _, r := range rows {
		raw := Remaining(r.goal, r.current)
		out = append(out, NutrientProgress{
			Nutrient:         r.name,
			Unit:             r.unit,
			Current:          r.current,
			Goal:             r.goal,
			Percent:          Progress(float64(r.current), float64(r.goal)),
			Remaining:        raw,
			DisplayRemaining: ClampRemaining(raw),
			Exceeded:         raw < 0,
		})
	}
	return out
}
