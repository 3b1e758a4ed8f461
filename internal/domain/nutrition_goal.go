package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fallback targets used when a user has no goal yet.
const (
	DefaultCaloriesGoal = 2000
	DefaultProteinsGoal = 75
	DefaultFatsGoal     = 65
	DefaultCarbsGoal    = 250
)

// NutritionGoal holds a user's daily targets. At most one goal per user is
// active at a time; creating a new goal deactivates the previous ones.
type NutritionGoal struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID `bson:"userId" json:"userId"`
	CaloriesGoal     int                `bson:"caloriesGoal" json:"caloriesGoal"`
	ProteinsGoal     int                `bson:"proteinsGoal" json:"proteinsGoal"`
	FatsGoal         int                `bson:"fatsGoal" json:"fatsGoal"`
	CarbsGoal        int                `bson:"carbsGoal" json:"carbsGoal"`
	IsActive         bool               `bson:"isActive" json:"isActive"`
	StartDate        time.Time          `bson:"startDate" json:"startDate"`
	GoalAchievedDays int                `bson:"goalAchievedDays" json:"goalAchievedDays"`
	LastAchievedDate *time.Time         `bson:"lastAchievedDate,omitempty" json:"lastAchievedDate,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultNutritionGoal returns an active goal with the fallback targets.
func DefaultNutritionGoal(userID primitive.ObjectID) NutritionGoal {
	return NutritionGoal{
		UserID:       userID,
		CaloriesGoal: DefaultCaloriesGoal,
		ProteinsGoal: DefaultProteinsGoal,
		FatsGoal:     DefaultFatsGoal,
		CarbsGoal:    DefaultCarbsGoal,
		IsActive:     true,
	}
}

// DailyTotals is the sum of calories and macros over a set of entries.
type DailyTotals struct {
	Calories      int `json:"calories"`
	Proteins      int `json:"proteins"`
	Fats          int `json:"fats"`
	Carbohydrates int `json:"carbohydrates"`
}

// GoalProgressResult is what the goal progress evaluation returns. The first
// three fields are the contract clients depend on: GoalsIncreased drives the
// one-time congratulation notice.
type GoalProgressResult struct {
	GoalAchieved    bool          `json:"goal_achieved"`
	ConsecutiveDays int           `json:"consecutive_days"`
	GoalsIncreased  bool          `json:"goals_increased"`
	CurrentTotals   DailyTotals   `json:"current_totals"`
	NutritionGoal   NutritionGoal `json:"nutrition_goal"`
}
