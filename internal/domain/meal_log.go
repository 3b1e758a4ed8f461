package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar date format used for MealDate.
const DateLayout = "2006-01-02"

// MealType is the closed set of meal categories a log entry can carry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypeDisplay holds the presentation attributes of a meal type.
type MealTypeDisplay struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// DefaultMealIcon is used for values outside the known set.
const DefaultMealIcon = "food"

var mealTypeDisplays = map[MealType]MealTypeDisplay{
	MealBreakfast: {Label: "Breakfast", Icon: "coffee"},
	MealLunch:     {Label: "Lunch", Icon: "hamburger"},
	MealDinner:    {Label: "Dinner", Icon: "food-variant"},
	MealSnack:     {Label: "Snack", Icon: "food-apple"},
}

// ParseMealType matches s case-insensitively against the known meal types.
func ParseMealType(s string) (MealType, bool) {
	mt := MealType(strings.ToLower(strings.TrimSpace(s)))
	_, ok := mealTypeDisplays[mt]
	return mt, ok
}

// IsValid reports whether t is one of the known meal types.
func (t MealType) IsValid() bool {
	_, ok := mealTypeDisplays[t]
	return ok
}

// Display returns the label and icon for t. Unknown values get the
// default icon and their raw string as label.
func (t MealType) Display() MealTypeDisplay {
	if d, ok := mealTypeDisplays[MealType(strings.ToLower(string(t)))]; ok {
		return d
	}
	return MealTypeDisplay{Label: string(t), Icon: DefaultMealIcon}
}

// Icon is shorthand for Display().Icon.
func (t MealType) Icon() string {
	return t.Display().Icon
}

// MealTypes lists the known meal types in day order.
func MealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}
}

// MealLogEntry is a single logged meal.
type MealLogEntry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	MealType      MealType           `bson:"mealType" json:"mealType"`
	MealDate      string             `bson:"mealDate" json:"mealDate"` // YYYY-MM-DD
	MealTime      string             `bson:"mealTime" json:"mealTime"` // display only, e.g. "08:30"
	Calories      int                `bson:"calories" json:"calories"`
	Proteins      int                `bson:"proteins" json:"proteins"`
	Fats          int                `bson:"fats" json:"fats"`
	Carbohydrates int                `bson:"carbohydrates" json:"carbohydrates"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
