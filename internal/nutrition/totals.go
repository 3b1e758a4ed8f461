package nutrition

import "alcyxob/nutrition-app/internal/domain"

// Nutrients is the macro part of a day's totals, in grams.
type Nutrients struct {
	Proteins      int `json:"proteins"`
	Fats          int `json:"fats"`
	Carbohydrates int `json:"carbohydrates"`
}

// DailyCalories sums Calories over entries. It does not filter by date;
// callers pass the entries of the day they want.
func DailyCalories(entries []domain.MealLogEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Calories
	}
	return total
}

// DailyNutrients sums the three macro fields over entries.
func DailyNutrients(entries []domain.MealLogEntry) Nutrients {
	var n Nutrients
	for _, e := range entries {
		n.Proteins += e.Proteins
		n.Fats += e.Fats
		n.Carbohydrates += e.Carbohydrates
	}
	return n
}

// SumTotals returns calories and macros of entries in one pass.
func SumTotals(entries []domain.MealLogEntry) domain.DailyTotals {
	var t domain.DailyTotals
	for _, e := range entries {
		t.Calories += e.Calories
		t.Proteins += e.Proteins
		t.Fats += e.Fats
		t.Carbohydrates += e.Carbohydrates
	}
	return t
}
