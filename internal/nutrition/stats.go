package nutrition

import (
	"fmt"
	"math"
	"strings"
	"time"

	"alcyxob/nutrition-app/internal/domain"
)

// Period is the time window of the statistics view.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod maps s to a Period; anything unrecognized is a week.
func ParsePeriod(s string) Period {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodMonth, PeriodYear:
		return p
	default:
		return PeriodWeek
	}
}

// Start returns the beginning of the window ending at now.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// displayLimit is how many most recent dates a chart shows; 0 means all.
func (p Period) displayLimit() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	default:
		return 0
	}
}

// FilterByPeriod keeps entries whose date lies in [p.Start(now), now].
func FilterByPeriod(entries []domain.MealLogEntry, p Period, now time.Time) []domain.MealLogEntry {
	start := p.Start(now)
	out := make([]domain.MealLogEntry, 0, len(entries))
	for _, e := range entries {
		d, err := parseDate(e.MealDate)
		if err != nil {
			continue
		}
		if !d.Before(start) && !d.After(now) {
			out = append(out, e)
		}
	}
	return out
}

// SeriesPoint is one date of a chart.
type SeriesPoint struct {
	Date          string `json:"date"`
	Label         string `json:"label"` // day/month
	Calories      int    `json:"calories"`
	Proteins      int    `json:"proteins"`
	Carbohydrates int    `json:"carbohydrates"`
	Fats          int    `json:"fats"`
}

// BuildSeries groups already-filtered entries by date, ascending, keeping
// the last 7 dates for a week and the last 30 for a month.
func BuildSeries(entries []domain.MealLogEntry, p Period) []SeriesPoint {
	grouped := GroupByDate(entries)
	dates := SortedDates(grouped, true)
	if limit := p.displayLimit(); limit > 0 && len(dates) > limit {
		dates = dates[len(dates)-limit:]
	}

	points := make([]SeriesPoint, 0, len(dates))
	for _, date := range dates {
		t := SumTotals(grouped[date])
		points = append(points, SeriesPoint{
			Date:          date,
			Label:         dateLabel(date),
			Calories:      t.Calories,
			Proteins:      t.Proteins,
			Carbohydrates: t.Carbohydrates,
			Fats:          t.Fats,
		})
	}
	return points
}

func dateLabel(date string) string {
	d, err := parseDate(date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d/%d", d.Day(), int(d.Month()))
}

// MacroSlice is one segment of the macro distribution chart.
type MacroSlice struct {
	Name  string `json:"name"`
	Grams int    `json:"grams"`
}

// MacroBreakdown sums protein, carbs and fat over the series.
func MacroBreakdown(points []SeriesPoint) []MacroSlice {
	var p, c, f int
	for _, pt := range points {
		p += pt.Proteins
		c += pt.Carbohydrates
		f += pt.Fats
	}
	return []MacroSlice{
		{Name: "Protein", Grams: p},
		{Name: "Carbs", Grams: c},
		{Name: "Fat", Grams: f},
	}
}

// Summary is the headline block of the statistics view.
type Summary struct {
	MealsLogged     int `json:"meals_logged"`
	DaysTracked     int `json:"days_tracked"`
	AverageCalories int `json:"average_calories"`
}

// Summarize counts meals and days and averages calories per tracked day.
func Summarize(entries []domain.MealLogEntry) Summary {
	days := DaysTracked(entries)
	divisor := days
	if divisor == 0 {
		divisor = 1
	}
	return Summary{
		MealsLogged:     len(entries),
		DaysTracked:     days,
		AverageCalories: int(math.Round(float64(DailyCalories(entries)) / float64(divisor))),
	}
}
