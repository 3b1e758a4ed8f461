package nutrition

import (
	"math"
	"sort"
	"time"

	"alcyxob/nutrition-app/internal/domain"
)

const day = 24 * time.Hour

// CalculateStreak counts consecutive calendar days with at least one entry,
// walking back from the most recent logged date. The chain only counts when
// the most recent date is today or yesterday relative to now.
//
// Dates are read as midnight UTC and "today" is the UTC date of now. The
// broken-chain check compares the raw time difference against 24 hours
// rather than calendar boundaries, so a most recent date in the future does
// not break the streak. Entries whose date does not parse are ignored.
func CalculateStreak(entries []domain.MealLogEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	seen := make(map[int64]struct{}, len(entries))
	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		d, err := parseDate(e.MealDate)
		if err != nil {
			continue
		}
		if _, dup := seen[d.Unix()]; dup {
			continue
		}
		seen[d.Unix()] = struct{}{}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return 0
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	u := now.UTC()
	today := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	mostRecent := dates[0]
	if !today.Equal(mostRecent) && today.Sub(mostRecent) > day {
		return 0
	}

	streak := 1
	for i := 0; i < len(dates)-1; i++ {
		if wholeDays(dates[i].Sub(dates[i+1])) != 1 {
			break
		}
		streak++
	}
	return streak
}

// wholeDays rounds the absolute duration d up to whole days.
func wholeDays(d time.Duration) int {
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(float64(d) / float64(day)))
}
