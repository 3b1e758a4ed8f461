package nutrition

import (
	"sort"
	"time"

	"alcyxob/nutrition-app/internal/domain"
)

// GroupByDate partitions entries by MealDate. Entries sharing a date keep
// their relative input order.
func GroupByDate(entries []domain.MealLogEntry) map[string][]domain.MealLogEntry {
	grouped := make(map[string][]domain.MealLogEntry)
	for _, e := range entries {
		grouped[e.MealDate] = append(grouped[e.MealDate], e)
	}
	return grouped
}

// DaysTracked counts the distinct dates present in entries.
func DaysTracked(entries []domain.MealLogEntry) int {
	return len(GroupByDate(entries))
}

// SortedDates returns the keys of grouped ordered by calendar date.
// Keys that do not parse as dates go last, ordered as strings.
func SortedDates(grouped map[string][]domain.MealLogEntry, ascending bool) []string {
	keys := make([]string, 0, len(grouped))
	parsed := make(map[string]time.Time, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
		if d, err := parseDate(k); err == nil {
			parsed[k] = d
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		di, iok := parsed[keys[i]]
		dj, jok := parsed[keys[j]]
		switch {
		case iok && jok:
			if di.Equal(dj) {
				return keys[i] < keys[j]
			}
			if ascending {
				return di.Before(dj)
			}
			return di.After(dj)
		case iok != jok:
			return iok
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// parseDate reads a YYYY-MM-DD string as midnight UTC.
func parseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateLayout, s)
}
