package domain

import (
	"sort"
	"time"
)

const (
	WorkoutHistoryDays  = 365
	ProgressHistoryDays = 30
)

// WorkoutDay is one cell of the habit heatmap.
type WorkoutDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ProgressPoint is one sample of the weight/body-fat series.
type ProgressPoint struct {
	Date    time.Time `json:"date"`
	Weight  *float64  `json:"weight"`
	BodyFat *float64  `json:"bodyFat"`
}

// WorkoutHistorySince is the lower bound of the heatmap window.
func WorkoutHistorySince(now time.Time) time.Time {
	return now.AddDate(0, 0, -WorkoutHistoryDays)
}

// ProgressHistorySince is the lower bound of the progress window.
func ProgressHistorySince(now time.Time) time.Time {
	return now.AddDate(0, 0, -ProgressHistoryDays)
}

// WorkoutHistory counts workouts per day for days dated at or after since.
// Days without workouts never appear; the result is ordered by day ascending.
func WorkoutHistory(workouts []WorkoutLog, since time.Time) []WorkoutDay {
	counts := make(map[string]int)
	for _, w := range workouts {
		if w.Date.Before(since) {
			continue
		}
		counts[w.Day]++
	}

	days := make([]WorkoutDay, 0, len(counts))
	for day, n := range counts {
		days = append(days, WorkoutDay{Date: day, Count: n})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// ProgressHistory keeps logs dated at or after since that carry a weight or a
// body-fat reading, ordered by date ascending.
func ProgressHistory(logs []DailyLog, since time.Time) []ProgressPoint {
	points := make([]ProgressPoint, 0, len(logs))
	for _, l := range logs {
		if l.Date.Before(since) {
			continue
		}
		if l.Weight == nil && l.BodyFat == nil {
			continue
		}
		points = append(points, ProgressPoint{Date: l.Date, Weight: l.Weight, BodyFat: l.BodyFat})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}
