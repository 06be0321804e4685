package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestWorkoutHistory(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, loc)
	since := WorkoutHistorySince(now)

	day := func(d time.Time) WorkoutLog {
		start := StartOfDay(d, loc)
		return WorkoutLog{Day: DayKey(start, loc), Date: start}
	}

	workouts := []WorkoutLog{
		day(now),
		day(now),
		day(now.AddDate(0, 0, -3)),
		day(now.AddDate(0, 0, -400)), // outside the window
	}

	history := WorkoutHistory(workouts, since)
	require.Len(t, history, 2)
	assert.Equal(t, WorkoutDay{Date: "2026-10-12", Count: 1}, history[0])
	assert.Equal(t, WorkoutDay{Date: "2026-10-15", Count: 2}, history[1])

	for _, d := range history {
		assert.Positive(t, d.Count)
	}
}

func TestWorkoutHistory_Empty(t *testing.T) {
	history := WorkoutHistory(nil, time.Now())
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestProgressHistory(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	since := ProgressHistorySince(now)

	logs := []DailyLog{
		{Date: now.AddDate(0, 0, -1), Weight: ptr(81.2)},
		{Date: now.AddDate(0, 0, -5), BodyFat: ptr(18)},
		{Date: now.AddDate(0, 0, -2)}, // no readings
		{Date: now.AddDate(0, 0, -31), Weight: ptr(85)},
		{Date: now, Weight: ptr(80.9), BodyFat: ptr(17.5)},
	}

	points := ProgressHistory(logs, since)
	require.Len(t, points, 3)
	assert.Equal(t, now.AddDate(0, 0, -5), points[0].Date)
	assert.Nil(t, points[0].Weight)
	assert.Equal(t, 18.0, *points[0].BodyFat)
	assert.Equal(t, now.AddDate(0, 0, -1), points[1].Date)
	assert.Equal(t, now, points[2].Date)

	for i := 1; i < len(points); i++ {
		assert.False(t, points[i].Date.Before(points[i-1].Date))
	}
}

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	morning := time.Date(2026, 3, 8, 1, 30, 0, 0, loc)
	evening := time.Date(2026, 3, 8, 23, 10, 0, 0, loc)

	assert.Equal(t, StartOfDay(morning, loc), StartOfDay(evening, loc))
	assert.Equal(t, "2026-03-08", DayKey(evening, loc))

	end := EndOfDay(morning, loc)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 8, end.Day())

	// late evening in New York is already the next day in UTC
	assert.Equal(t, "2026-03-09", DayKey(evening, time.UTC))
}

func TestSumMacros(t *testing.T) {
	meals := []FoodLog{
		{Name: "Oats", Macros: Macros{Calories: 350, Protein: 12, Carbs: 60, Fats: 6}},
		{Name: "Chicken", Macros: Macros{Calories: 220, Protein: 40, Carbs: 0, Fats: 5}},
	}
	first := SumMacros(meals)
	assert.Equal(t, MacroTotals{Calories: 570, Protein: 52, Carbs: 60, Fats: 11}, first)
	assert.Equal(t, first, SumMacros(meals))
	assert.Equal(t, MacroTotals{}, SumMacros(nil))

	view := NewDailyLogView(DailyLog{}, nil, meals)
	assert.Equal(t, first, view.Totals)
	assert.NotNil(t, view.Workouts)
}

func TestSettingsDefaults(t *testing.T) {
	s := &Settings{}
	assert.Equal(t, 80.0, s.TargetWeightOrDefault())
	assert.Equal(t, 15.0, s.BodyFatGoalOrDefault())
	assert.Equal(t, 2200.0, s.CalorieGoalOrDefault())
	assert.Equal(t, 180.0, s.ProteinGoalOrDefault())
	assert.False(t, s.HasCustomPrompt())

	s.TargetWeight = 72
	assert.Equal(t, 72.0, s.TargetWeightOrDefault())
}
