package service

import (
	"context"
	"testing"
	"time"

	"fitcoach/fitness-coach/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDailyLogService_GetOrCreate_SameDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	r := newRepos()
	svc := r.dailyLogService(loc, nil)
	ctx := context.Background()

	morning := time.Date(2026, 10, 15, 0, 5, 0, 0, loc)
	night := time.Date(2026, 10, 15, 23, 59, 59, 0, loc)

	first, err := svc.GetOrCreate(ctx, morning)
	require.NoError(t, err)
	second, err := svc.GetOrCreate(ctx, night)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "2026-10-15", first.Day)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, loc), first.Date)
	assert.Len(t, r.logs.logs, 1)
	assert.Empty(t, first.Workouts)
	assert.Empty(t, first.Meals)

	nextDay, err := svc.GetOrCreate(ctx, night.Add(time.Second))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, nextDay.ID)
}

func TestDailyLogService_GetOrCreate_LoadsRelations(t *testing.T) {
	r := newRepos()
	now := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	svc := r.dailyLogService(time.UTC, fixedClock(now))
	ctx := context.Background()

	today, err := svc.Today(ctx)
	require.NoError(t, err)

	foods := NewFoodService(r.logs, r.meals, r.presets)
	_, err = foods.LogFood(ctx, today.ID, FoodInput{Name: "Eggs", Macros: domain.Macros{Calories: 140, Protein: 12, Fats: 10}})
	require.NoError(t, err)
	_, err = foods.LogFood(ctx, today.ID, FoodInput{Name: "Rice", Macros: domain.Macros{Calories: 200, Protein: 4, Carbs: 44}})
	require.NoError(t, err)

	workouts := NewWorkoutService(r.logs, r.workouts)
	_, err = workouts.LogWorkout(ctx, today.ID, "Workout A", []domain.ExerciseLog{{Name: "Squat", Sets: 3, Reps: "8-10", Weight: 100}})
	require.NoError(t, err)

	view, err := svc.Today(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Meals, 2)
	assert.Equal(t, []string{"Workout A"}, view.WorkoutTypes())
	assert.Equal(t, domain.MacroTotals{Calories: 340, Protein: 16, Carbs: 44, Fats: 10}, view.Totals)
}

func TestDailyLogService_Find(t *testing.T) {
	r := newRepos()
	svc := r.dailyLogService(time.UTC, nil)
	ctx := context.Background()
	day := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	view, err := svc.Find(ctx, day)
	require.NoError(t, err)
	assert.Nil(t, view)
	assert.Empty(t, r.logs.logs, "Find must not create a log")

	created, err := svc.GetOrCreate(ctx, day)
	require.NoError(t, err)
	view, err = svc.Find(ctx, day)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, created.ID, view.ID)
}

func TestDailyLogService_Updates(t *testing.T) {
	r := newRepos()
	svc := r.dailyLogService(time.UTC, nil)
	ctx := context.Background()

	view, err := svc.GetOrCreate(ctx, time.Now())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateWeight(ctx, view.ID, 82.4))
	require.NoError(t, svc.UpdateBodyFat(ctx, view.ID, 17.2))
	notes := "slept badly"
	require.NoError(t, svc.UpdateNotes(ctx, view.ID, &notes))

	stored := r.logs.logs[view.ID]
	assert.Equal(t, 82.4, *stored.Weight)
	assert.Equal(t, 17.2, *stored.BodyFat)
	assert.Equal(t, "slept badly", *stored.Notes)

	empty := ""
	require.NoError(t, svc.UpdateNotes(ctx, view.ID, &empty))
	assert.Nil(t, r.logs.logs[view.ID].Notes)

	assert.ErrorIs(t, svc.UpdateWeight(ctx, view.ID, -1), ErrValidation)
	assert.ErrorIs(t, svc.UpdateBodyFat(ctx, view.ID, 140), ErrValidation)
	assert.ErrorIs(t, svc.UpdateWeight(ctx, primitive.NewObjectID(), 80), ErrDailyLogNotFound)
}

func TestDailyLogService_ListAll(t *testing.T) {
	r := newRepos()
	svc := r.dailyLogService(time.UTC, nil)
	ctx := context.Background()

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	var ids []primitive.ObjectID
	for i := 0; i < 3; i++ {
		v, err := svc.GetOrCreate(ctx, base.AddDate(0, 0, i))
		require.NoError(t, err)
		ids = append(ids, v.ID)
	}
	_, err := NewFoodService(r.logs, r.meals, r.presets).LogFood(ctx, ids[1], FoodInput{Name: "Apple", Macros: domain.Macros{Calories: 95}})
	require.NoError(t, err)

	views, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, ids[2], views[0].ID)
	assert.Equal(t, ids[0], views[2].ID)
	assert.Equal(t, 95.0, views[1].Totals.Calories)
	assert.NotNil(t, views[0].Meals)
}

func TestDailyLogService_Histories(t *testing.T) {
	r := newRepos()
	now := time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC)
	svc := r.dailyLogService(time.UTC, fixedClock(now))
	workouts := NewWorkoutService(r.logs, r.workouts)
	ctx := context.Background()

	ex := []domain.ExerciseLog{{Name: "Run", Sets: 1, Reps: "30m"}}
	for _, offset := range []int{0, 0, -10, -400} {
		v, err := svc.GetOrCreate(ctx, now.AddDate(0, 0, offset))
		require.NoError(t, err)
		_, err = workouts.LogWorkout(ctx, v.ID, "Cardio", ex)
		require.NoError(t, err)
	}

	old, err := svc.GetOrCreate(ctx, now.AddDate(0, 0, -45))
	require.NoError(t, err)
	require.NoError(t, svc.UpdateWeight(ctx, old.ID, 90))
	recent, err := svc.GetOrCreate(ctx, now.AddDate(0, 0, -2))
	require.NoError(t, err)
	require.NoError(t, svc.UpdateBodyFat(ctx, recent.ID, 19))
	today, err := svc.Today(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateWeight(ctx, today.ID, 84))

	history, err := svc.WorkoutHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.WorkoutDay{
		{Date: "2026-10-05", Count: 1},
		{Date: "2026-10-15", Count: 2},
	}, history)

	progress, err := svc.ProgressHistory(ctx)
	require.NoError(t, err)
	require.Len(t, progress, 2)
	assert.Equal(t, 19.0, *progress[0].BodyFat)
	assert.Nil(t, progress[0].Weight)
	assert.Equal(t, 84.0, *progress[1].Weight)

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, today.ID, dash.Today.ID)
	assert.Equal(t, 80.0, dash.Goals.TargetWeight)
	assert.Equal(t, 2200.0, dash.Goals.Calories)
	assert.Len(t, dash.WorkoutHistory, 2)
	assert.Len(t, dash.Progress, 2)
}
