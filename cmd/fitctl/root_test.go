package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fitcoach/fitness-coach/internal/ai"
	"fitcoach/fitness-coach/internal/domain"
	"fitcoach/fitness-coach/internal/service"
	"fitcoach/fitness-coach/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	dailyLogs *mocks.MockDailyLogService
	nutrition *mocks.MockNutritionService
	export    *mocks.MockExportService
	closed    bool
}

func stubServices(t *testing.T) *cliMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &cliMocks{
		dailyLogs: mocks.NewMockDailyLogService(ctrl),
		nutrition: mocks.NewMockNutritionService(ctrl),
		export:    mocks.NewMockExportService(ctrl),
	}
	orig := loadServices
	loadServices = func(context.Context) (*services, func() error, error) {
		return &services{dailyLogs: m.dailyLogs, nutrition: m.nutrition, export: m.export},
			func() error { m.closed = true; return nil }, nil
	}
	t.Cleanup(func() { loadServices = orig })
	return m
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "export")
	assert.Contains(t, out, "estimate")
	assert.Contains(t, out, "today")
}

func TestExportToStdout(t *testing.T) {
	m := stubServices(t)
	m.export.EXPECT().WriteCSV(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w io.Writer) error {
			return service.WriteExportCSV(w, []service.ExportRow{{Date: "5/1/2024", Calories: 1800}})
		})

	out, err := run(t, "export", "--out=", "--archive=false")
	require.NoError(t, err)
	assert.Equal(t, "Date,Weight,BodyFat,Calories,Protein,Carbs,Fats,Workouts,Notes\n5/1/2024,,,1800,0,0,0,,\n", out)
	assert.True(t, m.closed)
}

func TestExportToFile(t *testing.T) {
	m := stubServices(t)
	m.export.EXPECT().WriteCSV(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "Date\n")
			return err
		})

	path := filepath.Join(t.TempDir(), "out.csv")
	out, err := run(t, "export", "--out", path, "--archive=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date\n", string(data))
}

func TestExportArchive(t *testing.T) {
	m := stubServices(t)
	m.export.EXPECT().Archive(gomock.Any()).Return(&service.ArchiveResult{
		Key:       "exports/fitness_data.csv",
		URL:       "https://bucket.example/exports/fitness_data.csv?sig=1",
		Rows:      3,
		ExpiresAt: time.Date(2024, 5, 1, 12, 15, 0, 0, time.UTC),
	}, nil)

	out, err := run(t, "export", "--out=", "--archive")
	require.NoError(t, err)
	assert.Contains(t, out, "Archived 3 rows to exports/fitness_data.csv")
	assert.Contains(t, out, "sig=1")
}

func TestExportArchive_Disabled(t *testing.T) {
	m := stubServices(t)
	m.export.EXPECT().Archive(gomock.Any()).Return(nil, service.ErrStorageDisabled)

	_, err := run(t, "export", "--out=", "--archive")
	require.ErrorIs(t, err, service.ErrStorageDisabled)
}

func TestEstimate(t *testing.T) {
	m := stubServices(t)
	m.nutrition.EXPECT().
		Estimate(gomock.Any(), []ai.Message{{Role: "user", Content: "2 boiled eggs"}}).
		Return(json.RawMessage(`{"choices":[{"message":{"role":"assistant","content":" 140 kcal, 12g protein "}}]}`), nil)

	out, err := run(t, "estimate", "2", "boiled", "eggs")
	require.NoError(t, err)
	assert.Equal(t, "140 kcal, 12g protein\n", out)
}

func TestEstimate_AllModelsFailed(t *testing.T) {
	m := stubServices(t)
	m.nutrition.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(nil, service.ErrAllModelsFailed)

	_, err := run(t, "estimate", "toast")
	require.ErrorIs(t, err, service.ErrAllModelsFailed)
}

func TestEstimate_RequiresFood(t *testing.T) {
	_, err := run(t, "estimate")
	require.Error(t, err)
}

func TestToday(t *testing.T) {
	m := stubServices(t)
	weight := 82.4
	view := domain.NewDailyLogView(
		domain.DailyLog{Day: "2024-05-01", Weight: &weight},
		[]domain.WorkoutLog{{Type: "Workout A"}, {Type: "Cardio"}},
		[]domain.FoodLog{
			{Name: "Oats", Macros: domain.Macros{Calories: 300, Protein: 10, Carbs: 50, Fats: 5}},
			{Name: "Chicken", Macros: domain.Macros{Calories: 250, Protein: 45, Carbs: 0, Fats: 6}},
		},
	)
	m.dailyLogs.EXPECT().Dashboard(gomock.Any()).Return(&service.Dashboard{
		Today:    view,
		Settings: &domain.Settings{},
		Goals:    service.GoalsFrom(&domain.Settings{CarbGoal: 250, FatGoal: 70}),
	}, nil)

	out, err := run(t, "today")
	require.NoError(t, err)
	assert.Equal(t, "Date: 2024-05-01\n"+
		"Weight: 82.4 kg (goal 80 kg)\n"+
		"Calories: 550 / 2200 kcal\n"+
		"Protein: 55 / 180 g\n"+
		"Carbs: 50 / 250 g\n"+
		"Fats: 11 / 70 g\n"+
		"Workouts: Workout A, Cardio\n", out)
}

func TestToday_LoadFails(t *testing.T) {
	orig := loadServices
	loadServices = func(context.Context) (*services, func() error, error) {
		return nil, nil, errors.New("mongo unreachable")
	}
	t.Cleanup(func() { loadServices = orig })

	_, err := run(t, "today")
	require.EqualError(t, err, "mongo unreachable")
}
