package repository

import (
	"context"
	"time"

	"fitcoach/fitness-coach/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
	ErrConflict     = RepositoryError("conflict")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// DailyLogRepository stores one DailyLog per calendar day.
type DailyLogRepository interface {
	// GetOrCreate atomically returns the log for day, inserting it with date if absent.
	GetOrCreate(ctx context.Context, day string, date time.Time) (*domain.DailyLog, error)
	GetByDay(ctx context.Context, day string) (*domain.DailyLog, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DailyLog, error)
	ListAll(ctx context.Context) ([]domain.DailyLog, error) // date descending
	// ListWithReadingsSince returns logs dated >= since with a weight or body fat, date ascending.
	ListWithReadingsSince(ctx context.Context, since time.Time) ([]domain.DailyLog, error)
	// LatestWeight and LatestBodyFat return nil when nothing was ever recorded.
	LatestWeight(ctx context.Context) (*float64, error)
	LatestBodyFat(ctx context.Context) (*float64, error)
	SetWeight(ctx context.Context, id primitive.ObjectID, weight float64) error
	SetBodyFat(ctx context.Context, id primitive.ObjectID, bodyFat float64) error
	SetNotes(ctx context.Context, id primitive.ObjectID, notes *string) error
}

// WorkoutRepository stores workouts with their embedded exercises.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.WorkoutLog) (primitive.ObjectID, error)
	GetByDailyLogID(ctx context.Context, dailyLogID primitive.ObjectID) ([]domain.WorkoutLog, error)
	GetByDailyLogIDs(ctx context.Context, dailyLogIDs []primitive.ObjectID) ([]domain.WorkoutLog, error)
	ListSince(ctx context.Context, since time.Time) ([]domain.WorkoutLog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// FoodLogRepository stores meal entries.
type FoodLogRepository interface {
	Create(ctx context.Context, food *domain.FoodLog) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodLog, error)
	GetByDailyLogID(ctx context.Context, dailyLogID primitive.ObjectID) ([]domain.FoodLog, error)
	GetByDailyLogIDs(ctx context.Context, dailyLogIDs []primitive.ObjectID) ([]domain.FoodLog, error)
	Update(ctx context.Context, food *domain.FoodLog) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// FoodPresetRepository stores reusable food templates.
type FoodPresetRepository interface {
	Create(ctx context.Context, preset *domain.FoodPreset) (primitive.ObjectID, error)
	List(ctx context.Context) ([]domain.FoodPreset, error) // name ascending
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SettingsRepository stores the single settings document.
type SettingsRepository interface {
	// GetOrCreate atomically returns the settings, inserting zero values if absent.
	GetOrCreate(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings *domain.Settings) error
}

// UserRepository stores the owner account.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
