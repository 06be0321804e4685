package service

//go:generate mockgen -source=workout_service.go -destination=mocks/mock_workout_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitcoach/fitness-coach/internal/domain"
	"fitcoach/fitness-coach/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type WorkoutService interface {
	// LogWorkout records a session with at least one exercise on an existing daily log.
	LogWorkout(ctx context.Context, dailyLogID primitive.ObjectID, workoutType string, exercises []domain.ExerciseLog) (*domain.WorkoutLog, error)
	DeleteWorkout(ctx context.Context, id primitive.ObjectID) error
}

type workoutService struct {
	logRepo     repository.DailyLogRepository
	workoutRepo repository.WorkoutRepository
}

func NewWorkoutService(logRepo repository.DailyLogRepository, workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		logRepo:     logRepo,
		workoutRepo: workoutRepo,
	}
}

func (s *workoutService) LogWorkout(ctx context.Context, dailyLogID primitive.ObjectID, workoutType string, exercises []domain.ExerciseLog) (*domain.WorkoutLog, error) {
	workoutType = strings.TrimSpace(workoutType)
	if workoutType == "" {
		return nil, fmt.Errorf("%w: workout type is required", ErrValidation)
	}
	if len(exercises) == 0 {
		return nil, fmt.Errorf("%w: at least one exercise is required", ErrValidation)
	}
	cleaned := make([]domain.ExerciseLog, 0, len(exercises))
	for i, ex := range exercises {
		ex.Name = strings.TrimSpace(ex.Name)
		if ex.Name == "" {
			return nil, fmt.Errorf("%w: exercise %d has no name", ErrValidation, i+1)
		}
		if ex.Sets < 0 || !finite(ex.Weight) || ex.Weight < 0 {
			return nil, fmt.Errorf("%w: exercise %q has invalid sets or weight", ErrValidation, ex.Name)
		}
		cleaned = append(cleaned, ex)
	}

	log, err := s.logRepo.GetByID(ctx, dailyLogID)
	if err != nil {
		return nil, mapLogErr(err)
	}

	workout := &domain.WorkoutLog{
		DailyLogID: log.ID,
		Day:        log.Day,
		Date:       log.Date,
		Type:       workoutType,
		Exercises:  cleaned,
	}
	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	workout.ID = id
	return workout, nil
}

// DeleteWorkout removes the session together with its embedded exercises.
func (s *workoutService) DeleteWorkout(ctx context.Context, id primitive.ObjectID) error {
	err := s.workoutRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}
