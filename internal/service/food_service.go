package service

//go:generate mockgen -source=food_service.go -destination=mocks/mock_food_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitcoach/fitness-coach/internal/domain"
	"fitcoach/fitness-coach/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrFoodLogNotFound = errors.New("food log not found")
	ErrPresetNotFound  = errors.New("food preset not found")
)

// FoodInput carries a meal or preset as submitted by the user.
type FoodInput struct {
	Name     string
	Macros   domain.Macros
	MealType string // ignored for presets
}

func (in *FoodInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	for label, v := range map[string]float64{
		"calories": in.Macros.Calories,
		"protein":  in.Macros.Protein,
		"carbs":    in.Macros.Carbs,
		"fats":     in.Macros.Fats,
	} {
		if !finite(v) || v < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", ErrValidation, label)
		}
	}
	return nil
}

type FoodService interface {
	LogFood(ctx context.Context, dailyLogID primitive.ObjectID, in FoodInput) (*domain.FoodLog, error)
	// UpdateFood rewrites the name and all macros of a meal. The meal type is kept.
	UpdateFood(ctx context.Context, id primitive.ObjectID, in FoodInput) (*domain.FoodLog, error)
	DeleteFood(ctx context.Context, id primitive.ObjectID) error
	ListPresets(ctx context.Context) ([]domain.FoodPreset, error)
	AddPreset(ctx context.Context, in FoodInput) (*domain.FoodPreset, error)
	DeletePreset(ctx context.Context, id primitive.ObjectID) error
}

type foodService struct {
	logRepo    repository.DailyLogRepository
	foodRepo   repository.FoodLogRepository
	presetRepo repository.FoodPresetRepository
}

func NewFoodService(logRepo repository.DailyLogRepository, foodRepo repository.FoodLogRepository, presetRepo repository.FoodPresetRepository) FoodService {
	return &foodService{
		logRepo:    logRepo,
		foodRepo:   foodRepo,
		presetRepo: presetRepo,
	}
}

func (s *foodService) LogFood(ctx context.Context, dailyLogID primitive.ObjectID, in FoodInput) (*domain.FoodLog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.logRepo.GetByID(ctx, dailyLogID); err != nil {
		return nil, mapLogErr(err)
	}

	mealType := strings.TrimSpace(in.MealType)
	if mealType == "" {
		mealType = domain.DefaultMealType
	}
	food := &domain.FoodLog{
		DailyLogID: dailyLogID,
		Name:       in.Name,
		Macros:     in.Macros,
		MealType:   mealType,
	}
	id, err := s.foodRepo.Create(ctx, food)
	if err != nil {
		return nil, fmt.Errorf("create food log: %w", err)
	}
	food.ID = id
	return food, nil
}

func (s *foodService) UpdateFood(ctx context.Context, id primitive.ObjectID, in FoodInput) (*domain.FoodLog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	food := &domain.FoodLog{ID: id, Name: in.Name, Macros: in.Macros}
	if err := s.foodRepo.Update(ctx, food); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFoodLogNotFound
		}
		return nil, err
	}
	return s.foodRepo.GetByID(ctx, id)
}

func (s *foodService) DeleteFood(ctx context.Context, id primitive.ObjectID) error {
	err := s.foodRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrFoodLogNotFound
	}
	return err
}

func (s *foodService) ListPresets(ctx context.Context) ([]domain.FoodPreset, error) {
	return s.presetRepo.List(ctx)
}

func (s *foodService) AddPreset(ctx context.Context, in FoodInput) (*domain.FoodPreset, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	preset := &domain.FoodPreset{Name: in.Name, Macros: in.Macros}
	id, err := s.presetRepo.Create(ctx, preset)
	if err != nil {
		return nil, fmt.Errorf("create preset: %w", err)
	}
	preset.ID = id
	return preset, nil
}

func (s *foodService) DeletePreset(ctx context.Context, id primitive.ObjectID) error {
	err := s.presetRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPresetNotFound
	}
	return err
}
