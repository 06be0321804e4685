package service

//go:generate mockgen -source=settings_service.go -destination=mocks/mock_settings_service.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"fitcoach/fitness-coach/internal/domain"
	"fitcoach/fitness-coach/internal/repository"
)

// SettingsInput replaces every field of the settings document.
// A nil or blank CustomPrompt removes the template.
type SettingsInput struct {
	TargetWeight float64
	BodyFatGoal  float64
	CalorieGoal  float64
	ProteinGoal  float64
	CarbGoal     float64
	FatGoal      float64
	AIModel      string
	CustomPrompt *string
}

func (in SettingsInput) validate() error {
	for label, v := range map[string]float64{
		"targetWeight": in.TargetWeight,
		"bodyFatGoal":  in.BodyFatGoal,
		"calorieGoal":  in.CalorieGoal,
		"proteinGoal":  in.ProteinGoal,
		"carbGoal":     in.CarbGoal,
		"fatGoal":      in.FatGoal,
	} {
		if !finite(v) || v < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", ErrValidation, label)
		}
	}
	if in.BodyFatGoal > 100 {
		return fmt.Errorf("%w: bodyFatGoal must be a percentage", ErrValidation)
	}
	return nil
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, in SettingsInput) (*domain.Settings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.repo.GetOrCreate(ctx)
}

func (s *settingsService) Update(ctx context.Context, in SettingsInput) (*domain.Settings, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	prompt := in.CustomPrompt
	if prompt != nil && strings.TrimSpace(*prompt) == "" {
		prompt = nil
	}
	settings := &domain.Settings{
		ID:           domain.SettingsID,
		TargetWeight: in.TargetWeight,
		BodyFatGoal:  in.BodyFatGoal,
		CalorieGoal:  in.CalorieGoal,
		ProteinGoal:  in.ProteinGoal,
		CarbGoal:     in.CarbGoal,
		FatGoal:      in.FatGoal,
		AIModel:      strings.TrimSpace(in.AIModel),
		CustomPrompt: prompt,
	}
	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return s.repo.GetOrCreate(ctx)
}
