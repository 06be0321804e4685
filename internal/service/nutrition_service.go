package service

//go:generate mockgen -source=nutrition_service.go -destination=mocks/mock_nutrition_service.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fitcoach/fitness-coach/internal/ai"
	"fitcoach/fitness-coach/internal/metrics"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var ErrAllModelsFailed = errors.New("all AI models failed to respond")

const nutritionSystemPrompt = `You are a nutrition assistant. You only answer with macronutrients for the requested food.
Format strictly as follows:
kcal : [number]
protien : [number]
fat : [number]
carb : [number]

Do not add conversational text. If the food is not found or unclear, provide the best estimate for a standard serving.
Example output:
kcal : 70
protien : 6
fat : 5
carb : 0`

// NutritionOptions control the estimator. Models are tried in order.
type NutritionOptions struct {
	Models      []string
	Temperature float64
	MaxTokens   int
}

type NutritionService interface {
	// Estimate asks each configured model in turn and returns the first successful response.
	Estimate(ctx context.Context, messages []ai.Message) (json.RawMessage, error)
}

type nutritionService struct {
	completer ai.Completer
	opts      NutritionOptions
	metrics   *metrics.Manager
}

func NewNutritionService(completer ai.Completer, opts NutritionOptions, metricsManager *metrics.Manager) NutritionService {
	models := make([]string, len(opts.Models))
	copy(models, opts.Models)
	opts.Models = models
	return &nutritionService{
		completer: completer,
		opts:      opts,
		metrics:   metricsManager,
	}
}

func (s *nutritionService) Estimate(ctx context.Context, messages []ai.Message) (json.RawMessage, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: at least one message is required", ErrValidation)
	}

	all := append([]ai.Message{{Role: "system", Content: nutritionSystemPrompt}}, messages...)

	var errs error
	for _, model := range s.opts.Models {
		// a cancelled request cannot succeed on the next model either
		if ctx.Err() != nil {
			errs = multierr.Append(errs, ctx.Err())
			break
		}

		logger := log.WithField("model", model)
		logger.Debug("attempting nutrition estimate")

		resp, err := s.completer.Complete(ctx, ai.ChatRequest{
			Model:       model,
			Messages:    all,
			Temperature: s.opts.Temperature,
			MaxTokens:   s.opts.MaxTokens,
		})
		if err != nil {
			s.metrics.AIAttempt("nutrition", model, "failure")
			logger.WithError(err).Warn("nutrition model failed, trying next")
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", model, err))
			continue
		}

		s.metrics.AIAttempt("nutrition", model, "success")
		return resp, nil
	}

	if errs == nil {
		return nil, ErrAllModelsFailed
	}
	log.WithError(errs).Error("all nutrition models failed")
	return nil, fmt.Errorf("%w: %w", ErrAllModelsFailed, errs)
}
