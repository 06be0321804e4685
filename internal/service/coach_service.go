package service

//go:generate mockgen -source=coach_service.go -destination=mocks/mock_coach_service.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fitcoach/fitness-coach/internal/ai"
	"fitcoach/fitness-coach/internal/domain"
	"fitcoach/fitness-coach/internal/metrics"
	"fitcoach/fitness-coach/internal/repository"

	log "github.com/sirupsen/logrus"
)

var ErrAIRequestFailed = errors.New("failed to fetch AI response")

const (
	DefaultCoachModel = "openai/gpt-4o-mini"

	notLogged = "Not logged"

	placeholderWeight  = "{{WEIGHT}}"
	placeholderBodyFat = "{{BODY_FAT}}"
	placeholderGoals   = "{{GOALS}}"

	coachDateLayout = "1/2/2006"
)

// CoachContextInput is everything the coach prompt is built from.
// Today is nil when no log exists for the day yet.
type CoachContextInput struct {
	Date          time.Time
	Today         *domain.DailyLogView
	Settings      *domain.Settings
	LatestWeight  *float64
	LatestBodyFat *float64
}

// BuildCoachContext renders the system instruction for the coach. With a custom
// template the placeholders are filled and the generated block is appended as reference.
func BuildCoachContext(in CoachContextInput) string {
	settings := in.Settings
	if settings == nil {
		settings = &domain.Settings{}
	}

	weight := reading(in.Today, func(l domain.DailyLog) *float64 { return l.Weight }, in.LatestWeight)
	bodyFat := reading(in.Today, func(l domain.DailyLog) *float64 { return l.BodyFat }, in.LatestBodyFat)

	var totals domain.MacroTotals
	workouts := "None"
	if in.Today != nil {
		totals = in.Today.Totals
		if types := in.Today.WorkoutTypes(); len(types) > 0 {
			workouts = strings.Join(types, ", ")
		}
	}

	var b strings.Builder
	b.WriteString("User Context:\n")
	fmt.Fprintf(&b, "Date: %s\n", in.Date.Format(coachDateLayout))
	fmt.Fprintf(&b, "Weight: %s kg (Goal: %skg)\n", weight, num(settings.TargetWeightOrDefault()))
	fmt.Fprintf(&b, "Body Fat: %s %% (Goal: %s%%)\n", bodyFat, num(settings.BodyFatGoalOrDefault()))
	fmt.Fprintf(&b, "Calories: %s kcal (Goal: %s)\n", num(totals.Calories), num(settings.CalorieGoalOrDefault()))
	fmt.Fprintf(&b, "Protein: %s g (Goal: %sg)\n", num(totals.Protein), num(settings.ProteinGoalOrDefault()))
	fmt.Fprintf(&b, "Workouts: %s\n", workouts)
	b.WriteString("\nProtocol:\n")
	fmt.Fprintf(&b, "- Protein %sg+ daily\n", num(settings.ProteinGoalOrDefault()))
	b.WriteString("- Weight training 3x/week (Mon/Wed/Fri)\n")
	b.WriteString("- Low GI carbs only\n")
	b.WriteString("- Fasting 18:00-11:00\n")
	b.WriteString("\nYou are a strict but encouraging fitness coach. Use the context to give specific advice.\n")
	generated := b.String()

	if !settings.HasCustomPrompt() {
		return generated
	}

	// only the first occurrence of each placeholder is substituted
	prompt := *settings.CustomPrompt
	prompt = strings.Replace(prompt, placeholderWeight, weight, 1)
	prompt = strings.Replace(prompt, placeholderBodyFat, bodyFat, 1)
	goals := fmt.Sprintf("Target Weight: %skg, Body Fat Goal: %s%%", num(settings.TargetWeight), num(settings.BodyFatGoal))
	prompt = strings.Replace(prompt, placeholderGoals, goals, 1)

	return prompt + "\n\nContext Data:\n" + generated
}

// reading prefers today's value, then the latest recorded one.
func reading(today *domain.DailyLogView, field func(domain.DailyLog) *float64, latest *float64) string {
	if today != nil {
		if v := field(today.DailyLog); v != nil {
			return num(*v)
		}
	}
	if latest != nil {
		return num(*latest)
	}
	return notLogged
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// CoachOptions control the coach completion request.
type CoachOptions struct {
	DefaultModel string
	Temperature  float64
	MaxTokens    int
}

type CoachService interface {
	// Chat prepends the assembled context to the conversation and forwards it once.
	Chat(ctx context.Context, messages []ai.Message) (json.RawMessage, error)
}

type coachService struct {
	dailyLogs    DailyLogService
	logRepo      repository.DailyLogRepository
	settingsRepo repository.SettingsRepository
	completer    ai.Completer
	opts         CoachOptions
	metrics      *metrics.Manager
	now          func() time.Time
	loc          *time.Location
}

func NewCoachService(
	dailyLogs DailyLogService,
	logRepo repository.DailyLogRepository,
	settingsRepo repository.SettingsRepository,
	completer ai.Completer,
	opts CoachOptions,
	metricsManager *metrics.Manager,
	loc *time.Location,
	now func() time.Time,
) CoachService {
	if opts.DefaultModel == "" {
		opts.DefaultModel = DefaultCoachModel
	}
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &coachService{
		dailyLogs:    dailyLogs,
		logRepo:      logRepo,
		settingsRepo: settingsRepo,
		completer:    completer,
		opts:         opts,
		metrics:      metricsManager,
		now:          now,
		loc:          loc,
	}
}

func (s *coachService) Chat(ctx context.Context, messages []ai.Message) (json.RawMessage, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: at least one message is required", ErrValidation)
	}

	now := s.now().In(s.loc)
	today, err := s.dailyLogs.Find(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("load today: %w", err)
	}
	settings, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	latestWeight, err := s.logRepo.LatestWeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest weight: %w", err)
	}
	latestBodyFat, err := s.logRepo.LatestBodyFat(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest body fat: %w", err)
	}

	system := BuildCoachContext(CoachContextInput{
		Date:          now,
		Today:         today,
		Settings:      settings,
		LatestWeight:  latestWeight,
		LatestBodyFat: latestBodyFat,
	})

	model := settings.AIModel
	if model == "" {
		model = s.opts.DefaultModel
	}

	req := ai.ChatRequest{
		Model:       model,
		Messages:    append([]ai.Message{{Role: "system", Content: system}}, messages...),
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	}
	resp, err := s.completer.Complete(ctx, req)
	if err != nil {
		s.metrics.AIAttempt("coach", model, "failure")
		log.WithError(err).WithField("model", model).Error("coach completion failed")
		return nil, fmt.Errorf("%w: %v", ErrAIRequestFailed, err)
	}
	s.metrics.AIAttempt("coach", model, "success")
	log.WithField("model", model).Debug("coach completion succeeded")
	return resp, nil
}
