package service

//go:generate mockgen -source=daily_log_service.go -destination=mocks/mock_daily_log_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"fitcoach/fitness-coach/internal/domain"
	"fitcoach/fitness-coach/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrDailyLogNotFound = errors.New("daily log not found")
	ErrValidation       = errors.New("validation failed")
)

// Dashboard is everything the home page renders in one call.
type Dashboard struct {
	Today          *domain.DailyLogView   `json:"today"`
	Settings       *domain.Settings       `json:"settings"`
	Goals          Goals                  `json:"goals"`
	Progress       []domain.ProgressPoint `json:"progress"`
	WorkoutHistory []domain.WorkoutDay    `json:"workoutHistory"`
}

// Goals are the effective targets after defaults are applied.
type Goals struct {
	TargetWeight float64 `json:"targetWeight"`
	BodyFat      float64 `json:"bodyFat"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fats         float64 `json:"fats"`
}

// GoalsFrom applies the documented fallbacks to unset goals.
func GoalsFrom(s *domain.Settings) Goals {
	return Goals{
		TargetWeight: s.TargetWeightOrDefault(),
		BodyFat:      s.BodyFatGoalOrDefault(),
		Calories:     s.CalorieGoalOrDefault(),
		Protein:      s.ProteinGoalOrDefault(),
		Carbs:        s.CarbGoal,
		Fats:         s.FatGoal,
	}
}

type DailyLogService interface {
	// GetOrCreate returns the log for t's calendar day, creating it if needed.
	GetOrCreate(ctx context.Context, t time.Time) (*domain.DailyLogView, error)
	Today(ctx context.Context) (*domain.DailyLogView, error)
	// Find is the read-only variant of GetOrCreate. It returns nil when the day has no log.
	Find(ctx context.Context, t time.Time) (*domain.DailyLogView, error)
	ListAll(ctx context.Context) ([]domain.DailyLogView, error)
	UpdateWeight(ctx context.Context, id primitive.ObjectID, weight float64) error
	UpdateBodyFat(ctx context.Context, id primitive.ObjectID, bodyFat float64) error
	UpdateNotes(ctx context.Context, id primitive.ObjectID, notes *string) error
	WorkoutHistory(ctx context.Context) ([]domain.WorkoutDay, error)
	ProgressHistory(ctx context.Context) ([]domain.ProgressPoint, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type dailyLogService struct {
	logRepo      repository.DailyLogRepository
	workoutRepo  repository.WorkoutRepository
	foodRepo     repository.FoodLogRepository
	settingsRepo repository.SettingsRepository
	loc          *time.Location
	now          func() time.Time
}

// NewDailyLogService creates a DailyLogService. Calendar days are cut in loc;
// now defaults to time.Now.
func NewDailyLogService(
	logRepo repository.DailyLogRepository,
	workoutRepo repository.WorkoutRepository,
	foodRepo repository.FoodLogRepository,
	settingsRepo repository.SettingsRepository,
	loc *time.Location,
	now func() time.Time,
) DailyLogService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &dailyLogService{
		logRepo:      logRepo,
		workoutRepo:  workoutRepo,
		foodRepo:     foodRepo,
		settingsRepo: settingsRepo,
		loc:          loc,
		now:          now,
	}
}

func (s *dailyLogService) GetOrCreate(ctx context.Context, t time.Time) (*domain.DailyLogView, error) {
	log, err := s.logRepo.GetOrCreate(ctx, domain.DayKey(t, s.loc), domain.StartOfDay(t, s.loc))
	if err != nil {
		return nil, fmt.Errorf("get or create daily log: %w", err)
	}
	return s.view(ctx, log)
}

func (s *dailyLogService) Today(ctx context.Context) (*domain.DailyLogView, error) {
	return s.GetOrCreate(ctx, s.now())
}

func (s *dailyLogService) Find(ctx context.Context, t time.Time) (*domain.DailyLogView, error) {
	log, err := s.logRepo.GetByDay(ctx, domain.DayKey(t, s.loc))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.view(ctx, log)
}

func (s *dailyLogService) view(ctx context.Context, log *domain.DailyLog) (*domain.DailyLogView, error) {
	workouts, err := s.workoutRepo.GetByDailyLogID(ctx, log.ID)
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}
	meals, err := s.foodRepo.GetByDailyLogID(ctx, log.ID)
	if err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}
	return domain.NewDailyLogView(*log, workouts, meals), nil
}

// ListAll loads every log with its relations, newest first.
func (s *dailyLogService) ListAll(ctx context.Context) ([]domain.DailyLogView, error) {
	logs, err := s.logRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return []domain.DailyLogView{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(logs))
	for _, l := range logs {
		ids = append(ids, l.ID)
	}

	workouts, err := s.workoutRepo.GetByDailyLogIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}
	meals, err := s.foodRepo.GetByDailyLogIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}

	workoutsByLog := make(map[primitive.ObjectID][]domain.WorkoutLog)
	for _, w := range workouts {
		workoutsByLog[w.DailyLogID] = append(workoutsByLog[w.DailyLogID], w)
	}
	mealsByLog := make(map[primitive.ObjectID][]domain.FoodLog)
	for _, m := range meals {
		mealsByLog[m.DailyLogID] = append(mealsByLog[m.DailyLogID], m)
	}

	views := make([]domain.DailyLogView, 0, len(logs))
	for _, l := range logs {
		views = append(views, *domain.NewDailyLogView(l, workoutsByLog[l.ID], mealsByLog[l.ID]))
	}
	return views, nil
}

func (s *dailyLogService) UpdateWeight(ctx context.Context, id primitive.ObjectID, weight float64) error {
	if !finite(weight) || weight <= 0 {
		return fmt.Errorf("%w: weight must be a positive number", ErrValidation)
	}
	return mapLogErr(s.logRepo.SetWeight(ctx, id, weight))
}

func (s *dailyLogService) UpdateBodyFat(ctx context.Context, id primitive.ObjectID, bodyFat float64) error {
	if !finite(bodyFat) || bodyFat <= 0 || bodyFat > 100 {
		return fmt.Errorf("%w: body fat must be a percentage", ErrValidation)
	}
	return mapLogErr(s.logRepo.SetBodyFat(ctx, id, bodyFat))
}

// UpdateNotes replaces the day's notes. Nil or empty clears them.
func (s *dailyLogService) UpdateNotes(ctx context.Context, id primitive.ObjectID, notes *string) error {
	if notes != nil && *notes == "" {
		notes = nil
	}
	return mapLogErr(s.logRepo.SetNotes(ctx, id, notes))
}

func (s *dailyLogService) WorkoutHistory(ctx context.Context) ([]domain.WorkoutDay, error) {
	since := domain.WorkoutHistorySince(s.now())
	workouts, err := s.workoutRepo.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}
	return domain.WorkoutHistory(workouts, since), nil
}

func (s *dailyLogService) ProgressHistory(ctx context.Context) ([]domain.ProgressPoint, error) {
	since := domain.ProgressHistorySince(s.now())
	logs, err := s.logRepo.ListWithReadingsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	return domain.ProgressHistory(logs, since), nil
}

func (s *dailyLogService) Dashboard(ctx context.Context) (*Dashboard, error) {
	today, err := s.Today(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	progress, err := s.ProgressHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("progress history: %w", err)
	}
	history, err := s.WorkoutHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("workout history: %w", err)
	}
	return &Dashboard{
		Today:          today,
		Settings:       settings,
		Goals:          GoalsFrom(settings),
		Progress:       progress,
		WorkoutHistory: history,
	}, nil
}

func mapLogErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrDailyLogNotFound
	}
	return err
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
