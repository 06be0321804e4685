package service

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"fitcoach/fitness-coach/internal/ai"
	"fitcoach/fitness-coach/internal/domain"
	"fitcoach/fitness-coach/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeDailyLogRepo struct {
	mu   sync.Mutex
	logs map[primitive.ObjectID]*domain.DailyLog
}

func newFakeDailyLogRepo() *fakeDailyLogRepo {
	return &fakeDailyLogRepo{logs: map[primitive.ObjectID]*domain.DailyLog{}}
}

func (r *fakeDailyLogRepo) GetOrCreate(_ context.Context, day string, date time.Time) (*domain.DailyLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.logs {
		if l.Day == day {
			cp := *l
			return &cp, nil
		}
	}
	l := &domain.DailyLog{ID: primitive.NewObjectID(), Day: day, Date: date, CreatedAt: date, UpdatedAt: date}
	r.logs[l.ID] = l
	cp := *l
	return &cp, nil
}

func (r *fakeDailyLogRepo) GetByDay(_ context.Context, day string) (*domain.DailyLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.logs {
		if l.Day == day {
			cp := *l
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeDailyLogRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.DailyLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.logs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeDailyLogRepo) sorted(asc bool) []domain.DailyLog {
	out := make([]domain.DailyLog, 0, len(r.logs))
	for _, l := range r.logs {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool {
		if asc {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func (r *fakeDailyLogRepo) ListAll(_ context.Context) ([]domain.DailyLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(false), nil
}

func (r *fakeDailyLogRepo) ListWithReadingsSince(_ context.Context, since time.Time) ([]domain.DailyLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.DailyLog{}
	for _, l := range r.sorted(true) {
		if !l.Date.Before(since) && (l.Weight != nil || l.BodyFat != nil) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeDailyLogRepo) LatestWeight(_ context.Context) (*float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.sorted(false) {
		if l.Weight != nil {
			return l.Weight, nil
		}
	}
	return nil, nil
}

func (r *fakeDailyLogRepo) LatestBodyFat(_ context.Context) (*float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.sorted(false) {
		if l.BodyFat != nil {
			return l.BodyFat, nil
		}
	}
	return nil, nil
}

func (r *fakeDailyLogRepo) mutate(id primitive.ObjectID, fn func(*domain.DailyLog)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.logs[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(l)
	return nil
}

func (r *fakeDailyLogRepo) SetWeight(_ context.Context, id primitive.ObjectID, weight float64) error {
	return r.mutate(id, func(l *domain.DailyLog) { l.Weight = &weight })
}

func (r *fakeDailyLogRepo) SetBodyFat(_ context.Context, id primitive.ObjectID, bodyFat float64) error {
	return r.mutate(id, func(l *domain.DailyLog) { l.BodyFat = &bodyFat })
}

func (r *fakeDailyLogRepo) SetNotes(_ context.Context, id primitive.ObjectID, notes *string) error {
	return r.mutate(id, func(l *domain.DailyLog) { l.Notes = notes })
}

type fakeWorkoutRepo struct {
	mu       sync.Mutex
	workouts []domain.WorkoutLog
}

func (r *fakeWorkoutRepo) Create(_ context.Context, w *domain.WorkoutLog) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.ID = primitive.NewObjectID()
	r.workouts = append(r.workouts, *w)
	return w.ID, nil
}

func (r *fakeWorkoutRepo) GetByDailyLogID(ctx context.Context, id primitive.ObjectID) ([]domain.WorkoutLog, error) {
	return r.GetByDailyLogIDs(ctx, []primitive.ObjectID{id})
}

func (r *fakeWorkoutRepo) GetByDailyLogIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.WorkoutLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.WorkoutLog{}
	for _, w := range r.workouts {
		for _, id := range ids {
			if w.DailyLogID == id {
				out = append(out, w)
			}
		}
	}
	return out, nil
}

func (r *fakeWorkoutRepo) ListSince(_ context.Context, since time.Time) ([]domain.WorkoutLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.WorkoutLog{}
	for _, w := range r.workouts {
		if !w.Date.Before(since) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, w := range r.workouts {
		if w.ID == id {
			r.workouts = append(r.workouts[:i], r.workouts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeFoodLogRepo struct {
	mu    sync.Mutex
	meals []domain.FoodLog
}

func (r *fakeFoodLogRepo) Create(_ context.Context, f *domain.FoodLog) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.ID = primitive.NewObjectID()
	r.meals = append(r.meals, *f)
	return f.ID, nil
}

func (r *fakeFoodLogRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.FoodLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.meals {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeFoodLogRepo) GetByDailyLogID(ctx context.Context, id primitive.ObjectID) ([]domain.FoodLog, error) {
	return r.GetByDailyLogIDs(ctx, []primitive.ObjectID{id})
}

func (r *fakeFoodLogRepo) GetByDailyLogIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.FoodLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.FoodLog{}
	for _, m := range r.meals {
		for _, id := range ids {
			if m.DailyLogID == id {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func (r *fakeFoodLogRepo) Update(_ context.Context, f *domain.FoodLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.meals {
		if r.meals[i].ID == f.ID {
			r.meals[i].Name = f.Name
			r.meals[i].Macros = f.Macros
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeFoodLogRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.meals {
		if m.ID == id {
			r.meals = append(r.meals[:i], r.meals[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakePresetRepo struct {
	presets []domain.FoodPreset
}

func (r *fakePresetRepo) Create(_ context.Context, p *domain.FoodPreset) (primitive.ObjectID, error) {
	p.ID = primitive.NewObjectID()
	r.presets = append(r.presets, *p)
	return p.ID, nil
}

func (r *fakePresetRepo) List(_ context.Context) ([]domain.FoodPreset, error) {
	out := append([]domain.FoodPreset{}, r.presets...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakePresetRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, p := range r.presets {
		if p.ID == id {
			r.presets = append(r.presets[:i], r.presets[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeSettingsRepo struct {
	settings *domain.Settings
}

func (r *fakeSettingsRepo) GetOrCreate(_ context.Context) (*domain.Settings, error) {
	if r.settings == nil {
		r.settings = &domain.Settings{ID: domain.SettingsID}
	}
	cp := *r.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, s *domain.Settings) error {
	cp := *s
	r.settings = &cp
	return nil
}

type fakeUserRepo struct {
	users []domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (primitive.ObjectID, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return primitive.NilObjectID, repository.ErrConflict
		}
	}
	u.ID = primitive.NewObjectID()
	r.users = append(r.users, *u)
	return u.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// scriptedCompleter fails the first failures calls and records every request.
type scriptedCompleter struct {
	failures int
	err      error
	requests []ai.ChatRequest
}

func (c *scriptedCompleter) Complete(_ context.Context, req ai.ChatRequest) (json.RawMessage, error) {
	c.requests = append(c.requests, req)
	if len(c.requests) <= c.failures {
		return nil, c.err
	}
	return json.RawMessage(`{"choices":[{"message":{"role":"assistant","content":"` + req.Model + `"}}]}`), nil
}

type fakeStorage struct {
	objects map[string][]byte
	types   map[string]string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *fakeStorage) PutObject(_ context.Context, key, contentType string, body []byte) error {
	s.objects[key] = body
	s.types[key] = contentType
	return nil
}

func (s *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://bucket.example/" + key + "?sig=1", nil
}

type repos struct {
	logs     *fakeDailyLogRepo
	workouts *fakeWorkoutRepo
	meals    *fakeFoodLogRepo
	presets  *fakePresetRepo
	settings *fakeSettingsRepo
}

func newRepos() *repos {
	return &repos{
		logs:     newFakeDailyLogRepo(),
		workouts: &fakeWorkoutRepo{},
		meals:    &fakeFoodLogRepo{},
		presets:  &fakePresetRepo{},
		settings: &fakeSettingsRepo{},
	}
}

func (r *repos) dailyLogService(loc *time.Location, now func() time.Time) DailyLogService {
	return NewDailyLogService(r.logs, r.workouts, r.meals, r.settings, loc, now)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func f64(v float64) *float64 { return &v }
