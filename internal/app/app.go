package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fitcoach/fitness-coach/internal/ai"
	"fitcoach/fitness-coach/internal/config"
	"fitcoach/fitness-coach/internal/metrics"
	repomongo "fitcoach/fitness-coach/internal/repository/mongo"
	"fitcoach/fitness-coach/internal/service"
	"fitcoach/fitness-coach/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// App is the wired set of services shared by the server and the CLI.
type App struct {
	Config   config.Config
	Location *time.Location
	Metrics  *metrics.Manager
	Registry *prometheus.Registry

	AuthService      service.AuthService // nil when auth is disabled
	DailyLogService  service.DailyLogService
	WorkoutService   service.WorkoutService
	FoodService      service.FoodService
	SettingsService  service.SettingsService
	CoachService     service.CoachService
	NutritionService service.NutritionService
	ExportService    service.ExportService

	dbClient *mongo.Client
}

// New connects to MongoDB, ensures indexes, optionally connects to S3 and
// builds every service.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}

	dbClient, err := repomongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	db := dbClient.Database(cfg.Database.Name)

	idxCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	if err := repomongo.EnsureIndexes(idxCtx, db); err != nil {
		_ = repomongo.DisconnectDB(dbClient)
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		fileStorage, err = storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			_ = repomongo.DisconnectDB(dbClient)
			return nil, fmt.Errorf("init s3 storage: %w", err)
		}
	} else {
		log.Info("s3 bucket not configured, export archiving disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager("fitcoach", "server", registry)

	dailyLogRepo := repomongo.NewMongoDailyLogRepository(db)
	workoutRepo := repomongo.NewMongoWorkoutRepository(db)
	foodRepo := repomongo.NewMongoFoodLogRepository(db)
	presetRepo := repomongo.NewMongoFoodPresetRepository(db)
	settingsRepo := repomongo.NewMongoSettingsRepository(db)
	userRepo := repomongo.NewMongoUserRepository(db)

	coachClient, nutritionClient := newCompletionClients(cfg.AI)

	dailyLogService := service.NewDailyLogService(dailyLogRepo, workoutRepo, foodRepo, settingsRepo, loc, nil)
	a := &App{
		Config:          cfg,
		Location:        loc,
		Metrics:         metricsManager,
		Registry:        registry,
		DailyLogService: dailyLogService,
		WorkoutService:  service.NewWorkoutService(dailyLogRepo, workoutRepo),
		FoodService:     service.NewFoodService(dailyLogRepo, foodRepo, presetRepo),
		SettingsService: service.NewSettingsService(settingsRepo),
		CoachService: service.NewCoachService(
			dailyLogService, dailyLogRepo, settingsRepo, coachClient,
			service.CoachOptions{
				DefaultModel: cfg.AI.Coach.Model,
				Temperature:  cfg.AI.Coach.Temperature,
				MaxTokens:    cfg.AI.Coach.MaxTokens,
			},
			metricsManager, loc, nil,
		),
		NutritionService: service.NewNutritionService(nutritionClient, service.NutritionOptions{
			Models:      cfg.AI.Nutrition.Models,
			Temperature: cfg.AI.Nutrition.Temperature,
			MaxTokens:   cfg.AI.Nutrition.MaxTokens,
		}, metricsManager),
		ExportService: service.NewExportService(dailyLogService, fileStorage, cfg.S3.ExportPrefix, loc),
		dbClient:      dbClient,
	}
	if cfg.Auth.Enabled {
		a.AuthService = service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	}
	return a, nil
}

// newCompletionClients builds one client per AI route. Only nutrition requests
// carry the HTTP-Referer and X-Title attribution headers.
func newCompletionClients(cfg config.AIConfig) (coach, nutrition *ai.Client) {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	coach = &ai.Client{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		APIKeyEnv:  cfg.APIKeyEnv,
		HTTPClient: httpClient,
	}
	nutrition = &ai.Client{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		APIKeyEnv:  cfg.APIKeyEnv,
		Referer:    cfg.Referer,
		Title:      cfg.Title,
		HTTPClient: httpClient,
	}
	return coach, nutrition
}

// Close releases the database connection.
func (a *App) Close() error {
	if a.dbClient == nil {
		return nil
	}
	return repomongo.DisconnectDB(a.dbClient)
}
