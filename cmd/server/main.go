package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitcoach/fitness-coach/internal/api"
	"fitcoach/fitness-coach/internal/app"
	"fitcoach/fitness-coach/internal/config"
	"fitcoach/fitness-coach/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// @title Personal Fitness Coach API
// @version 1.0
// @description Daily logs, workouts, nutrition tracking and an AI coach for a single owner.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logging.Setup(logging.Params{
		Level:    cfg.Log.Level,
		JSON:     cfg.Log.JSON,
		File:     cfg.Log.File,
		ToStdout: cfg.Log.ToStdout,
	})
	log.Info("starting fitness coach server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("could not initialize: %v", err)
	}
	defer func() {
		log.Info("disconnecting mongodb")
		if err := application.Close(); err != nil {
			log.Errorf("failed to disconnect mongodb: %v", err)
		}
	}()

	deps := api.Deps{
		AuthEnabled:      cfg.Auth.Enabled,
		JWTSecret:        cfg.JWT.Secret,
		Location:         application.Location,
		AuthService:      application.AuthService,
		DailyLogService:  application.DailyLogService,
		WorkoutService:   application.WorkoutService,
		FoodService:      application.FoodService,
		SettingsService:  application.SettingsService,
		CoachService:     application.CoachService,
		NutritionService: application.NutritionService,
		ExportService:    application.ExportService,
		Metrics:          application.Metrics,
		MetricsGatherer:  application.Registry,
		AIRequestsPerMin: cfg.RateLimit.AIPerMinute,
	}
	if !cfg.Auth.Enabled {
		log.Warn("authentication disabled, every route is public")
	}

	if cfg.RateLimit.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
		})
		defer rdb.Close()
		limiter, err := api.NewRedisRateLimiter(ctx, rdb)
		if err != nil {
			log.Fatalf("rate limiting enabled but redis is unavailable: %v", err)
		}
		deps.RateLimiter = limiter
		log.Infof("ai routes limited to %d requests per minute", cfg.RateLimit.AIPerMinute)
	}

	if log.GetLevel() < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	api.SetupRoutes(router, deps)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", api.HeaderRequestID},
		ExposedHeaders:   []string{api.HeaderRequestID, "Retry-After", "Content-Disposition"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	// in-flight requests (AI calls included) get 5 seconds to finish
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}
	log.Info("server exiting")
}
