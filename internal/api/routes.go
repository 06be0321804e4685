package api

import (
	"net/http"
	"time"

	"fitcoach/fitness-coach/internal/metrics"
	"fitcoach/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const aiRouteName = "ai"

// Deps carries everything the router needs. AuthService may be nil when
// authentication is disabled; RateLimiter may be nil when rate limiting is off.
type Deps struct {
	AuthEnabled bool
	JWTSecret   string
	Location    *time.Location

	AuthService      service.AuthService
	DailyLogService  service.DailyLogService
	WorkoutService   service.WorkoutService
	FoodService      service.FoodService
	SettingsService  service.SettingsService
	CoachService     service.CoachService
	NutritionService service.NutritionService
	ExportService    service.ExportService

	Metrics         *metrics.Manager
	MetricsGatherer prometheus.Gatherer

	RateLimiter      RequestRateLimiter
	AIRequestsPerMin int
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	router.Use(
		RequestID(),
		LogRequest(),
		PanicRecovery(deps.Metrics),
	)
	if deps.Metrics != nil {
		router.Use(RequestMetrics(deps.Metrics))
	}

	dailyLogHandler := NewDailyLogHandler(deps.DailyLogService, deps.Location)
	workoutHandler := NewWorkoutHandler(deps.WorkoutService)
	foodHandler := NewFoodHandler(deps.FoodService)
	settingsHandler := NewSettingsHandler(deps.SettingsService)
	aiHandler := NewAIHandler(deps.CoachService, deps.NutritionService)
	exportHandler := NewExportHandler(deps.ExportService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if deps.MetricsGatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.MetricsGatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")
	if deps.AuthEnabled && deps.AuthService != nil {
		authHandler := NewAuthHandler(deps.AuthService)
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	var guards []gin.HandlerFunc
	if deps.AuthEnabled {
		guards = append(guards, AuthMiddleware(deps.JWTSecret))
	}

	protected := apiV1.Group("", guards...)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusUnauthorized, "No authenticated user")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID})
		})

		protected.GET("/dashboard", dailyLogHandler.GetDashboard)

		logs := protected.Group("/logs")
		{
			logs.GET("", dailyLogHandler.ListLogs)
			logs.GET("/today", dailyLogHandler.GetToday)
			logs.GET("/day/:date", dailyLogHandler.GetByDay)
			logs.PUT("/:id/weight", dailyLogHandler.UpdateWeight)
			logs.PUT("/:id/body-fat", dailyLogHandler.UpdateBodyFat)
			logs.PUT("/:id/notes", dailyLogHandler.UpdateNotes)
			logs.POST("/:id/workouts", workoutHandler.LogWorkout)
			logs.POST("/:id/meals", foodHandler.LogFood)
		}

		protected.DELETE("/workouts/:id", workoutHandler.DeleteWorkout)
		protected.PUT("/meals/:id", foodHandler.UpdateFood)
		protected.DELETE("/meals/:id", foodHandler.DeleteFood)

		presets := protected.Group("/presets")
		{
			presets.GET("", foodHandler.ListPresets)
			presets.POST("", foodHandler.AddPreset)
			presets.DELETE("/:id", foodHandler.DeletePreset)
		}

		protected.GET("/settings", settingsHandler.GetSettings)
		protected.PUT("/settings", settingsHandler.UpdateSettings)

		protected.GET("/history/workouts", dailyLogHandler.WorkoutHistory)
		protected.GET("/history/progress", dailyLogHandler.ProgressHistory)

		protected.GET("/export/csv", exportHandler.ExportCSV)
		protected.POST("/export/archive", exportHandler.ArchiveExport)
		protected.POST("/import/csv", exportHandler.ImportCSV)
	}

	aiGuards := append([]gin.HandlerFunc{}, guards...)
	if deps.RateLimiter != nil && deps.AIRequestsPerMin > 0 {
		aiGuards = append(aiGuards, RateLimit(deps.RateLimiter, aiRouteName, deps.AIRequestsPerMin))
	}
	aiGroup := router.Group("/api", aiGuards...)
	{
		aiGroup.POST("/chat", aiHandler.Chat)
		aiGroup.POST("/nutrition-chat", aiHandler.NutritionChat)
	}
}
