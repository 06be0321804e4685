package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultNutritionModels is the ordered fallback list tried by the nutrition estimator.
var DefaultNutritionModels = []string{
	"google/gemini-2.0-flash-exp:free",
	"google/gemini-2.0-pro-exp-02-05:free",
	"google/gemini-exp-1206:free",
	"google/gemini-2.0-flash-thinking-exp:free",
}

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	S3        S3Config        `mapstructure:"s3"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	App       AppConfig       `mapstructure:"app"`
	AI        AIConfig        `mapstructure:"ai"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Address        string        `mapstructure:"address"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	ExportPrefix    string `mapstructure:"export_prefix"`
}

// Enabled reports whether enough is configured to talk to a bucket.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	JSON     bool   `mapstructure:"json"`
	File     string `mapstructure:"file"`
	ToStdout bool   `mapstructure:"to_stdout"`
}

type AppConfig struct {
	// Timezone decides where a calendar day starts and ends.
	Timezone string `mapstructure:"timezone"`
}

// Location resolves the configured timezone, falling back to the process local zone.
func (c AppConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

type AIConfig struct {
	BaseURL   string          `mapstructure:"base_url"`
	APIKey    string          `mapstructure:"api_key"`
	APIKeyEnv string          `mapstructure:"api_key_env"`
	Referer   string          `mapstructure:"referer"`
	Title     string          `mapstructure:"title"`
	Timeout   time.Duration   `mapstructure:"timeout"`
	Coach     CoachConfig     `mapstructure:"coach"`
	Nutrition NutritionConfig `mapstructure:"nutrition"`
}

type CoachConfig struct {
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

type NutritionConfig struct {
	Models      []string `mapstructure:"models"`
	Temperature float64  `mapstructure:"temperature"`
	MaxTokens   int      `mapstructure:"max_tokens"`
}

type RateLimitConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	AIPerMinute   int    `mapstructure:"ai_per_minute"`
}

// LoadConfig reads configuration from file or environment variables.
// A .env file in the working directory is loaded first, without overriding
// variables that are already set.
func LoadConfig(path string) (config Config, err error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, ai.coach.model -> AI_COACH_MODEL
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err = config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	// AI calls are slow; the write timeout has to outlive them.
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitness_coach")
	// Keys without a real default still need registering so that Unmarshal sees env overrides.
	for _, key := range []string{
		"jwt.secret", "ai.api_key", "ratelimit.redis_password",
		"s3.endpoint", "s3.region", "s3.access_key_id", "s3.secret_access_key", "s3.bucket_name",
		"log.file",
	} {
		v.SetDefault(key, "")
	}
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("s3.export_prefix", "exports")
	v.SetDefault("jwt.expiration", "24h")
	v.SetDefault("auth.enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.to_stdout", true)
	v.SetDefault("app.timezone", "Local")
	v.SetDefault("ai.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("ai.api_key_env", "OPENROUTER_API_KEY")
	v.SetDefault("ai.referer", "https://github.com/Seeyoulater21/Personal-Fitness-AI-Coach")
	v.SetDefault("ai.title", "Personal Fitness Coach")
	v.SetDefault("ai.timeout", "60s")
	v.SetDefault("ai.coach.model", "openai/gpt-4o-mini")
	v.SetDefault("ai.coach.temperature", 0.7)
	v.SetDefault("ai.coach.max_tokens", 1000)
	v.SetDefault("ai.nutrition.models", DefaultNutritionModels)
	v.SetDefault("ai.nutrition.temperature", 0.1)
	v.SetDefault("ai.nutrition.max_tokens", 200)
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.redis_addr", "localhost:6379")
	v.SetDefault("ratelimit.ai_per_minute", 20)
}

func (c Config) validate() error {
	if c.Auth.Enabled && c.JWT.Secret == "" {
		return errors.New("jwt.secret is required when auth is enabled")
	}
	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("invalid app.timezone %q: %w", c.App.Timezone, err)
	}
	if c.RateLimit.Enabled && c.RateLimit.AIPerMinute <= 0 {
		return errors.New("ratelimit.ai_per_minute must be > 0")
	}
	return nil
}
