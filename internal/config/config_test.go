package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 90*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.AI.Coach.Model)
	assert.Equal(t, 0.7, cfg.AI.Coach.Temperature)
	assert.Equal(t, 1000, cfg.AI.Coach.MaxTokens)
	assert.Equal(t, DefaultNutritionModels, cfg.AI.Nutrition.Models)
	assert.Equal(t, 0.1, cfg.AI.Nutrition.Temperature)
	assert.Equal(t, 200, cfg.AI.Nutrition.MaxTokens)
	assert.Equal(t, "OPENROUTER_API_KEY", cfg.AI.APIKeyEnv)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
app:
  timezone: "Europe/Berlin"
ai:
  nutrition:
    models: ["a/first", "b/second"]
s3:
  bucket_name: "fitness-exports"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("AI_COACH_MODEL", "anthropic/claude-3-haiku")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, []string{"a/first", "b/second"}, cfg.AI.Nutrition.Models)
	assert.Equal(t, "anthropic/claude-3-haiku", cfg.AI.Coach.Model)
	assert.True(t, cfg.S3.Enabled())

	loc, err := cfg.App.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)

	t.Setenv("AUTH_ENABLED", "false")
	_, err = LoadConfig(t.TempDir())
	require.NoError(t, err)
}

func TestLoadConfig_BadTimezone(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")
	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
}
