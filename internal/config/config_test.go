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
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "nutrition_app", cfg.Database.Name)
	assert.Equal(t, time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 0.9, cfg.Goals.Tolerance)
	assert.Equal(t, 7, cfg.Goals.StreakDays)
	assert.Equal(t, 5.0, cfg.Goals.IncreasePercent)
	assert.True(t, cfg.Barcode.SeedDefaults)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  address: ":9090"
jwt:
  secret: from-file
  expiration: 30m
goals:
  streak_days: 5
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("S3_BUCKET_NAME", "exports")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, 5, cfg.Goals.StreakDays)
	assert.Equal(t, "exports", cfg.S3.BucketName)
}
