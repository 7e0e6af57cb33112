package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "holocron-go", cfg.App.Name)
	assert.Equal(t, 3000, cfg.App.Port)
	assert.Empty(t, cfg.Database.URL)
	assert.Equal(t, "/tmp/test.db", cfg.Database.SQLitePath)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Database.UsesPostgres())
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL())
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "holocron.favorites", cfg.Kafka.Topic)
	assert.Equal(t, 500*time.Millisecond, cfg.Kafka.PublishTimeout())
}

func TestLoadReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
app:
  port: 8080
  mode: debug
database:
  sqlite_path: /var/lib/holocron.db
redis:
  enabled: true
  host: cache
  port: 6380
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "debug", cfg.App.Mode)
	assert.Equal(t, "/var/lib/holocron.db", cfg.Database.SQLitePath)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/holocron")
	t.Setenv("PORT", "4000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/holocron", cfg.Database.URL)
	assert.True(t, cfg.Database.UsesPostgres())
	assert.Equal(t, 4000, cfg.App.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestUsesPostgresWheneverURLIsSet(t *testing.T) {
	d := DatabaseConfig{URL: "postgresql://localhost/db"}
	assert.True(t, d.UsesPostgres())

	d.URL = "host=db user=holocron password=secret dbname=holocron sslmode=disable"
	assert.True(t, d.UsesPostgres())

	d.URL = "   "
	assert.False(t, d.UsesPostgres())
}

func TestLoadKeyValueDSNFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "host=db user=holocron dbname=holocron")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "host=db user=holocron dbname=holocron", cfg.Database.URL)
	assert.True(t, cfg.Database.UsesPostgres())
}
