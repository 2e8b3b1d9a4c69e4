package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `log-level: debug
log-format: text
game:
  preset: expert
  tick-interval: 500ms
storage:
  driver: redis
redis:
  host: cache
  port: "6380"
  ttl: 24h
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: it is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: values come from the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "text", conf.LogFormat)
		assert.Equal(t, "expert", conf.Game.Preset)
		assert.Equal(t, 500*time.Millisecond, conf.Game.TickInterval)
		assert.Equal(t, StorageRedis, conf.Storage.Driver)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.TTL)

		// Then: missing keys get defaults
		assert.Equal(t, "./saves", conf.Storage.SaveDir)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		// Then: defaults apply
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "default", conf.Game.Preset)
		assert.Equal(t, time.Second, conf.Game.TickInterval)
		assert.Equal(t, StorageFile, conf.Storage.Driver)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("GAME_PRESET", "beginner")
		t.Setenv("STORAGE_DRIVER", StorageSQLite)

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		assert.Equal(t, "beginner", conf.Game.Preset)
		assert.Equal(t, StorageSQLite, conf.Storage.Driver)
	})

	t.Run("Broken yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [unclosed"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
	})
}
