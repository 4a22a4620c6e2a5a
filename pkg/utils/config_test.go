package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults match the original server", func(t *testing.T) {
		for _, key := range []string{"PORT", "STORE_DRIVER", "REVIEWS_FILE", "CORS_ORIGIN", "SHUTDOWN_TIMEOUT"} {
			t.Setenv(key, "")
		}

		config, err := LoadConfig(viper.New())
		require.NoError(t, err)

		assert.Equal(t, "3000", config.App.Port)
		assert.Equal(t, StoreDriverFile, config.Store.Driver)
		assert.Equal(t, "./reviews.json", config.Store.ReviewsFile)
		assert.Equal(t, "*", config.App.CORSOrigin)
		assert.Equal(t, 10*time.Second, config.App.ShutdownTimeout)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("PORT", "8081")
		t.Setenv("STORE_DRIVER", "sqlite")
		t.Setenv("SHUTDOWN_TIMEOUT", "3s")

		config, err := LoadConfig(viper.New())
		require.NoError(t, err)

		assert.Equal(t, "8081", config.App.Port)
		assert.Equal(t, StoreDriverSQLite, config.Store.Driver)
		assert.Equal(t, 3*time.Second, config.App.ShutdownTimeout)
	})

	t.Run("an unknown store driver is rejected", func(t *testing.T) {
		v := viper.New()
		v.Set("STORE_DRIVER", "mongo")

		_, err := LoadConfig(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Driver: Must be one of: file, postgres, sqlite")
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("a missing file is skipped", func(t *testing.T) {
		require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("values are exported to the environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("GAME_REVIEWS_TEST_KEY=from-dotenv\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("GAME_REVIEWS_TEST_KEY") })

		require.NoError(t, LoadEnvFile(path))
		assert.Equal(t, "from-dotenv", os.Getenv("GAME_REVIEWS_TEST_KEY"))
	})
}
