package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears an environment variable for the duration of the test.
// t.Setenv is used first so the original value is restored on cleanup.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestGetConfigDefaults(t *testing.T) {
	unsetenv(t, "PORT")
	unsetenv(t, "LOG_LEVEL")
	unsetenv(t, "ENVIRONMENT")

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "kubernetes-platform-stack", cfg.AppName)
	assert.Equal(t, "1.0.0", cfg.AppVersion)
	assert.Equal(t, "unknown", cfg.Environment)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Web.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Web.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.Web.ShutdownTimeout)
}

func TestGetConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
}

func TestGetConfigInvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg, err := GetConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "PORT")
}

func TestAddr(t *testing.T) {
	unsetenv(t, "PORT")

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())

	t.Setenv("PORT", "3000")
	cfg, err = GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
}
