package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"launch-profiles/internal/config"
	"launch-profiles/internal/logger"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := config.FromEnv(envMap(nil))

	assert.Equal(t, config.DefaultProfileFile(), cfg.ProfileFile)
	assert.Equal(t, logger.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.JSONLogs)
	assert.Empty(t, cfg.Theme)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := config.FromEnv(envMap(map[string]string{
		config.EnvProfileFile: "/tmp/p.json",
		config.EnvLogLevel:    "error",
		config.EnvDebug:       "1",
		config.EnvJSONLogs:    "true",
		config.EnvTheme:       "Dark",
	}))

	assert.Equal(t, "/tmp/p.json", cfg.ProfileFile)
	assert.Equal(t, logger.ErrorLevel, cfg.LogLevel, "LOG_LEVEL wins over DEBUG")
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestFromEnvDebugFlag(t *testing.T) {
	cfg := config.FromEnv(envMap(map[string]string{config.EnvDebug: "1", config.EnvTheme: "purple"}))

	assert.Equal(t, logger.DebugLevel, cfg.LogLevel)
	assert.Empty(t, cfg.Theme)
}
