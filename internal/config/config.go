// Package config resolves runtime settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"launch-profiles/internal/logger"
)

const (
	AppName = "Launch Profiles"
	AppID   = "com.launchprofiles.app"

	ProfileFileName = "profiles.json"

	EnvProfileFile = "LAUNCH_PROFILES_FILE"
	EnvJSONLogs    = "LAUNCH_PROFILES_JSON_LOGS"
	EnvTheme       = "LAUNCH_PROFILES_THEME"
	EnvLogLevel    = "LOG_LEVEL"
	EnvDebug       = "DEBUG"
)

type Config struct {
	ProfileFile string
	LogLevel    logger.LogLevel
	JSONLogs    bool
	// Theme is "light", "dark" or empty to follow the last saved preference.
	Theme string
}

// Load builds a Config from the process environment.
func Load() Config {
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		ProfileFile: getenv(EnvProfileFile),
		LogLevel:    determineLogLevel(getenv),
		JSONLogs:    getenv(EnvJSONLogs) == "true",
		Theme:       normalizeTheme(getenv(EnvTheme)),
	}
	if cfg.ProfileFile == "" {
		cfg.ProfileFile = DefaultProfileFile()
	}
	return cfg
}

// DefaultProfileFile places the profile document beside the executable.
func DefaultProfileFile() string {
	exe, err := os.Executable()
	if err != nil {
		return ProfileFileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), ProfileFileName)
}

func determineLogLevel(getenv func(string) string) logger.LogLevel {
	if level := getenv(EnvLogLevel); level != "" {
		return logger.ParseLevel(level)
	}
	if getenv(EnvDebug) == "1" {
		return logger.DebugLevel
	}
	return logger.InfoLevel
}

func normalizeTheme(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	default:
		return ""
	}
}
