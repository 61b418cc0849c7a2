// Package autostart registers the application to run at user login.
package autostart

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Registrar exposes login-time registration as plain booleans.
type Registrar interface {
	IsEnabled() bool
	SetEnabled(enabled bool) bool
}

// New returns the registrar for the running OS.
func New(appName, appID string) (Registrar, error) {
	exe, err := getExecPath()
	if err != nil {
		return nil, err
	}

	switch runtime.GOOS {
	case "windows":
		return NewStartupFolder(startupDir(), appName, exe), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("home directory: %w", err)
		}
		return NewLaunchAgent(filepath.Join(home, "Library", "LaunchAgents"), appID, exe), nil
	default:
		dir, err := xdgAutostartDir()
		if err != nil {
			return nil, err
		}
		return NewXDG(dir, appName, appID, exe), nil
	}
}

// getExecPath returns the path to the currently running executable.
func getExecPath() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("get executable path: %w", err)
	}
	return execPath, nil
}

func startupDir() string {
	return filepath.Join(os.Getenv("APPDATA"), "Microsoft", "Windows", "Start Menu", "Programs", "Startup")
}

func xdgAutostartDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "autostart"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}
	return filepath.Join(home, ".config", "autostart"), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// removeAll deletes every existing path and reports whether all removals worked.
func removeAll(paths ...string) bool {
	ok := true
	for _, p := range paths {
		if !exists(p) {
			continue
		}
		if err := os.Remove(p); err != nil {
			ok = false
		}
	}
	return ok
}
