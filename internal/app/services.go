package app

import (
	"launch-profiles/internal/launcher"
	"launch-profiles/internal/platform"
	"launch-profiles/internal/shortcut"
)

// NewLauncher wires the OS-backed launcher. urls decides how URLs reach the
// default browser when no browser executable is configured.
func NewLauncher(urls platform.URLOpener) *launcher.Launcher {
	opener := platform.NewShellOpener()
	return launcher.New(shortcut.NewResolver(), platform.ProcessSpawner{}, opener, urls)
}
