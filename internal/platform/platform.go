// Package platform starts processes and hands files and URLs to the OS.
package platform

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
)

// Spawner starts a program with arguments without waiting for it.
type Spawner interface {
	Spawn(path string, args ...string) error
}

// FileOpener opens a file with its default application.
type FileOpener interface {
	Open(path string) error
}

// URLOpener shows a URL in the default browser.
type URLOpener interface {
	OpenURL(rawURL string) error
}

// ProcessSpawner starts detached processes with their output discarded.
type ProcessSpawner struct{}

func (ProcessSpawner) Spawn(path string, args ...string) error {
	return start(exec.Command(path, args...))
}

// start launches cmd in its own process group and reaps it in the background.
// Nil Stdout and Stderr send output to the null device.
func start(cmd *exec.Cmd) error {
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// ShellOpener delegates to the desktop's association handler.
type ShellOpener struct {
	GOOS string
}

func NewShellOpener() ShellOpener {
	return ShellOpener{GOOS: runtime.GOOS}
}

func (o ShellOpener) Open(path string) error {
	name, args := OpenCommand(o.GOOS, path)
	return start(exec.Command(name, args...))
}

func (o ShellOpener) OpenURL(rawURL string) error {
	name, args := OpenURLCommand(o.GOOS, rawURL)
	return start(exec.Command(name, args...))
}

// OpenCommand returns the command that opens target with its default handler.
func OpenCommand(goos, target string) (string, []string) {
	switch goos {
	case "windows":
		return "cmd", []string{"/C", "start", "", target}
	case "darwin":
		return "open", []string{target}
	default:
		return "xdg-open", []string{target}
	}
}

// OpenURLCommand is OpenCommand for URLs. cmd's start would split a URL on
// '&', so Windows goes through the URL protocol handler instead.
func OpenURLCommand(goos, rawURL string) (string, []string) {
	if goos == "windows" {
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	}
	return OpenCommand(goos, rawURL)
}

// FyneURLOpener opens URLs through the running fyne app.
type FyneURLOpener struct {
	App fyne.App
}

func (o FyneURLOpener) OpenURL(rawURL string) error {
	u, err := ParseURL(rawURL)
	if err != nil {
		return err
	}
	return o.App.OpenURL(u)
}

// ParseURL accepts bare hosts like "example.com" by assuming https.
func ParseURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("empty url")
	}
	if !strings.Contains(rawURL, "://") && !strings.HasPrefix(rawURL, "mailto:") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	return u, nil
}
