package autostart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"launch-profiles/internal/shortcut"
)

// StartupFolder registers through the Start Menu Startup folder: a shortcut
// when PowerShell can create one, a batch file otherwise.
type StartupFolder struct {
	Dir        string
	AppName    string
	Executable string
	Run        shortcut.CommandRunner
}

func NewStartupFolder(dir, appName, executable string) *StartupFolder {
	return &StartupFolder{Dir: dir, AppName: appName, Executable: executable, Run: shortcut.ExecRunner}
}

func (s *StartupFolder) linkPath() string {
	return filepath.Join(s.Dir, s.AppName+shortcut.Extension)
}

func (s *StartupFolder) batchPath() string {
	return filepath.Join(s.Dir, s.AppName+".bat")
}

func (s *StartupFolder) IsEnabled() bool {
	return exists(s.linkPath()) || exists(s.batchPath())
}

func (s *StartupFolder) SetEnabled(enabled bool) bool {
	if !enabled {
		return removeAll(s.linkPath(), s.batchPath())
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return false
	}
	if _, err := s.Run("powershell", "-NoProfile", "-Command", s.createShortcutScript()); err == nil && exists(s.linkPath()) {
		return true
	}

	line := fmt.Sprintf("start \"\" \"%s\"\r\n", s.Executable)
	if err := os.WriteFile(s.batchPath(), []byte(line), 0644); err != nil {
		return false
	}
	return exists(s.batchPath())
}

func (s *StartupFolder) createShortcutScript() string {
	q := shortcut.QuotePS
	return strings.Join([]string{
		"$ws = New-Object -ComObject WScript.Shell",
		"$s = $ws.CreateShortcut(" + q(s.linkPath()) + ")",
		"$s.TargetPath = " + q(s.Executable),
		"$s.WorkingDirectory = " + q(filepath.Dir(s.Executable)),
		"$s.IconLocation = " + q(s.Executable+",0"),
		"$s.Save()",
	}, "; ")
}
