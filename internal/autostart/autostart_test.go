package autostart_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launch-profiles/internal/autostart"
)

var _ autostart.Registrar = (*autostart.XDG)(nil)
var _ autostart.Registrar = (*autostart.StartupFolder)(nil)
var _ autostart.Registrar = (*autostart.LaunchAgent)(nil)

func TestXDGToggle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "autostart")
	x := autostart.NewXDG(dir, "Launch Profiles", "com.example.lp", "/opt/launch profiles/bin")

	assert.False(t, x.IsEnabled())

	require.True(t, x.SetEnabled(true))
	assert.True(t, x.IsEnabled())

	data, err := os.ReadFile(x.EntryPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Desktop Entry]")
	assert.Contains(t, string(data), "Name=Launch Profiles")
	assert.Contains(t, string(data), `Exec="/opt/launch profiles/bin"`)

	require.True(t, x.SetEnabled(false))
	assert.False(t, x.IsEnabled())
	assert.True(t, x.SetEnabled(false), "disabling twice still succeeds")
}

func TestStartupFolderFallsBackToBatch(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Startup")
	s := autostart.NewStartupFolder(dir, "Launch Profiles", `C:\Apps\lp.exe`)
	s.Run = func(string, ...string) ([]byte, error) { return nil, errors.New("no powershell") }

	require.True(t, s.SetEnabled(true))
	assert.True(t, s.IsEnabled())

	data, err := os.ReadFile(filepath.Join(dir, "Launch Profiles.bat"))
	require.NoError(t, err)
	assert.Equal(t, "start \"\" \"C:\\Apps\\lp.exe\"\r\n", string(data))

	require.True(t, s.SetEnabled(false))
	assert.False(t, s.IsEnabled())
}

func TestStartupFolderUsesShortcutWhenCreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Startup")
	s := autostart.NewStartupFolder(dir, "LP", `C:\Apps\lp.exe`)
	var script string
	s.Run = func(name string, args ...string) ([]byte, error) {
		script = args[len(args)-1]
		return nil, os.WriteFile(filepath.Join(dir, "LP.lnk"), []byte("lnk"), 0644)
	}

	require.True(t, s.SetEnabled(true))
	assert.Contains(t, script, `$s.TargetPath = 'C:\Apps\lp.exe'`)
	assert.NoFileExists(t, filepath.Join(dir, "LP.bat"))

	// Both artifacts are removed on disable.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "LP.bat"), nil, 0644))
	require.True(t, s.SetEnabled(false))
	assert.NoFileExists(t, filepath.Join(dir, "LP.lnk"))
	assert.NoFileExists(t, filepath.Join(dir, "LP.bat"))
}

func TestLaunchAgentToggle(t *testing.T) {
	dir := t.TempDir()
	a := autostart.NewLaunchAgent(dir, "com.example.lp", "/Applications/LP & Co.app/lp")

	require.True(t, a.SetEnabled(true))
	assert.True(t, a.IsEnabled())
	data, err := os.ReadFile(a.PlistPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "<string>/Applications/LP &amp; Co.app/lp</string>")
	assert.Contains(t, string(data), "<key>RunAtLoad</key>")

	require.True(t, a.SetEnabled(false))
	assert.False(t, a.IsEnabled())
}
