package platform_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launch-profiles/internal/platform"
)

func TestOpenCommand(t *testing.T) {
	name, args := platform.OpenCommand("windows", `C:\Docs\plan.docx`)
	assert.Equal(t, "cmd", name)
	assert.Equal(t, []string{"/C", "start", "", `C:\Docs\plan.docx`}, args)

	name, args = platform.OpenCommand("darwin", "/tmp/a.pdf")
	assert.Equal(t, "open", name)
	assert.Equal(t, []string{"/tmp/a.pdf"}, args)

	name, args = platform.OpenCommand("linux", "/tmp/a.pdf")
	assert.Equal(t, "xdg-open", name)
	assert.Equal(t, []string{"/tmp/a.pdf"}, args)
}

func TestOpenURLCommand(t *testing.T) {
	name, args := platform.OpenURLCommand("windows", "https://a.test/?x=1&y=2")
	assert.Equal(t, "rundll32", name)
	assert.Equal(t, []string{"url.dll,FileProtocolHandler", "https://a.test/?x=1&y=2"}, args)

	name, _ = platform.OpenURLCommand("freebsd", "https://a.test")
	assert.Equal(t, "xdg-open", name)
}

func TestParseURL(t *testing.T) {
	u, err := platform.ParseURL(" example.com/path ")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/path", u.String())

	u, err = platform.ParseURL("http://localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)

	_, err = platform.ParseURL("  ")
	assert.Error(t, err)
}

func TestProcessSpawnerMissingBinary(t *testing.T) {
	err := platform.ProcessSpawner{}.Spawn(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
