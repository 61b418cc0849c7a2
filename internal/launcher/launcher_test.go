package launcher_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launch-profiles/internal/launcher"
	"launch-profiles/internal/profile"
)

// recorder implements every launcher collaborator and logs calls in order.
type recorder struct {
	calls     []string
	spawnErr  map[string]error
	openErr   map[string]error
	urlErr    map[string]error
	resolveTo map[string]string
}

func newRecorder() *recorder {
	return &recorder{
		spawnErr:  map[string]error{},
		openErr:   map[string]error{},
		urlErr:    map[string]error{},
		resolveTo: map[string]string{},
	}
}

func (r *recorder) Resolve(path string) string {
	if target, ok := r.resolveTo[path]; ok {
		return target
	}
	return path
}

func (r *recorder) Spawn(path string, args ...string) error {
	r.calls = append(r.calls, "spawn "+strings.Join(append([]string{path}, args...), " "))
	return r.spawnErr[path]
}

func (r *recorder) Open(path string) error {
	r.calls = append(r.calls, "open "+path)
	return r.openErr[path]
}

func (r *recorder) OpenURL(u string) error {
	r.calls = append(r.calls, "url "+u)
	return r.urlErr[u]
}

func existsIn(paths ...string) func(string) bool {
	set := map[string]bool{}
	for _, p := range paths {
		set[p] = true
	}
	return func(p string) bool { return set[p] }
}

func newLauncher(r *recorder, exists func(string) bool) *launcher.Launcher {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return launcher.New(r, r, r, r,
		launcher.WithExists(exists),
		launcher.WithClock(func() time.Time { return fixed }),
		launcher.WithIDGenerator(func() string { return "run-1" }),
	)
}

func TestLaunchSkipsMissingApps(t *testing.T) {
	r := newRecorder()
	l := newLauncher(r, existsIn("/apps/present.exe"))

	report := l.Launch("Work", profile.Profile{Apps: []string{"/apps/missing.exe", "/apps/present.exe"}})

	assert.Equal(t, []string{"spawn /apps/present.exe"}, r.calls)
	assert.Equal(t, 1, report.Count(launcher.Launched))
	assert.Equal(t, 1, report.Count(launcher.Skipped))
	assert.Empty(t, report.Failures())
	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, "Work", report.Profile)
}

func TestLaunchExecutablesSpawnOthersOpen(t *testing.T) {
	r := newRecorder()
	l := newLauncher(r, existsIn("/a/Tool.EXE", "/a/plan.docx"))

	l.Launch("p", profile.Profile{Apps: []string{"/a/Tool.EXE", "/a/plan.docx", ""}})

	assert.Equal(t, []string{"spawn /a/Tool.EXE", "open /a/plan.docx"}, r.calls)
}

func TestLaunchResolvesShortcuts(t *testing.T) {
	r := newRecorder()
	r.resolveTo["/desk/App.lnk"] = "/real/app.exe"
	l := newLauncher(r, existsIn("/real/app.exe"))

	report := l.Launch("p", profile.Profile{Apps: []string{"/desk/App.lnk"}})

	assert.Equal(t, []string{"spawn /real/app.exe"}, r.calls)
	require.Len(t, report.Items, 1)
	assert.Equal(t, "/desk/App.lnk", report.Items[0].Target)
	assert.Equal(t, "/real/app.exe", report.Items[0].Resolved)
}

func TestLaunchFailuresDoNotStopOthers(t *testing.T) {
	r := newRecorder()
	r.spawnErr["/a/bad.exe"] = errors.New("access denied")
	r.openErr["/a/bad.pdf"] = errors.New("no handler")
	l := newLauncher(r, existsIn("/a/bad.exe", "/a/bad.pdf", "/a/good.exe"))

	report := l.Launch("p", profile.Profile{Apps: []string{"/a/bad.exe", "/a/bad.pdf", "/a/good.exe"}})

	assert.Equal(t, []string{"spawn /a/bad.exe", "open /a/bad.pdf", "spawn /a/good.exe"}, r.calls)
	assert.Equal(t, 2, report.Count(launcher.Failed))
	assert.Equal(t, 1, report.Count(launcher.Launched))
}

func TestLaunchBrowserGetsAllURLsAtOnce(t *testing.T) {
	r := newRecorder()
	l := newLauncher(r, existsIn("/b/firefox.exe"))

	report := l.Launch("p", profile.Profile{
		URLs:        []string{" https://a ", "", "https://b"},
		BrowserPath: "/b/firefox.exe",
	})

	assert.Equal(t, []string{"spawn /b/firefox.exe https://a https://b"}, r.calls)
	require.Len(t, report.Items, 1)
	assert.Equal(t, launcher.KindBrowser, report.Items[0].Kind)
	assert.Equal(t, launcher.Launched, report.Items[0].Outcome)
}

func TestLaunchMissingBrowserFallsBackInOrder(t *testing.T) {
	r := newRecorder()
	l := newLauncher(r, existsIn())

	report := l.Launch("p", profile.Profile{
		URLs:        []string{"https://c", "https://a", "https://b"},
		BrowserPath: "/b/gone.lnk",
	})

	assert.Equal(t, []string{"url https://c", "url https://a", "url https://b"}, r.calls)
	assert.Equal(t, launcher.Skipped, report.Items[0].Outcome)
	assert.Equal(t, 3, report.Count(launcher.Launched))
}

func TestLaunchBrowserSpawnFailureFallsBack(t *testing.T) {
	r := newRecorder()
	r.spawnErr["/b/chrome.exe"] = errors.New("boom")
	l := newLauncher(r, existsIn("/b/chrome.exe"))

	report := l.Launch("p", profile.Profile{URLs: []string{"https://a"}, BrowserPath: "/b/chrome.exe"})

	assert.Equal(t, []string{"spawn /b/chrome.exe https://a", "url https://a"}, r.calls)
	assert.Equal(t, 1, report.Count(launcher.Failed))
}

func TestLaunchDefaultBrowserWhenNoneSet(t *testing.T) {
	r := newRecorder()
	r.urlErr["https://broken"] = errors.New("no browser")
	l := newLauncher(r, existsIn())

	report := l.Launch("p", profile.Profile{URLs: []string{"https://broken", "https://ok"}, BrowserPath: "  "})

	assert.Equal(t, []string{"url https://broken", "url https://ok"}, r.calls)
	assert.Equal(t, 1, report.Count(launcher.Failed))
}

func TestLaunchURLsBeforeApps(t *testing.T) {
	r := newRecorder()
	l := newLauncher(r, existsIn("/a/x.exe"))

	l.Launch("p", profile.Profile{Apps: []string{"/a/x.exe"}, URLs: []string{"https://a"}})

	assert.Equal(t, []string{"url https://a", "spawn /a/x.exe"}, r.calls)
}

func TestLaunchNoURLsSkipsBrowser(t *testing.T) {
	r := newRecorder()
	l := newLauncher(r, existsIn("/b/firefox.exe"))

	report := l.Launch("p", profile.Profile{URLs: []string{"", "  "}, BrowserPath: "/b/firefox.exe"})

	assert.Empty(t, r.calls)
	assert.Empty(t, report.Items)
}

func TestLaunchWithRealFilesystem(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(present, []byte("hi"), 0644))

	r := newRecorder()
	l := launcher.New(r, r, r, r)

	report := l.Launch("p", profile.Profile{Apps: []string{present, filepath.Join(dir, "missing.txt")}})

	assert.Equal(t, []string{"open " + present}, r.calls)
	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.Started.IsZero())
}

func TestIsExecutable(t *testing.T) {
	assert.True(t, launcher.IsExecutable(`C:\x\Tool.Exe`))
	assert.False(t, launcher.IsExecutable("/usr/bin/tool"))
	assert.False(t, launcher.IsExecutable("doc.exe.txt"))
}
