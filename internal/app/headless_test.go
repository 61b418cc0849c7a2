package app

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launch-profiles/internal/logger"
	"launch-profiles/internal/profile"
)

func TestRunProfileUnknownName(t *testing.T) {
	repo := profile.NewRepository(filepath.Join(t.TempDir(), "profiles.json"))
	l := &fakeLauncher{}

	_, err := runProfile(repo, l, logger.NoOpLogger{}, "Missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, profile.ErrNotFound))
	assert.Empty(t, l.launched)
}

func TestRunProfileLaunchesStoredProfile(t *testing.T) {
	repo := profile.NewRepository(filepath.Join(t.TempDir(), "profiles.json"))
	_, err := repo.Upsert("", "Work", profile.Profile{URLs: []string{"https://example.com"}})
	require.NoError(t, err)
	l := &fakeLauncher{}

	report, err := runProfile(repo, l, logger.NoOpLogger{}, "Work")

	require.NoError(t, err)
	assert.Equal(t, "Work", report.Profile)
	assert.Equal(t, []string{"Work"}, l.launched)
}

func TestListProfilesSorted(t *testing.T) {
	repo := profile.NewRepository(filepath.Join(t.TempDir(), "profiles.json"))
	_, err := repo.Upsert("", "b", profile.Profile{Apps: []string{"x.exe"}})
	require.NoError(t, err)
	_, err = repo.Upsert("", "a", profile.Profile{URLs: []string{"u1", "u2"}, BrowserPath: `C:\Apps\firefox.exe`})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, listProfiles(repo, &buf))

	assert.Equal(t, "a\t0 Programs · 2 Websites    firefox.exe\nb\t1 Programs · 0 Websites\n", buf.String())
}
