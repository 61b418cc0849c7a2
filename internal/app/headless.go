package app

import (
	"fmt"
	"io"

	"launch-profiles/internal/config"
	"launch-profiles/internal/launcher"
	"launch-profiles/internal/logger"
	"launch-profiles/internal/platform"
	"launch-profiles/internal/profile"
)

// RunProfile launches one stored profile without opening a window.
func RunProfile(cfg config.Config, log logger.Logger, name string) (launcher.Report, error) {
	return runProfile(profile.NewRepository(cfg.ProfileFile), NewLauncher(platform.NewShellOpener()), log, name)
}

func runProfile(repo *profile.Repository, l ProfileLauncher, log logger.Logger, name string) (launcher.Report, error) {
	store := repo.Load()
	p, ok := store.Get(name)
	if !ok {
		return launcher.Report{}, fmt.Errorf("profile %q: %w", name, profile.ErrNotFound)
	}
	report := l.Launch(name, p)
	LogReport(log, report)
	return report, nil
}

// ListProfiles writes one line per profile in display order.
func ListProfiles(cfg config.Config, w io.Writer) error {
	return listProfiles(profile.NewRepository(cfg.ProfileFile), w)
}

func listProfiles(repo *profile.Repository, w io.Writer) error {
	store := repo.Load()
	for _, name := range store.Names() {
		p, _ := store.Get(name)
		if _, err := fmt.Fprintf(w, "%s\t%s\n", name, p.Summary()); err != nil {
			return fmt.Errorf("write profile list: %w", err)
		}
	}
	return nil
}
