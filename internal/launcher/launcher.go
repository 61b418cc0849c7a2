// Package launcher starts everything a profile lists.
package launcher

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"launch-profiles/internal/platform"
	"launch-profiles/internal/profile"
	"launch-profiles/internal/shortcut"
)

// ExecutableExtension marks items that are started directly instead of being
// handed to the file association handler.
const ExecutableExtension = ".exe"

type Launcher struct {
	resolver shortcut.PathResolver
	spawner  platform.Spawner
	files    platform.FileOpener
	urls     platform.URLOpener
	exists   func(string) bool
	now      func() time.Time
	newID    func() string
}

type Option func(*Launcher)

func WithExists(exists func(string) bool) Option {
	return func(l *Launcher) {
		l.exists = exists
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Launcher) {
		l.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(l *Launcher) {
		l.newID = newID
	}
}

func New(resolver shortcut.PathResolver, spawner platform.Spawner, files platform.FileOpener, urls platform.URLOpener, opts ...Option) *Launcher {
	l := &Launcher{
		resolver: resolver,
		spawner:  spawner,
		files:    files,
		urls:     urls,
		exists:   shortcut.Exists,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch opens the profile's URLs and then starts each of its items in order.
// It is best effort: a missing or failing entry never stops the rest.
func (l *Launcher) Launch(name string, p profile.Profile) Report {
	report := Report{
		RunID:   l.newID(),
		Profile: name,
		Started: l.now(),
	}

	report.Items = append(report.Items, l.openURLs(p.CleanURLs(), strings.TrimSpace(p.BrowserPath))...)
	for _, app := range p.Apps {
		if item, ok := l.launchItem(app); ok {
			report.Items = append(report.Items, item)
		}
	}

	report.Finished = l.now()
	return report
}

func (l *Launcher) openURLs(urls []string, browserPath string) []Item {
	if len(urls) == 0 {
		return nil
	}

	var items []Item
	if browserPath != "" {
		resolved := l.resolver.Resolve(browserPath)
		browser := Item{Kind: KindBrowser, Target: browserPath, Resolved: resolved}
		if !l.exists(resolved) {
			browser.Outcome = Skipped
			items = append(items, browser)
		} else if err := l.spawner.Spawn(resolved, urls...); err != nil {
			browser.Outcome = Failed
			browser.Err = err
			items = append(items, browser)
		} else {
			browser.Outcome = Launched
			return append(items, browser)
		}
	}

	for _, u := range urls {
		item := Item{Kind: KindURL, Target: u, Resolved: u, Outcome: Launched}
		if err := l.urls.OpenURL(u); err != nil {
			item.Outcome = Failed
			item.Err = err
		}
		items = append(items, item)
	}
	return items
}

// launchItem reports ok=false for blank entries, which are not worth a line
// in the report.
func (l *Launcher) launchItem(path string) (Item, bool) {
	if path == "" {
		return Item{}, false
	}

	resolved := l.resolver.Resolve(path)
	item := Item{Kind: KindApp, Target: path, Resolved: resolved}
	if !l.exists(resolved) {
		item.Outcome = Skipped
		return item, true
	}

	var err error
	if IsExecutable(resolved) {
		err = l.spawner.Spawn(resolved)
	} else {
		err = l.files.Open(resolved)
	}
	if err != nil {
		item.Outcome = Failed
		item.Err = err
		return item, true
	}
	item.Outcome = Launched
	return item, true
}

func IsExecutable(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ExecutableExtension)
}
