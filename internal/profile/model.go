package profile

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrEmptyName = errors.New("profile name is empty")
	ErrNotFound  = errors.New("profile not found")
)

// Profile is a named bundle of items, URLs and an optional browser launched together.
type Profile struct {
	Apps        []string `json:"apps"`
	URLs        []string `json:"urls"`
	BrowserPath string   `json:"browser_path"`
}

// Store is the full persistent state, keyed by profile name.
type Store struct {
	Profiles map[string]Profile `json:"profiles"`
}

func NewStore() Store {
	return Store{Profiles: map[string]Profile{}}
}

func (s Store) Get(name string) (Profile, bool) {
	p, ok := s.Profiles[name]
	return p, ok
}

func (s Store) Len() int {
	return len(s.Profiles)
}

// Names returns the profile names in display order.
func (s Store) Names() []string {
	names := make([]string, 0, len(s.Profiles))
	for name := range s.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithProfile returns a copy of s where p is stored under name. When oldName
// differs from name and exists, its entry is dropped so a rename leaves no
// trace of the old key. s is not modified.
func (s Store) WithProfile(oldName, name string, p Profile) (Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, ErrEmptyName
	}

	next := s.Clone()
	if oldName != "" && oldName != name {
		delete(next.Profiles, oldName)
	}
	next.Profiles[name] = p.normalized()
	return next, nil
}

// Without returns a copy of s lacking name. Missing names are not an error.
func (s Store) Without(name string) Store {
	next := s.Clone()
	delete(next.Profiles, name)
	return next
}

// Clone deep-copies the store so callers can mutate the result freely.
func (s Store) Clone() Store {
	out := NewStore()
	for name, p := range s.Profiles {
		out.Profiles[name] = p.normalized()
	}
	return out
}

func (s Store) normalized() Store {
	if s.Profiles == nil {
		return NewStore()
	}
	return s.Clone()
}

func (p Profile) normalized() Profile {
	apps := make([]string, len(p.Apps))
	copy(apps, p.Apps)
	urls := make([]string, len(p.URLs))
	copy(urls, p.URLs)
	return Profile{Apps: apps, URLs: urls, BrowserPath: p.BrowserPath}
}

// CleanURLs returns the non-blank URLs, trimmed, in their original order.
func (p Profile) CleanURLs() []string {
	var urls []string
	for _, u := range p.URLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// Summary describes a profile for a one-line card caption.
type Summary struct {
	Programs int
	Websites int
	Browser  string
}

func (p Profile) Summary() Summary {
	browser := ""
	if bp := strings.TrimSpace(p.BrowserPath); bp != "" {
		browser = baseName(bp)
	}
	return Summary{Programs: len(p.Apps), Websites: len(p.URLs), Browser: browser}
}

func (s Summary) String() string {
	line := fmt.Sprintf("%d Programs · %d Websites", s.Programs, s.Websites)
	if s.Browser != "" {
		line += "    " + s.Browser
	}
	return line
}

// AppendUnique appends the non-empty items not already present in list.
func AppendUnique(list []string, items ...string) []string {
	seen := make(map[string]bool, len(list))
	for _, v := range list {
		seen[v] = true
	}
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		list = append(list, item)
	}
	return list
}

// baseName handles both separators so Windows paths read well on any host.
func baseName(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	return filepath.Base(filepath.FromSlash(path))
}
