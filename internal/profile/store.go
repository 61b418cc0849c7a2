package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileSystem is the file I/O the Repository depends on.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
}

// OSFileSystem writes through a temp file and rename so readers never see a
// partially written document.
type OSFileSystem struct{}

func (OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (OSFileSystem) WriteFile(name string, data []byte) error {
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := name + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, name); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Repository persists a Store as a single JSON document.
//
// Every mutating call reloads the file, applies the change to the fresh copy
// and writes it back immediately. This is advisory only: two processes
// mutating the same file concurrently can still lose one of the writes.
type Repository struct {
	path string
	fs   FileSystem
}

type Option func(*Repository)

func WithFileSystem(fs FileSystem) Option {
	return func(r *Repository) {
		r.fs = fs
	}
}

func NewRepository(path string, opts ...Option) *Repository {
	r := &Repository{path: path, fs: OSFileSystem{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) Path() string {
	return r.path
}

// Load reads the store. A missing, unreadable or malformed file yields an
// empty store rather than an error.
func (r *Repository) Load() Store {
	data, err := r.fs.ReadFile(r.path)
	if err != nil {
		return NewStore()
	}
	store, err := Decode(data)
	if err != nil {
		return NewStore()
	}
	return store
}

// Save overwrites the file with store.
func (r *Repository) Save(store Store) error {
	data, err := Encode(store)
	if err != nil {
		return err
	}
	if err := r.fs.WriteFile(r.path, data); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}

// Upsert stores p under name, dropping oldName first when this is a rename.
// Pass an empty oldName when creating a profile.
func (r *Repository) Upsert(oldName, name string, p Profile) (Store, error) {
	store, err := r.Load().WithProfile(oldName, name, p)
	if err != nil {
		return store, err
	}
	if err := r.Save(store); err != nil {
		return store, err
	}
	return store, nil
}

// Delete removes name if present and persists the result.
func (r *Repository) Delete(name string) (Store, error) {
	store := r.Load().Without(name)
	if err := r.Save(store); err != nil {
		return store, err
	}
	return store, nil
}

// Decode parses a store document, filling absent fields with empty values.
// Only a document that is not a JSON object with a "profiles" object fails;
// a profile with mistyped fields keeps whatever fields still decode.
func Decode(data []byte) (Store, error) {
	var doc struct {
		Profiles map[string]json.RawMessage `json:"profiles"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return NewStore(), err
	}

	store := NewStore()
	for name, raw := range doc.Profiles {
		store.Profiles[name] = decodeProfile(raw)
	}
	return store.normalized(), nil
}

func decodeProfile(raw json.RawMessage) Profile {
	var p Profile
	if err := json.Unmarshal(raw, &p); err == nil {
		return p
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Profile{}
	}
	p = Profile{
		Apps: decodeStrings(fields["apps"]),
		URLs: decodeStrings(fields["urls"]),
	}
	_ = json.Unmarshal(fields["browser_path"], &p.BrowserPath)
	return p
}

// decodeStrings accepts a list of strings or a lone string. Anything else
// decodes as empty.
func decodeStrings(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return nil
}

// Encode renders store as indented JSON with non-ASCII text left unescaped.
func Encode(store Store) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(store.normalized()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
