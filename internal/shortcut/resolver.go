// Package shortcut turns shell shortcut files into the paths they point at.
package shortcut

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Extension identifies shell shortcut files.
const Extension = ".lnk"

// PathResolver maps a user supplied path onto the path that should be launched.
type PathResolver interface {
	Resolve(path string) string
}

// CommandRunner runs an external command and returns its standard output.
type CommandRunner func(name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	hideWindow(cmd)
	return cmd.Output()
}

// Resolver parses shortcut files itself and asks the Windows shell only when
// the file cannot be parsed. On hosts without PowerShell that second step
// fails and the path comes back unchanged.
type Resolver struct {
	parse  TargetParser
	run    CommandRunner
	exists func(string) bool
}

type Option func(*Resolver)

func WithRunner(run CommandRunner) Option {
	return func(r *Resolver) {
		r.run = run
	}
}

func WithParser(parse TargetParser) Option {
	return func(r *Resolver) {
		r.parse = parse
	}
}

func WithExists(exists func(string) bool) Option {
	return func(r *Resolver) {
		r.exists = exists
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{parse: ParseLink, run: ExecRunner, exists: Exists}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve never fails: anything it cannot resolve is returned as given.
func (r *Resolver) Resolve(path string) string {
	if !IsShortcut(path) || !r.exists(path) {
		return path
	}

	if target, err := r.parse(path); err == nil && target != "" {
		return target
	}

	out, err := r.run("powershell", "-NoProfile", "-Command", targetQuery(path))
	if err != nil {
		return path
	}
	if target := strings.TrimSpace(string(out)); target != "" {
		return target
	}
	return path
}

// IsShortcut reports whether path carries the shortcut extension.
func IsShortcut(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func targetQuery(path string) string {
	return "$s=(New-Object -ComObject WScript.Shell).CreateShortcut(" + QuotePS(path) + "); Write-Output $s.TargetPath"
}

// QuotePS renders s as a single-quoted PowerShell literal.
func QuotePS(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Passthrough resolves every path to itself.
type Passthrough struct{}

func (Passthrough) Resolve(path string) string { return path }
