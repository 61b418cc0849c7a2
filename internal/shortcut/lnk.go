package shortcut

import (
	"errors"
	"fmt"
	"strings"

	lnk "github.com/parsiya/golnk"
)

var errNoTarget = errors.New("shortcut has no local target")

// TargetParser reads the target stored in a shortcut file.
type TargetParser func(path string) (string, error)

// ParseLink decodes a shell link file directly. The stored target is a
// Windows path whatever OS reads it.
func ParseLink(path string) (target string, err error) {
	// Corrupt files can trip the parser's slice offsets.
	defer func() {
		if r := recover(); r != nil {
			target, err = "", fmt.Errorf("parse %s: %v", path, r)
		}
	}()

	f, err := lnk.File(path)
	if err != nil {
		return "", err
	}

	if base := f.LinkInfo.LocalBasePath; base != "" {
		return joinWindows(base, f.LinkInfo.CommonPathSuffix), nil
	}
	if name := f.StringData.NameString; isAbsWindows(name) {
		return name, nil
	}
	return "", errNoTarget
}

func joinWindows(base, suffix string) string {
	if suffix == "" {
		return base
	}
	return strings.TrimRight(base, `\`) + `\` + strings.TrimLeft(suffix, `\`)
}

// isAbsWindows accepts drive paths like C:\x and UNC paths.
func isAbsWindows(p string) bool {
	if strings.HasPrefix(p, `\\`) {
		return true
	}
	return len(p) >= 3 && p[1] == ':' && (p[2] == '\\' || p[2] == '/')
}
