package autostart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// XDG registers through a freedesktop autostart entry.
type XDG struct {
	Dir        string
	AppName    string
	AppID      string
	Executable string
}

func NewXDG(dir, appName, appID, executable string) *XDG {
	return &XDG{Dir: dir, AppName: appName, AppID: appID, Executable: executable}
}

func (x *XDG) EntryPath() string {
	return filepath.Join(x.Dir, x.AppID+".desktop")
}

func (x *XDG) IsEnabled() bool {
	return exists(x.EntryPath())
}

func (x *XDG) SetEnabled(enabled bool) bool {
	if !enabled {
		return removeAll(x.EntryPath())
	}
	if err := os.MkdirAll(x.Dir, 0755); err != nil {
		return false
	}
	return os.WriteFile(x.EntryPath(), []byte(x.desktopEntry()), 0644) == nil
}

func (x *XDG) desktopEntry() string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Name=%s\n", x.AppName)
	fmt.Fprintf(&b, "Exec=%s\n", quoteExec(x.Executable))
	b.WriteString("Terminal=false\n")
	b.WriteString("X-GNOME-Autostart-enabled=true\n")
	return b.String()
}

// quoteExec quotes an Exec= argument for a desktop entry.
func quoteExec(s string) string {
	if !strings.ContainsAny(s, " \t\"'\\$`") {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return `"` + r.Replace(s) + `"`
}
