package autostart

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
)

// LaunchAgent registers through a per-user launchd property list.
type LaunchAgent struct {
	Dir        string
	Label      string
	Executable string
}

func NewLaunchAgent(dir, label, executable string) *LaunchAgent {
	return &LaunchAgent{Dir: dir, Label: label, Executable: executable}
}

func (a *LaunchAgent) PlistPath() string {
	return filepath.Join(a.Dir, a.Label+".plist")
}

func (a *LaunchAgent) IsEnabled() bool {
	return exists(a.PlistPath())
}

func (a *LaunchAgent) SetEnabled(enabled bool) bool {
	if !enabled {
		return removeAll(a.PlistPath())
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return false
	}
	return os.WriteFile(a.PlistPath(), []byte(a.plist()), 0644) == nil
}

func (a *LaunchAgent) plist() string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">` + "\n")
	b.WriteString(`<plist version="1.0">` + "\n<dict>\n")
	b.WriteString("\t<key>Label</key>\n\t<string>" + escapeXML(a.Label) + "</string>\n")
	b.WriteString("\t<key>ProgramArguments</key>\n\t<array>\n\t\t<string>" + escapeXML(a.Executable) + "</string>\n\t</array>\n")
	b.WriteString("\t<key>RunAtLoad</key>\n\t<true/>\n")
	b.WriteString("</dict>\n</plist>\n")
	return b.String()
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
