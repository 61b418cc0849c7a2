//go:build !windows

package shortcut

import "os/exec"

func hideWindow(cmd *exec.Cmd) {}
