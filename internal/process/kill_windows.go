//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup terminates pid and its child tree with taskkill.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
