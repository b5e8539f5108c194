//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the whole process group of pid so Chrome
// helper processes do not outlive the run.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
