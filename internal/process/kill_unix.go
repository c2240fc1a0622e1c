//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to pid's whole process group, sweeping
// up children the parent left behind. Non-positive pids are ignored;
// pid 0 would address the caller's own group.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best effort. The group may already be gone, and the launcher's
	// own kill path is the fallback.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
