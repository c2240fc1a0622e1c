package process

// Notes:
// - Unit tests only use pids that cannot match a live process. Actually
//   killing something is left to the browser-cleanup integration tests,
//   where the process is ours to kill.

import "testing"

func TestKillProcessGroup_DoesNotPanic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pid  int
	}{
		{name: "pid beyond the kernel max", pid: 999999999},
		{name: "zero is refused, it would hit our own group", pid: 0},
		{name: "negative is refused", pid: -42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			KillProcessGroup(tt.pid)
		})
	}
}
