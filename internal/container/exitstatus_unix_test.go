//go:build unix

package container

import "testing"

func TestExitStatusRoundTrip(t *testing.T) {
	for _, code := range []int64{0, 1, 2, 42, 127, 137, 255} {
		status := exitStatus(code)

		if !status.Exited() {
			t.Errorf("exitStatus(%d) does not report a normal exit", code)
		}
		if status.Signaled() {
			t.Errorf("exitStatus(%d) reports a signal", code)
		}
		if got := status.ExitStatus(); int64(got) != code {
			t.Errorf("exitStatus(%d) decodes to %d", code, got)
		}
	}
}
