//go:build windows

package container

import "syscall"

// Encodes a container exit code as a native wait status.
//
// Windows exit codes are plain values with no packed layout, so the code is
// used directly.
func exitStatus(code int64) syscall.WaitStatus {
	return syscall.WaitStatus{ExitCode: uint32(code)}
}
