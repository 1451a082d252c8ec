//go:build unix

package container

import "syscall"

// Encodes a container exit code as a native wait status.
//
// The wait(2) convention keeps the exit code in the high byte of the status
// word, with the low byte reserved for signal and core-dump flags, hence
// the shift. Decoding with [syscall.WaitStatus.ExitStatus] recovers the
// original code.
func exitStatus(code int64) syscall.WaitStatus {
	return syscall.WaitStatus(uint32(code) << 8)
}
