//go:build linux

package report

import "golang.org/x/sys/unix"

// IsTerminal reports whether the file descriptor refers to a terminal.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}
