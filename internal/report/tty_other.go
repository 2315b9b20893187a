//go:build !linux

package report

// IsTerminal reports whether the file descriptor refers to a terminal.
// Terminal detection is only supported on linux, elsewhere output is never colored automatically.
func IsTerminal(fd uintptr) bool {
	return false
}
