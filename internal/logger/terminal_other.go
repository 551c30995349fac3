//go:build !linux && !darwin && !windows

package logger

// isTerminal disables colors on platforms without a terminal check.
func isTerminal(uintptr) bool {
	return false
}
