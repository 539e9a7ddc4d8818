//go:build !linux && !windows

package osthread

// ProcessCreationTime is not available on this platform and returns 0.
func ProcessCreationTime() float64 {
	return 0
}
