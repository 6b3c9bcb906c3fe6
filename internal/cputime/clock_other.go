//go:build !unix

package cputime

import "time"

var epoch = time.Now()

// Now - Returns a monotonic wall clock reading, there is no portable process CPU clock on this platform
func Now() time.Duration {
	return time.Since(epoch)
}
