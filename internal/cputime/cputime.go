// Package cputime measures process CPU time, the clock used for every timed workload.
package cputime

import "time"

// Stopwatch - Measures the process CPU time elapsed since it was started
type Stopwatch struct {
	start time.Duration
}

// Start - Returns a Stopwatch started now
func Start() Stopwatch {
	return Stopwatch{start: Now()}
}

// Elapsed - Returns the CPU time consumed by the process since Start
func (S Stopwatch) Elapsed() time.Duration {
	d := Now() - S.start
	if d < 0 {
		return 0
	}
	return d
}

// Seconds - Returns Elapsed as a floating point number of seconds
func (S Stopwatch) Seconds() float64 {
	return S.Elapsed().Seconds()
}
