package nanotime

import (
	"fmt"
	"time"

	"github.com/clipperhouse/ntime"
)

// Stopwatch measures elapsed wall-clock time from a fixed start marker.
// It never caches and never resets: every elapsed query reads the
// monotonic source again. Concurrent queries are safe, as nothing
// mutates after Start.
//
// Create one with Start or StartClock; the zero value has no clock and
// is not usable.
type Stopwatch struct {
	clock Clock
	start ntime.Time
}

// Start returns a Stopwatch marking the current instant.
func Start() Stopwatch {
	return StartClock(systemClock{})
}

// StartClock returns a Stopwatch marking the current instant of the
// given Clock. Later elapsed queries read the same Clock.
func StartClock(c Clock) Stopwatch {
	return Stopwatch{clock: c, start: c.Monotonic()}
}

func (s Stopwatch) elapsed() time.Duration {
	return s.clock.Monotonic().Sub(s.start)
}

// ElapsedSeconds returns the elapsed time in fractional seconds.
func (s Stopwatch) ElapsedSeconds() float64 {
	return s.elapsed().Seconds()
}

// ElapsedMilli returns the elapsed time in whole milliseconds, truncated.
func (s Stopwatch) ElapsedMilli() uint64 {
	return uint64(s.elapsed().Milliseconds())
}

// ElapsedMicro returns the elapsed time in whole microseconds, truncated.
func (s Stopwatch) ElapsedMicro() uint64 {
	return uint64(s.elapsed().Microseconds())
}

// ElapsedNano returns the elapsed time in nanoseconds.
func (s Stopwatch) ElapsedNano() uint64 {
	return uint64(s.elapsed().Nanoseconds())
}

// String renders the elapsed time as "123ms" under one second, and
// "1.23s" (two fractional digits) from one second up. A single
// monotonic reading feeds both the threshold and the rendering.
func (s Stopwatch) String() string {
	d := s.elapsed()
	if ms := d.Milliseconds(); ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
