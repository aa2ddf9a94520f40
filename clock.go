package nanotime

import (
	"time"

	"github.com/clipperhouse/ntime"
)

// Clock supplies the external time sources consumed by the Now
// factories and Stopwatch. Implementations other than the system clock
// are typically fakes for deterministic tests.
type Clock interface {
	// Local returns the current wall-clock time in the host's local zone.
	Local() time.Time
	// SinceEpoch returns the elapsed duration since the Unix epoch, UTC.
	SinceEpoch() time.Duration
	// Monotonic returns an opaque monotonic reading, meaningful only
	// when subtracted from another reading from the same Clock.
	Monotonic() ntime.Time
}

// systemClock reads the host's real clocks.
type systemClock struct{}

func (systemClock) Local() time.Time {
	return time.Now()
}

func (systemClock) SinceEpoch() time.Duration {
	return time.Duration(time.Now().UnixNano())
}

func (systemClock) Monotonic() ntime.Time {
	return ntime.Now()
}

// Now returns the current local time.
func Now() Time {
	return NowClock(systemClock{})
}

// NowClock returns the current local time as reported by the given Clock.
func NowClock(c Clock) Time {
	now := c.Local()
	year, month, day := now.Date()
	hour, min, sec := now.Clock()
	return fromCalendar(year, month, day, hour, min, sec, now.Nanosecond())
}

// NowUTC returns the current UTC time.
func NowUTC() Time {
	return NowUTCClock(systemClock{})
}

// NowUTCClock returns the current UTC time as reported by the given Clock.
func NowUTCClock(c Clock) Time {
	return FromUnixNano(c.SinceEpoch().Nanoseconds())
}
