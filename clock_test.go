package nanotime

import (
	"testing"
	"time"

	"github.com/clipperhouse/ntime"
	"github.com/stretchr/testify/require"
)

// fakeClock is a deterministic Clock for tests. Its readings only move
// when advance is called.
type fakeClock struct {
	local time.Time
	epoch time.Duration
	mono  ntime.Time
}

func (c *fakeClock) Local() time.Time {
	return c.local
}

func (c *fakeClock) SinceEpoch() time.Duration {
	return c.epoch
}

func (c *fakeClock) Monotonic() ntime.Time {
	return c.mono
}

func (c *fakeClock) advance(d time.Duration) {
	c.local = c.local.Add(d)
	c.epoch += d
	c.mono = c.mono.Add(d)
}

func TestNowClock(t *testing.T) {
	t.Parallel()

	c := &fakeClock{
		local: time.Date(2026, time.February, 22, 14, 30, 5, 123_456_789, time.UTC),
	}
	nt := NowClock(c)

	expected, err := New(2026, time.February, 22, 14, 30, 5, 123_456_789)
	require.NoError(t, err)
	require.Equal(t, expected, nt)
}

func TestNowUTCClock(t *testing.T) {
	t.Parallel()

	c := &fakeClock{
		epoch: time.Duration(1_000_000_000_123_456_789),
	}
	nt := NowUTCClock(c)

	require.Equal(t, int64(1_000_000_000), nt.Unix())
	require.Equal(t, 2001, nt.Year())
	require.Equal(t, time.September, nt.Month())
	require.Equal(t, 9, nt.Day())
	require.Equal(t, 123_456_789, nt.Nanosecond())
}

func TestNow_SystemClock(t *testing.T) {
	t.Parallel()

	// Real clock reads always land on a valid, plausible instant.
	for _, nt := range []Time{Now(), NowUTC()} {
		require.GreaterOrEqual(t, nt.Year(), 2025)
		require.True(t, nt.Month() >= time.January && nt.Month() <= time.December)
		require.True(t, nt.Day() >= 1 && nt.Day() <= 31)
		require.LessOrEqual(t, nt.Hour(), 23)
		require.LessOrEqual(t, nt.Minute(), 59)
		require.LessOrEqual(t, nt.Second(), 59)
	}
}
