package nanotime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRelativeTo(t *testing.T) {
	t.Parallel()

	base := FromUnix(1_000_000)

	t.Run("JustNow", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "just now", base.RelativeTo(base))
	})

	t.Run("Past", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "30s ago", FromUnix(1_000_000-30).RelativeTo(base))
		require.Equal(t, "2m ago", FromUnix(1_000_000-150).RelativeTo(base))
		require.Equal(t, "2h ago", FromUnix(1_000_000-7_200).RelativeTo(base))
		require.Equal(t, "2d ago", FromUnix(1_000_000-172_800).RelativeTo(base))
	})

	t.Run("Future", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "in 30s", FromUnix(1_000_000+30).RelativeTo(base))
		require.Equal(t, "in 2m", FromUnix(1_000_000+150).RelativeTo(base))
		require.Equal(t, "in 2h", FromUnix(1_000_000+7_200).RelativeTo(base))
		require.Equal(t, "in 2d", FromUnix(1_000_000+172_800).RelativeTo(base))
	})

	t.Run("BucketBoundaries", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "59s ago", FromUnix(1_000_000-59).RelativeTo(base))
		require.Equal(t, "1m ago", FromUnix(1_000_000-60).RelativeTo(base))
		require.Equal(t, "59m ago", FromUnix(1_000_000-3_599).RelativeTo(base))
		require.Equal(t, "1h ago", FromUnix(1_000_000-3_600).RelativeTo(base))
		require.Equal(t, "23h ago", FromUnix(1_000_000-86_399).RelativeTo(base))
		require.Equal(t, "1d ago", FromUnix(1_000_000-86_400).RelativeTo(base))
		require.Equal(t, "in 59s", FromUnix(1_000_000+59).RelativeTo(base))
		require.Equal(t, "in 1m", FromUnix(1_000_000+60).RelativeTo(base))
		require.Equal(t, "in 1h", FromUnix(1_000_000+3_600).RelativeTo(base))
		require.Equal(t, "in 1d", FromUnix(1_000_000+86_400).RelativeTo(base))
	})

	t.Run("ClockTimesSameDay", func(t *testing.T) {
		t.Parallel()
		a, err := New(2026, time.February, 22, 12, 0, 0, 0)
		require.NoError(t, err)
		b, err := New(2026, time.February, 22, 12, 5, 30, 0)
		require.NoError(t, err)

		require.Equal(t, "5m ago", a.RelativeTo(b))
		require.Equal(t, "in 5m", b.RelativeTo(a))
	})
}

func TestAgo(t *testing.T) {
	t.Parallel()

	// Anchored two days out in each direction, a second of wall-clock
	// jitter between the two Unix reads cannot change the bucket.
	now := NowUTC()

	require.Equal(t, "2d ago", FromUnix(now.Unix()-172_800).Ago())
	require.Equal(t, "in 2d", FromUnix(now.Unix()+172_801).Ago())
}
