package nanotime

import "fmt"

// RelativeTo returns a human-readable description of t as seen from u,
// e.g. "3s ago", "2m ago", "in 1h", "5d ago", or "just now" when the
// two instants are less than a second apart.
//
// Deltas are bucketed by whole seconds, minutes (60), hours (3600) and
// days (86400), keeping only the largest applicable unit.
func (t Time) RelativeTo(u Time) string {
	delta := u.Unix() - t.Unix()
	past := true
	if delta < 0 {
		delta = -delta
		past = false
	}

	var label string
	switch {
	case delta < 1:
		return "just now"
	case delta < 60:
		label = fmt.Sprintf("%ds", delta)
	case delta < 3600:
		label = fmt.Sprintf("%dm", delta/60)
	case delta < secondsPerDay:
		label = fmt.Sprintf("%dh", delta/3600)
	default:
		label = fmt.Sprintf("%dd", delta/secondsPerDay)
	}

	if past {
		return label + " ago"
	}
	return "in " + label
}

// Ago describes t relative to the current UTC time. Times in the
// future read "in ...".
func (t Time) Ago() string {
	return t.RelativeTo(NowUTC())
}
