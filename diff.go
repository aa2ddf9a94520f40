package nanotime

import "time"

// DiffSeconds returns t - u in whole seconds. Negative if t is before u.
func (t Time) DiffSeconds(u Time) int64 {
	return t.Unix() - u.Unix()
}

// DiffMilli returns t - u in whole milliseconds. Negative if t is before u.
func (t Time) DiffMilli(u Time) int64 {
	return t.UnixMilli() - u.UnixMilli()
}

// DiffMicro returns t - u in whole microseconds. Negative if t is
// before u. Subject to the int64 range documented on UnixMicro.
func (t Time) DiffMicro(u Time) int64 {
	return t.UnixMicro() - u.UnixMicro()
}

// DiffNano returns t - u in nanoseconds. Negative if t is before u.
// Subject to the int64 range documented on UnixNano.
func (t Time) DiffNano(u Time) int64 {
	return t.UnixNano() - u.UnixNano()
}

// Sub returns t - u as a time.Duration, for interoperating with the
// standard library. Same range caveat as DiffNano.
func (t Time) Sub(u Time) time.Duration {
	return time.Duration(t.DiffNano(u))
}
