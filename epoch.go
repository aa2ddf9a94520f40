package nanotime

// The factories below are total: every int64 maps to a unique valid
// Time, including negative values for instants before 1970. Sub-second
// splits use floor division, so FromUnixNano(-1) is
// 1969-12-31 23:59:59.999999999, not an instant after the epoch.

// FromUnix returns the Time for the given Unix epoch seconds.
func FromUnix(sec int64) Time {
	return Time{sec: sec}
}

// FromUnixMilli returns the Time for the given Unix epoch milliseconds.
func FromUnixMilli(msec int64) Time {
	sec := floorDiv(msec, 1_000)
	return Time{sec: sec, nsec: int32(msec-sec*1_000) * 1_000_000}
}

// FromUnixMicro returns the Time for the given Unix epoch microseconds.
func FromUnixMicro(usec int64) Time {
	sec := floorDiv(usec, 1_000_000)
	return Time{sec: sec, nsec: int32(usec-sec*1_000_000) * 1_000}
}

// FromUnixNano returns the Time for the given Unix epoch nanoseconds.
func FromUnixNano(nsec int64) Time {
	sec := floorDiv(nsec, 1_000_000_000)
	return Time{sec: sec, nsec: int32(nsec - sec*1_000_000_000)}
}

// Unix returns t as Unix epoch seconds, flooring toward negative
// infinity, consistent with the factories. Exact inverse of FromUnix.
func (t Time) Unix() int64 {
	return t.sec
}

// UnixMilli returns t as Unix epoch milliseconds, flooring toward
// negative infinity. Exact inverse of FromUnixMilli.
func (t Time) UnixMilli() int64 {
	return t.sec*1_000 + int64(t.nsec)/1_000_000
}

// UnixMicro returns t as Unix epoch microseconds. Exact inverse of
// FromUnixMicro. The result is undefined if it does not fit an int64
// (years before -290307 or after 294246).
func (t Time) UnixMicro() int64 {
	return t.sec*1_000_000 + int64(t.nsec)/1_000
}

// UnixNano returns t as Unix epoch nanoseconds. Exact inverse of
// FromUnixNano. The result is undefined if it does not fit an int64
// (dates before the year 1678 or after 2262).
func (t Time) UnixNano() int64 {
	return t.sec*1_000_000_000 + int64(t.nsec)
}
