// Package nanotime converts between proleptic-Gregorian calendar fields
// and a linear Unix-epoch time value, with nanosecond resolution. It
// validates calendar tuples, formats absolute and relative timestamps,
// and measures elapsed wall-clock time via a monotonic source.
//
// There are no timezones here: a Time holds whatever fields it was given
// (local or UTC, the caller's choice), and all epoch math is UTC.
package nanotime

import (
	"errors"
	"fmt"
	"time"
)

// Time is an instant with nanosecond resolution. It is immutable,
// comparable (usable as a map key), and ordered chronologically.
//
// Internally a Time is seconds since the Unix epoch plus a sub-second
// nanosecond count in [0, 999999999]. Calendar fields are computed on
// demand, so the linear value is the single source of truth.
type Time struct {
	sec  int64
	nsec int32
}

// ErrInvalid is returned by New when the fields do not describe a real
// calendar date and time.
var ErrInvalid = errors.New("nanotime: invalid calendar fields")

// New returns the Time for the given calendar fields, or an error
// wrapping ErrInvalid if they do not form a valid date and time.
//
// month must be in [January, December], day in [1, days in that month
// accounting for leap years], hour in [0, 23], min and sec in [0, 59],
// and nsec in [0, 999999999]. No field is ever clamped.
func New(year int, month time.Month, day, hour, min, sec, nsec int) (Time, error) {
	switch {
	case month < time.January || month > time.December:
		return Time{}, fmt.Errorf("%w: month %d", ErrInvalid, int(month))
	case day < 1 || day > daysInMonth(year, month):
		return Time{}, fmt.Errorf("%w: day %d of %04d-%02d", ErrInvalid, day, year, int(month))
	case hour < 0 || hour > 23:
		return Time{}, fmt.Errorf("%w: hour %d", ErrInvalid, hour)
	case min < 0 || min > 59:
		return Time{}, fmt.Errorf("%w: minute %d", ErrInvalid, min)
	case sec < 0 || sec > 59:
		return Time{}, fmt.Errorf("%w: second %d", ErrInvalid, sec)
	case nsec < 0 || nsec > 999_999_999:
		return Time{}, fmt.Errorf("%w: nanosecond %d", ErrInvalid, nsec)
	}
	return fromCalendar(year, month, day, hour, min, sec, nsec), nil
}

// fromCalendar assumes the fields are already valid.
func fromCalendar(year int, month time.Month, day, hour, min, sec, nsec int) Time {
	days := daysFromCivil(int64(year), month, day)
	return Time{
		sec:  days*secondsPerDay + int64(hour)*3600 + int64(min)*60 + int64(sec),
		nsec: int32(nsec),
	}
}

// date returns the calendar date fields.
func (t Time) date() (year int, month time.Month, day int) {
	return civilFromDays(floorDiv(t.sec, secondsPerDay))
}

// clock returns the time-of-day fields.
func (t Time) clock() (hour, min, sec int) {
	s := t.sec - floorDiv(t.sec, secondsPerDay)*secondsPerDay
	return int(s / 3600), int(s % 3600 / 60), int(s % 60)
}

// Year returns the year.
func (t Time) Year() int {
	year, _, _ := t.date()
	return year
}

// Month returns the month of the year.
func (t Time) Month() time.Month {
	_, month, _ := t.date()
	return month
}

// Day returns the day of the month, 1-based.
func (t Time) Day() int {
	_, _, day := t.date()
	return day
}

// Hour returns the hour within the day, in [0, 23].
func (t Time) Hour() int {
	hour, _, _ := t.clock()
	return hour
}

// Minute returns the minute within the hour, in [0, 59].
func (t Time) Minute() int {
	_, min, _ := t.clock()
	return min
}

// Second returns the second within the minute, in [0, 59].
func (t Time) Second() int {
	_, _, sec := t.clock()
	return sec
}

// Nanosecond returns the sub-second offset in nanoseconds, in [0, 999999999].
func (t Time) Nanosecond() int {
	return int(t.nsec)
}

// Millisecond returns the sub-second offset in milliseconds, in [0, 999].
// Derived from Nanosecond.
func (t Time) Millisecond() int {
	return int(t.nsec / 1_000_000)
}

// Microsecond returns the sub-second offset in microseconds, in [0, 999999].
// Derived from Nanosecond.
func (t Time) Microsecond() int {
	return int(t.nsec / 1_000)
}

// Before reports whether t is chronologically before u.
func (t Time) Before(u Time) bool {
	return t.sec < u.sec || (t.sec == u.sec && t.nsec < u.nsec)
}

// After reports whether t is chronologically after u.
func (t Time) After(u Time) bool {
	return u.Before(t)
}

// Equal reports whether t and u are the same instant.
// Equivalent to t == u.
func (t Time) Equal(u Time) bool {
	return t == u
}

// Compare returns -1 if t is before u, 0 if they are the same instant,
// and +1 if t is after u.
func (t Time) Compare(u Time) int {
	switch {
	case t.Before(u):
		return -1
	case t.After(u):
		return 1
	}
	return 0
}
