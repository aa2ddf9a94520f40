package nanotime

import "fmt"

// String formats the time of day as "HH:MM:SS.mmm", with the
// millisecond truncated from the nanosecond field.
func (t Time) String() string {
	hour, min, sec := t.clock()
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hour, min, sec, t.Millisecond())
}

// Date formats the date as "YYYY-MM-DD". Years are zero-padded to four
// digits, and print wider past the year 9999.
func (t Time) Date() string {
	year, month, day := t.date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// DateTime formats as "YYYY-MM-DD HH:MM:SS.mmm".
func (t Time) DateTime() string {
	return t.Date() + " " + t.String()
}

// DateTimePrecision formats as "YYYY-MM-DD HH:MM:SS" followed by the
// first digits of the fractional second, truncated, never rounded.
// With digits 0 the decimal point is omitted entirely. Values outside
// [0, 9] are clamped to that range.
func (t Time) DateTimePrecision(digits int) string {
	if digits < 0 {
		digits = 0
	}
	if digits > 9 {
		digits = 9
	}
	hour, min, sec := t.clock()
	s := fmt.Sprintf("%s %02d:%02d:%02d", t.Date(), hour, min, sec)
	if digits == 0 {
		return s
	}
	frac := fmt.Sprintf("%09d", t.Nanosecond())
	return s + "." + frac[:digits]
}
