package nanotime

import "time"

const secondsPerDay = 86400

// isLeapYear applies the Gregorian rule: divisible by 4, except
// centuries, except those divisible by 400.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth returns the number of days in the given month of the
// given year.
func daysInMonth(year int, month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// The two conversions below are Howard Hinnant's civil_from_days and
// days_from_civil, which work by shifting the year to start on March 1
// so the leap day falls at the end, and counting in 400-year eras of
// exactly 146097 days. They are exact for any date, before or after
// the epoch.

// civilFromDays converts a day count since 1970-01-01 to a calendar date.
func civilFromDays(days int64) (year int, month time.Month, day int) {
	z := days + 719468 // shift epoch to 0000-03-01
	era := z
	if z < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097                                   // day of era [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365  // year of era [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)                // day of year [0, 365], March-based
	mp := (5*doy + 2) / 153                                 // month proxy [0, 11]
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	y := yoe + era*400
	if m <= 2 {
		y++
	}
	return int(y), time.Month(m), int(d)
}

// daysFromCivil converts a calendar date to a day count since 1970-01-01.
func daysFromCivil(year int64, month time.Month, day int) int64 {
	y := year
	if month <= time.February {
		y--
	}
	era := y
	if y < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400 // [0, 399]
	m := int64(month)
	if m > 2 {
		m -= 3
	} else {
		m += 9
	}
	doy := (153*m+2)/5 + int64(day) - 1    // [0, 365], March-based
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468
}

// floorDiv divides rounding toward negative infinity, unlike Go's
// truncating division. Needed so negative epoch values split into a
// day count and a non-negative remainder.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
