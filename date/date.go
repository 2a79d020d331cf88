// Package date holds the calendar helpers of the ledger: the clock, the
// lenient date parser used by the command line and the date formats used by
// reports.
package date

import (
	"fmt"
	"os"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the short calendar form, in ISO-8601.
const DateFormat = "2006-01-02"

// LongFormat is the long calendar form used in statements.
const LongFormat = "January 02, 2006"

// TestingNowEnv names the environment variable that freezes the clock, in
// "2006-01-02 15:04:05" format. It is meant for documentation tests only.
const TestingNowEnv = "MT_TESTING_NOW"

// Now returns the current time, unless frozen by TestingNowEnv.
func Now() time.Time {
	if v := os.Getenv(TestingNowEnv); v != "" {
		t, err := time.ParseInLocation("2006-01-02 15:04:05", v, time.Local)
		if err == nil {
			return t
		}
	}
	return time.Now()
}

// Today returns midnight of the current day.
func Today() time.Time {
	y, m, d := Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Parse parses a day. It is lenient and accepts formats like "2025-7-1".
// The returned time is midnight, local time.
func Parse(str string) (time.Time, error) {
	on, err := time.ParseInLocation(readDateFormat, str, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return on, nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) time.Time {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Short formats t in the short calendar form.
func Short(t time.Time) string { return t.Format(DateFormat) }

// Long formats t in the long calendar form.
func Long(t time.Time) string { return t.Format(LongFormat) }

// Range represents a range of days, boundaries included.
type Range struct{ From, To time.Time }

// NewRange returns the range from the start of the first day to the end of the last day.
func NewRange(from, to time.Time) Range {
	y, m, d := to.Date()
	return Range{From: from, To: time.Date(y, m, d, 23, 59, 59, 999999999, to.Location())}
}

// Contains reports whether t is within the range.
func (r Range) Contains(t time.Time) bool {
	return (r.From.IsZero() || !t.Before(r.From)) && (r.To.IsZero() || !t.After(r.To))
}

// String returns the range in long calendar form.
func (r Range) String() string {
	if r.From.IsZero() && r.To.IsZero() {
		return ""
	}
	return Long(r.From) + " - " + Long(r.To)
}
