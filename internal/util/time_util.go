package util

import (
	"time"
)

const DateLayout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a calendar date in the scanner's YYYY-MM-DD form,
// normalized to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(DateLayout) == t2.Format(DateLayout)
}

func DateGte(t1, t2 time.Time) bool {
	return t1.After(t2) || t1.Format(DateLayout) == t2.Format(DateLayout)
}

// ClosestTradingDay steps a weekend date back to the preceding
// Friday. Weekdays pass through unchanged; holidays are not modeled.
func ClosestTradingDay(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, -1)
	case time.Sunday:
		return t.AddDate(0, 0, -2)
	default:
		return t
	}
}
