package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC midnight time
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}
	return t, nil
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year int, month time.Month) int {
	if month == time.February {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == time.April || month == time.June || month == time.September || month == time.November {
		return 30
	}

	return 31
}

// anchorIn returns the anchor day in the given month, clamped to the month length.
func anchorIn(year int, month time.Month, day int) time.Time {
	// Normalise month overflow first so DaysInMonth sees a real month.
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if n := DaysInMonth(first.Year(), first.Month()); day > n {
		day = n
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// BillingCycle returns the monthly billing window [start, end) containing now.
// Cycles are anchored on the day-of-month of anchor; in months shorter than
// the anchor day the cycle starts on the last day of the month.
func BillingCycle(anchor, now time.Time) (start, end time.Time) {
	anchor = anchor.UTC()
	now = now.UTC()
	day := anchor.Day()

	start = anchorIn(now.Year(), now.Month(), day)
	if start.After(now) {
		start = anchorIn(now.Year(), now.Month()-1, day)
	}

	firstCycle := time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, time.UTC)
	if start.Before(firstCycle) {
		start = firstCycle
	}

	end = anchorIn(start.Year(), start.Month()+1, day)
	return start, end
}
