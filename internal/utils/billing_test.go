package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		date, err := ParseDate("2025-06-01")
		assert.NoError(t, err)
		assert.Equal(t, day(2025, time.June, 1), date)
	})

	t.Run("Missing date", func(t *testing.T) {
		_, err := ParseDate("")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "date is required")
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := ParseDate("2025/06/01")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date format")
	})
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		expected int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{1900, time.February, 28}, // century, not leap
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DaysInMonth(tt.year, tt.month), "%d-%02d", tt.year, tt.month)
	}
}

func TestBillingCycle(t *testing.T) {
	t.Run("Now after anchor day in month", func(t *testing.T) {
		start, end := BillingCycle(day(2025, time.January, 10), time.Date(2025, time.March, 20, 15, 0, 0, 0, time.UTC))
		assert.Equal(t, day(2025, time.March, 10), start)
		assert.Equal(t, day(2025, time.April, 10), end)
	})

	t.Run("Now before anchor day uses previous month", func(t *testing.T) {
		start, end := BillingCycle(day(2025, time.January, 10), day(2025, time.March, 5))
		assert.Equal(t, day(2025, time.February, 10), start)
		assert.Equal(t, day(2025, time.March, 10), end)
	})

	t.Run("Now on anchor day starts a new cycle", func(t *testing.T) {
		start, _ := BillingCycle(day(2025, time.January, 10), day(2025, time.March, 10))
		assert.Equal(t, day(2025, time.March, 10), start)
	})

	t.Run("Anchor on 31st clamps to short months", func(t *testing.T) {
		start, end := BillingCycle(day(2025, time.January, 31), day(2025, time.February, 15))
		assert.Equal(t, day(2025, time.January, 31), start)
		assert.Equal(t, day(2025, time.February, 28), end)

		start, end = BillingCycle(day(2025, time.January, 31), day(2025, time.March, 1))
		assert.Equal(t, day(2025, time.February, 28), start)
		assert.Equal(t, day(2025, time.March, 31), end)
	})

	t.Run("Year rollover", func(t *testing.T) {
		start, end := BillingCycle(day(2024, time.June, 15), day(2025, time.January, 2))
		assert.Equal(t, day(2024, time.December, 15), start)
		assert.Equal(t, day(2025, time.January, 15), end)
	})

	t.Run("First cycle never starts before the anchor", func(t *testing.T) {
		start, end := BillingCycle(time.Date(2025, time.May, 20, 13, 30, 0, 0, time.UTC), time.Date(2025, time.May, 25, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, day(2025, time.May, 20), start)
		assert.Equal(t, day(2025, time.June, 20), end)
	})
}
