package util

import "time"

const periodKeyLayout = "2006-01"

// PeriodKey returns the "YYYY-MM" bucket key for t.
func PeriodKey(t time.Time) string {
	return t.Format(periodKeyLayout)
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayBounds returns the [start, end) window covering the calendar day of t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// WeekBounds returns the [start, end) window of the week containing t.
// Weeks start on Sunday.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

// MonthBounds returns the [start, end) window of the calendar month of t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// DaysInMonth returns the actual length of the calendar month of t.
// Day zero of the next month is the last day of this one; counting
// wall-clock hours instead would come up short in DST months.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// MonthStart returns the first day of the month n months before t,
// anchored on day one so month arithmetic never overflows into a
// neighbouring month.
func MonthStart(t time.Time, monthsAgo int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, -monthsAgo, 0)
}
