// Package dategrid provides the pure date arithmetic behind the calendar
// views: month day counts, week windows, month-as-weeks grids and range
// checks. All functions allocate fresh values and never mutate their inputs.
package dategrid

import "time"

// DaysInMonth returns the number of days in the given 1-indexed month.
// Months outside 1..12 yield 0 rather than an error; callers must treat 0 as
// "no valid grid".
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekDates returns the 7 consecutive midnight-normalized dates of the week
// containing t. The week is anchored to Sunday by default, or to Monday when
// startMonday is set. Month, year and leap-day boundaries are crossed by date
// arithmetic, not string manipulation.
func WeekDates(t time.Time, startMonday bool) []time.Time {
	weekday := int(t.Weekday()) // Sunday = 0
	offset := weekday
	if startMonday {
		if weekday == 0 {
			offset = 6
		} else {
			offset = weekday - 1
		}
	}

	first := Midnight(t).AddDate(0, 0, -offset)
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = first.AddDate(0, 0, i)
	}
	return dates
}

// MonthWeeks returns the month containing t as rows of 7 day numbers.
// Cells outside the month hold 0; the first and last rows are padded so every
// row has exactly 7 cells. Day 1 lands in the column of its actual weekday,
// Sunday-first.
func MonthWeeks(t time.Time) [][]int {
	year, month := t.Year(), int(t.Month())
	days := DaysInMonth(year, month)
	if days == 0 {
		return nil
	}

	firstWeekday := int(time.Date(year, t.Month(), 1, 0, 0, 0, 0, t.Location()).Weekday())

	var weeks [][]int
	week := make([]int, 7)
	for day := 1; day <= days; day++ {
		idx := (firstWeekday + day - 1) % 7
		week[idx] = day
		if idx == 6 || day == days {
			weeks = append(weeks, week)
			week = make([]int, 7)
		}
	}
	return weeks
}

// IsInRange reports whether date falls within [start, end], inclusive on both
// ends. Time of day is stripped before comparing. An inverted range
// (start after end) is false for every date.
func IsInRange(date, start, end time.Time) bool {
	d := Midnight(date)
	s := Midnight(start)
	e := Midnight(end)
	return !d.Before(s) && !d.After(e)
}

// Midnight returns t with the time of day stripped, in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b. Both are reconstructed at UTC
// midnight so DST-length days cannot skew the division.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
