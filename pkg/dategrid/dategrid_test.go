package dategrid_test

import (
	"reflect"
	"testing"
	"time"

	"calendar-scheduler/pkg/dategrid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{name: "January", year: 2025, month: 1, want: 31},
		{name: "April", year: 2025, month: 4, want: 30},
		{name: "February leap year", year: 2024, month: 2, want: 29},
		{name: "February common year", year: 2025, month: 2, want: 28},
		{name: "Month zero", year: 2025, month: 0, want: 0},
		{name: "Month thirteen", year: 2025, month: 13, want: 0},
		{name: "Negative month", year: 2025, month: -1, want: 0},
		{name: "Absurd month", year: 2025, month: 1000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dategrid.DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestWeekDates(t *testing.T) {
	week := func(first time.Time) []time.Time {
		out := make([]time.Time, 7)
		for i := range out {
			out[i] = first.AddDate(0, 0, i)
		}
		return out
	}

	tests := []struct {
		name        string
		input       time.Time
		startMonday bool
		want        []time.Time
	}{
		{name: "Sunday-first from midweek", input: date(2025, 10, 22), want: week(date(2025, 10, 19))},
		{name: "Sunday-first from Sunday", input: date(2025, 10, 19), want: week(date(2025, 10, 19))},
		{name: "Sunday-first from Saturday", input: date(2025, 10, 25), want: week(date(2025, 10, 19))},
		{name: "Monday-first from midweek", input: date(2025, 10, 22), startMonday: true, want: week(date(2025, 10, 20))},
		{name: "Monday-first from Monday", input: date(2025, 10, 20), startMonday: true, want: week(date(2025, 10, 20))},
		{name: "Monday-first from Sunday", input: date(2025, 10, 26), startMonday: true, want: week(date(2025, 10, 20))},
		{name: "Year boundary at year end", input: date(2025, 12, 31), want: week(date(2025, 12, 28))},
		{name: "Year boundary at year start", input: date(2026, 1, 2), want: week(date(2025, 12, 28))},
		{name: "Leap day week", input: date(2024, 2, 28), want: week(date(2024, 2, 25))},
		{name: "Month end week", input: date(2025, 9, 30), want: week(date(2025, 9, 28))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dategrid.WeekDates(tt.input, tt.startMonday)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WeekDates(%v, %v) = %v, want %v", tt.input, tt.startMonday, got, tt.want)
			}
		})
	}
}

func TestWeekDatesDoesNotMutateInput(t *testing.T) {
	input := date(2025, 10, 22)
	before := input
	dategrid.WeekDates(input, false)
	if !input.Equal(before) {
		t.Errorf("WeekDates mutated its input: %v != %v", input, before)
	}
}

func TestWeekDatesProperties(t *testing.T) {
	// Every week has length 7, increases by one day and contains the input.
	for _, d := range []time.Time{
		date(2024, 2, 29),
		date(2025, 1, 1),
		date(2025, 6, 15),
		date(2025, 12, 31),
	} {
		for _, startMonday := range []bool{false, true} {
			week := dategrid.WeekDates(d, startMonday)
			if len(week) != 7 {
				t.Fatalf("week for %v has length %d", d, len(week))
			}

			contains := false
			for i, day := range week {
				if i > 0 && !day.Equal(week[i-1].AddDate(0, 0, 1)) {
					t.Errorf("week for %v not consecutive at index %d", d, i)
				}
				if day.Equal(dategrid.Midnight(d)) {
					contains = true
				}
			}
			if !contains {
				t.Errorf("week for %v does not contain the input date", d)
			}

			wantFirst := time.Sunday
			if startMonday {
				wantFirst = time.Monday
			}
			if week[0].Weekday() != wantFirst {
				t.Errorf("week for %v starts on %v, want %v", d, week[0].Weekday(), wantFirst)
			}
		}
	}
}

func TestMonthWeeks(t *testing.T) {
	want := [][]int{
		{0, 0, 1, 2, 3, 4, 5},
		{6, 7, 8, 9, 10, 11, 12},
		{13, 14, 15, 16, 17, 18, 19},
		{20, 21, 22, 23, 24, 25, 26},
		{27, 28, 29, 30, 31, 0, 0},
	}

	got := dategrid.MonthWeeks(date(2025, 7, 1))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MonthWeeks(2025-07-01) = %v, want %v", got, want)
	}
}

func TestMonthWeeksCoversEveryDayInOrder(t *testing.T) {
	for month := 1; month <= 12; month++ {
		d := date(2024, time.Month(month), 15)
		weeks := dategrid.MonthWeeks(d)

		var days []int
		for _, week := range weeks {
			if len(week) != 7 {
				t.Fatalf("month %d: row length %d, want 7", month, len(week))
			}
			for _, cell := range week {
				if cell != 0 {
					days = append(days, cell)
				}
			}
		}

		want := dategrid.DaysInMonth(2024, month)
		if len(days) != want {
			t.Fatalf("month %d: %d day cells, want %d", month, len(days), want)
		}
		for i, day := range days {
			if day != i+1 {
				t.Errorf("month %d: cell %d holds %d, want %d", month, i, day, i+1)
			}
		}
	}
}

func TestIsInRange(t *testing.T) {
	tests := []struct {
		name             string
		date, start, end time.Time
		want             bool
	}{
		{name: "Inside range", date: date(2025, 7, 10), start: date(2025, 7, 3), end: date(2025, 7, 15), want: true},
		{name: "On range start", date: date(2025, 7, 1), start: date(2025, 7, 1), end: date(2025, 7, 15), want: true},
		{name: "On range end", date: date(2025, 7, 31), start: date(2025, 7, 1), end: date(2025, 7, 31), want: true},
		{name: "Before range", date: date(2025, 12, 30), start: date(2025, 12, 31), end: date(2026, 1, 30), want: false},
		{name: "After range", date: date(2025, 8, 1), start: date(2025, 7, 25), end: date(2025, 7, 30), want: false},
		{name: "Inverted range", date: date(2025, 7, 27), start: date(2025, 7, 30), end: date(2025, 7, 25), want: false},
		{name: "Inverted range containing date", date: date(2025, 7, 27), start: date(2025, 7, 28), end: date(2025, 7, 26), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dategrid.IsInRange(tt.date, tt.start, tt.end); got != tt.want {
				t.Errorf("IsInRange(%v, %v, %v) = %v, want %v", tt.date, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestIsInRangeStripsTimeOfDay(t *testing.T) {
	late := time.Date(2025, 7, 15, 23, 59, 0, 0, time.UTC)
	if !dategrid.IsInRange(late, date(2025, 7, 1), date(2025, 7, 15)) {
		t.Errorf("expected 23:59 on the end day to count as in range")
	}
}
