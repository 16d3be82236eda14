package dategrid_test

import (
	"testing"
	"time"

	"calendar-scheduler/pkg/dategrid"
)

func TestFormatWeek(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{name: "Mid-month", input: date(2025, 10, 9), want: "2025년 10월 2주"},
		{name: "First week", input: date(2025, 10, 1), want: "2025년 10월 1주"},
		{name: "Last week", input: date(2025, 10, 31), want: "2025년 10월 5주"},
		{name: "Year rollover via Thursday", input: date(2025, 12, 30), want: "2026년 1월 1주"},
		{name: "Leap February last week", input: date(2024, 2, 29), want: "2024년 2월 5주"},
		{name: "Common February last week", input: date(2025, 2, 28), want: "2025년 2월 4주"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dategrid.FormatWeek(tt.input); got != tt.want {
				t.Errorf("FormatWeek(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatMonth(t *testing.T) {
	if got := dategrid.FormatMonth(date(2025, 11, 1)); got != "2025년 11월" {
		t.Errorf("FormatMonth = %q, want %q", got, "2025년 11월")
	}
}

func TestFillZero(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		width int
		want  string
	}{
		{name: "Single digit", value: 5, width: 2, want: "05"},
		{name: "Exact width", value: 10, width: 2, want: "10"},
		{name: "Width three", value: 3, width: 3, want: "003"},
		{name: "Wider than width", value: 100, width: 2, want: "100"},
		{name: "Zero", value: 0, width: 2, want: "00"},
		{name: "Width five", value: 1, width: 5, want: "00001"},
		{name: "Fractional value", value: 3.14, width: 5, want: "03.14"},
		{name: "Overflowing value unchanged", value: 300, width: 2, want: "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dategrid.FillZero(tt.value, tt.width); got != tt.want {
				t.Errorf("FillZero(%v, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
			}
		})
	}
}

func TestFillZeroInt(t *testing.T) {
	if got := dategrid.FillZero(7, 2); got != "07" {
		t.Errorf("FillZero(7, 2) = %q, want %q", got, "07")
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		day   int
		sep   string
		want  string
	}{
		{name: "Plain", input: date(2025, 10, 20), want: "2025-10-20"},
		{name: "Day override", input: date(2025, 10, 20), day: 15, want: "2025-10-15"},
		{name: "Single digit month padded", input: date(2025, 9, 20), want: "2025-09-20"},
		{name: "Single digit day padded", input: date(2025, 9, 2), want: "2025-09-02"},
		{name: "Custom separator", input: date(2025, 9, 2), sep: "/", want: "2025/09/02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dategrid.FormatDateWith(tt.input, tt.day, tt.sep); got != tt.want {
				t.Errorf("FormatDateWith(%v, %d, %q) = %q, want %q", tt.input, tt.day, tt.sep, got, tt.want)
			}
		})
	}

	if got := dategrid.FormatDate(date(2025, 10, 20)); got != "2025-10-20" {
		t.Errorf("FormatDate = %q, want %q", got, "2025-10-20")
	}
}
