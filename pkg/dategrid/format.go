package dategrid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Number covers the numeric types FillZero accepts.
type Number interface {
	~int | ~float64
}

// FormatWeek returns the "<year>년 <month>월 <n>주" label for the week
// containing t. Week-of-month follows the ISO-8601 anchor: the week belongs to
// the month of its Thursday, and weeks are counted from the first Thursday of
// that month. The year rolls forward when the Thursday falls in the next year.
func FormatWeek(t time.Time) string {
	thursday := Midnight(t).AddDate(0, 0, int(time.Thursday)-int(t.Weekday()))

	firstOfMonth := time.Date(thursday.Year(), thursday.Month(), 1, 0, 0, 0, 0, thursday.Location())
	firstThursday := firstOfMonth.AddDate(0, 0, (int(time.Thursday)-int(firstOfMonth.Weekday())+7)%7)

	weekNumber := daysBetween(firstThursday, thursday)/7 + 1
	return fmt.Sprintf("%d년 %d월 %d주", thursday.Year(), int(thursday.Month()), weekNumber)
}

// FormatMonth returns the "<year>년 <month>월" label for t.
func FormatMonth(t time.Time) string {
	return fmt.Sprintf("%d년 %d월", t.Year(), int(t.Month()))
}

// FillZero renders value in its shortest decimal form and left-pads the whole
// string with '0' to width characters. A rendering already at or beyond width
// is returned unchanged, so FillZero(3.14, 5) is "03.14" and FillZero(300, 2)
// stays "300".
func FillZero[N Number](value N, width int) string {
	s := strconv.FormatFloat(float64(value), 'f', -1, 64)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// FormatDate returns t as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return FormatDateWith(t, 0, "-")
}

// FormatDateWith formats t with a day override and separator. A day of 0
// means "use t's own day"; an empty separator defaults to "-".
func FormatDateWith(t time.Time, day int, separator string) string {
	if separator == "" {
		separator = "-"
	}
	if day == 0 {
		day = t.Day()
	}
	parts := []string{
		strconv.Itoa(t.Year()),
		FillZero(int(t.Month()), 2),
		FillZero(day, 2),
	}
	return strings.Join(parts, separator)
}
