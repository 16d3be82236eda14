// Package calendar implements the computation core of the scheduler:
// event instant ranges, overlap detection, view-window and search filtering,
// and the upcoming-event notification check. Every function is pure; the only
// state involved, the notified-ID set, is owned by the caller and only read
// here.
package calendar

import (
	"time"

	"calendar-scheduler/internal/model"
)

const dateTimeLayout = "2006-01-02 15:04"

// ParseDateTime builds an instant from a "YYYY-MM-DD" date string and an
// "HH:MM" time string. The instant lives in the local frame so comparisons
// against the wall clock behave regardless of the host timezone. Malformed
// input yields the zero time.Time rather than an error; callers must test
// with IsZero before using the value arithmetically.
func ParseDateTime(dateStr, timeStr string) time.Time {
	t, err := time.ParseInLocation(dateTimeLayout, dateStr+" "+timeStr, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseDate builds a local-midnight instant from a "YYYY-MM-DD" string, zero
// when malformed.
func ParseDate(dateStr string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DateRange is the concrete start/end instant pair of an event. Either
// endpoint may be the zero time when the source strings were malformed.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether both endpoints are representable instants.
func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// EventRange converts an event's date and time strings into its DateRange.
// Invalidity from either endpoint is propagated, never partially repaired.
func EventRange(e model.Event) DateRange {
	return DateRange{
		Start: ParseDateTime(e.Date, e.StartTime),
		End:   ParseDateTime(e.Date, e.EndTime),
	}
}
