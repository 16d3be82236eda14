package calendar

import (
	"strings"
	"time"

	"calendar-scheduler/internal/model"
	"calendar-scheduler/pkg/dategrid"
)

// FilterEvents runs the two-stage view pipeline: first the view window
// (the Sunday-first week containing referenceDate, or referenceDate's
// year+month), then, when searchTerm is non-empty, a case-insensitive
// substring match over title, description and location. Input order is
// preserved; an empty search term returns the window stage unchanged.
func FilterEvents(events []model.Event, searchTerm string, referenceDate time.Time, view model.ViewMode) []model.Event {
	windowed := filterByWindow(events, referenceDate, view)
	if searchTerm == "" {
		return windowed
	}

	term := strings.ToLower(searchTerm)
	matched := []model.Event{}
	for _, e := range windowed {
		if strings.Contains(strings.ToLower(e.Title), term) ||
			strings.Contains(strings.ToLower(e.Description), term) ||
			strings.Contains(strings.ToLower(e.Location), term) {
			matched = append(matched, e)
		}
	}
	return matched
}

func filterByWindow(events []model.Event, referenceDate time.Time, view model.ViewMode) []model.Event {
	kept := []model.Event{}

	switch view {
	case model.ViewWeek:
		week := dategrid.WeekDates(referenceDate, false)
		start, end := week[0], week[6]
		for _, e := range events {
			d := ParseDate(e.Date)
			if !d.IsZero() && dategrid.IsInRange(d, start, end) {
				kept = append(kept, e)
			}
		}
	case model.ViewMonth:
		for _, e := range events {
			d := ParseDate(e.Date)
			if !d.IsZero() && d.Year() == referenceDate.Year() && d.Month() == referenceDate.Month() {
				kept = append(kept, e)
			}
		}
	default:
		kept = append(kept, events...)
	}

	return kept
}

// EventsForDay returns the events whose date falls on the given day of the
// month. Day numbers outside 1..31 yield an empty result.
func EventsForDay(events []model.Event, day int) []model.Event {
	matched := []model.Event{}
	if day < 1 || day > 31 {
		return matched
	}
	for _, e := range events {
		if d := ParseDate(e.Date); !d.IsZero() && d.Day() == day {
			matched = append(matched, e)
		}
	}
	return matched
}
