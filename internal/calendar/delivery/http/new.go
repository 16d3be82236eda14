package http

import (
	"calendar-scheduler/internal/holiday"
	pkgLog "calendar-scheduler/pkg/log"
)

type handler struct {
	l        pkgLog.Logger
	holidays holiday.Provider

	// weekStart is the configured default first day of the week, applied
	// when the request carries no weekStart parameter.
	weekStart string
}

// New creates the HTTP handler for the calendar view endpoints.
func New(l pkgLog.Logger, holidays holiday.Provider, weekStart string) *handler {
	return &handler{
		l:         l,
		holidays:  holidays,
		weekStart: weekStart,
	}
}
