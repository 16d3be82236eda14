package http

import (
	"net/http"

	"calendar-scheduler/internal/calendar"
	"calendar-scheduler/internal/event"
	pkgErrors "calendar-scheduler/pkg/errors"
)

var errMissingID = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates domain errors into HTTP errors. Unknown errors are
// served as a generic 500 so internals never leak.
func (h *handler) mapError(err error) error {
	switch err {
	case event.ErrEventNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "event not found")
	case event.ErrInvalidTimeRange:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, calendar.StartTimeErrorMessage)
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
