package http

import (
	"calendar-scheduler/internal/event"
	pkgLog "calendar-scheduler/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc event.UseCase
}

// New creates a new HTTP handler for the event domain.
func New(l pkgLog.Logger, uc event.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
