package http

import (
	"calendar-scheduler/internal/notifier"
	pkgLog "calendar-scheduler/pkg/log"
)

type handler struct {
	l pkgLog.Logger
	n *notifier.Notifier
}

// New creates the HTTP handler for the notification backlog.
func New(l pkgLog.Logger, n *notifier.Notifier) *handler {
	return &handler{
		l: l,
		n: n,
	}
}
