package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "calendar-scheduler/internal/calendar/delivery/http"
	eventHTTP "calendar-scheduler/internal/event/delivery/http"
	notifierHTTP "calendar-scheduler/internal/notifier/delivery/http"
)

// setupEventDomain registers the event CRUD and search routes.
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := eventHTTP.New(srv.l, srv.eventUC)
	eventHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}

// setupCalendarDomain registers the month/week view and holiday routes.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := calendarHTTP.New(srv.l, srv.holidays, srv.weekStart)
	calendarHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Calendar domain registered")
	return nil
}

// setupNotificationDomain registers the notification backlog routes. Skipped
// when the notifier is not configured.
func (srv HTTPServer) setupNotificationDomain(ctx context.Context, api *gin.RouterGroup) error {
	if srv.notifier == nil {
		srv.l.Infof(ctx, "Notifier not configured, skipping notification routes")
		return nil
	}

	h := notifierHTTP.New(srv.l, srv.notifier)
	notifierHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Notification domain registered")
	return nil
}
