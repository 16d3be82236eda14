// Package notifier polls the event store on a cron schedule and turns events
// whose notification threshold has been crossed into alerts. Each event
// notifies at most once per process lifetime.
package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"calendar-scheduler/internal/calendar"
	"calendar-scheduler/internal/event"
	"calendar-scheduler/internal/model"
	pkgLog "calendar-scheduler/pkg/log"
)

// recentLimit bounds the alert backlog served over HTTP.
const recentLimit = 50

type Notifier struct {
	l   pkgLog.Logger
	uc  event.UseCase
	now func() time.Time

	cron *cron.Cron

	mu       sync.Mutex
	notified map[string]bool
	recent   []model.Notification
}

// New creates a Notifier. now is the clock used by polls; pass time.Now in
// production.
func New(l pkgLog.Logger, uc event.UseCase, now func() time.Time) *Notifier {
	return &Notifier{
		l:        l,
		uc:       uc,
		now:      now,
		notified: make(map[string]bool),
	}
}

// Start begins polling on the given cron spec (standard 5-field syntax).
func (n *Notifier) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		n.Poll(context.Background())
	}); err != nil {
		return err
	}
	c.Start()
	n.cron = c
	return nil
}

// Stop halts the cron scheduler. Safe to call when Start never ran.
func (n *Notifier) Stop() {
	if n.cron != nil {
		n.cron.Stop()
	}
}

// Poll runs one notification sweep: every stored event inside its
// notification window that has not alerted before produces a Notification,
// is recorded as notified and is appended to the recent backlog. Returns the
// new notifications in store order.
func (n *Notifier) Poll(ctx context.Context) []model.Notification {
	output, err := n.uc.List(ctx)
	if err != nil {
		n.l.Errorf(ctx, "notifier.Poll List: %v", err)
		return nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	upcoming := calendar.UpcomingEvents(output.Events, n.now(), n.notified)
	if len(upcoming) == 0 {
		return nil
	}

	fresh := make([]model.Notification, 0, len(upcoming))
	for _, e := range upcoming {
		n.notified[e.ID] = true
		notification := model.Notification{
			ID:      e.ID,
			Message: calendar.NotificationMessage(e),
		}
		fresh = append(fresh, notification)
		n.l.Infof(ctx, "notification: %s", notification.Message)
	}

	n.recent = append(n.recent, fresh...)
	if len(n.recent) > recentLimit {
		n.recent = n.recent[len(n.recent)-recentLimit:]
	}

	return fresh
}

// Recent returns a copy of the alert backlog, oldest first.
func (n *Notifier) Recent() []model.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]model.Notification, len(n.recent))
	copy(out, n.recent)
	return out
}

// Dismiss drops a notification from the backlog. The event stays marked as
// notified, so dismissing never re-arms it.
func (n *Notifier) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, notification := range n.recent {
		if notification.ID == id {
			n.recent = append(n.recent[:i], n.recent[i+1:]...)
			return
		}
	}
}
