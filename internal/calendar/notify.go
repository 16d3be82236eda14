package calendar

import (
	"fmt"
	"time"

	"calendar-scheduler/internal/model"
)

// UpcomingEvents returns, in input order, every event whose notification
// threshold has been reached but whose start has not: now lies in
// [start - notificationTime minutes, start). Events whose ID is already in
// the caller-owned notified set are skipped, and an event with a malformed
// start never matches. The function never writes to notified; callers must
// record every returned ID immediately or the event fires again on the next
// poll.
func UpcomingEvents(events []model.Event, now time.Time, notified map[string]bool) []model.Event {
	upcoming := []model.Event{}
	for _, e := range events {
		if notified[e.ID] {
			continue
		}
		start := ParseDateTime(e.Date, e.StartTime)
		if start.IsZero() {
			continue
		}
		untilStart := start.Sub(now)
		if untilStart > 0 && untilStart <= time.Duration(e.NotificationTime)*time.Minute {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming
}

// NotificationMessage composes the alert text for an event.
func NotificationMessage(e model.Event) string {
	return fmt.Sprintf("%d분 후 %s 일정이 시작됩니다.", e.NotificationTime, e.Title)
}
